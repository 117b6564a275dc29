// Package export serialises a session snapshot for external consumers. The
// core hands over a read-only snapshot; this package owns the wire formats.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/martin-core-poc/agent/internal/agent/model"
	errx "github.com/martin-core-poc/agent/internal/core/error"
)

// Format identifies a supported export format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// Extension returns the conventional file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "md"
	default:
		return "txt"
	}
}

// Export renders the snapshot in the requested format. Unknown formats yield
// an unsupported-format error. Nothing is written anywhere; the caller owns
// file or network I/O.
func Export(snapshot model.SessionSnapshot, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return exportJSON(snapshot)
	case FormatText:
		return exportText(snapshot), nil
	case FormatMarkdown:
		return exportMarkdown(snapshot), nil
	default:
		return nil, errx.NewUnsupportedFormat(string(format))
	}
}

func exportJSON(snapshot model.SessionSnapshot) ([]byte, error) {
	b, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return b, nil
}

func exportText(snapshot model.SessionSnapshot) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "Session %s\n", snapshot.SessionID)
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for i, entry := range snapshot.History {
		meta := entry.Result.Meta()
		fmt.Fprintf(&b, "[%d] User: %s\n", i+1, entry.Input)
		fmt.Fprintf(&b, "    Mode: %s\n", entry.ModeSelected)
		fmt.Fprintf(&b, "    Agent: %s\n", meta.Message)
		b.WriteString(strings.Repeat("-", 60) + "\n\n")
	}
	return []byte(b.String())
}

func exportMarkdown(snapshot model.SessionSnapshot) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# Session %s\n\n", snapshot.SessionID)
	fmt.Fprintf(&b, "**Date:** %s\n\n", snapshot.ExportedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Total interactions: %d\n", snapshot.Summary.TotalInteractions)
	fmt.Fprintf(&b, "- Confirmations: %d\n", snapshot.Summary.TotalConfirmations)
	fmt.Fprintf(&b, "- Collaborator: %s\n", snapshot.Summary.Collaborator)
	b.WriteString("- Modes used:")
	if len(snapshot.Summary.ModesDistribution) == 0 {
		b.WriteString(" none")
	}
	b.WriteString("\n")
	for _, mode := range []model.Mode{model.ModePassive, model.ModeDirect, model.ModeSafe} {
		if count := snapshot.Summary.ModesDistribution[mode]; count > 0 {
			fmt.Fprintf(&b, "  - %s: %d\n", mode, count)
		}
	}
	b.WriteString("\n## Conversation\n\n")

	for i, entry := range snapshot.History {
		meta := entry.Result.Meta()
		fmt.Fprintf(&b, "### Interaction %d\n\n", i+1)
		fmt.Fprintf(&b, "**User:** %s\n\n", entry.Input)
		fmt.Fprintf(&b, "**Mode:** %s\n\n", entry.ModeSelected)
		fmt.Fprintf(&b, "**Agent:**\n%s\n\n", meta.Message)
		b.WriteString("---\n\n")
	}
	return []byte(b.String())
}
