package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martin-core-poc/agent/internal/agent/model"
	"github.com/martin-core-poc/agent/internal/agent/policy"
	"github.com/martin-core-poc/agent/internal/agent/reasoning"
	"github.com/martin-core-poc/agent/internal/agent/selector"
	errx "github.com/martin-core-poc/agent/internal/core/error"
)

// memArchive is an in-memory SessionArchive for controller tests.
type memArchive struct {
	turns     map[string][]model.ArchivedTurn
	appendErr error
}

func newMemArchive() *memArchive {
	return &memArchive{turns: make(map[string][]model.ArchivedTurn)}
}

func (m *memArchive) AppendTurn(_ context.Context, sessionID string, turn model.ArchivedTurn) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.turns[sessionID] = append(m.turns[sessionID], turn)
	return nil
}

func (m *memArchive) LoadTurns(_ context.Context, sessionID string) ([]model.ArchivedTurn, error) {
	return m.turns[sessionID], nil
}

func (m *memArchive) Clear(_ context.Context, sessionID string) error {
	delete(m.turns, sessionID)
	return nil
}

func (m *memArchive) TurnCount(_ context.Context, sessionID string) (int, error) {
	return len(m.turns[sessionID]), nil
}

func newTestController(t *testing.T, archive model.SessionArchive) *Controller {
	t.Helper()
	policies, err := policy.NewGenerator()
	require.NoError(t, err)

	dispatcher := reasoning.New(nil, policies, model.CompanyContext{Name: "TechStartup Inc"})
	return NewController(selector.New(), dispatcher, archive)
}

const vagueTask = "Ayúdame con SOC 2"

func TestPassiveTurnStoresPendingAction(t *testing.T) {
	c := newTestController(t, nil)
	ctx := context.Background()

	result := c.Process(ctx, vagueTask, model.TaskContext{})
	assert.Equal(t, model.ModePassive, result.Meta().Mode)
	assert.Equal(t, model.StatusAwaitingConfirmation, result.Meta().Status)
	assert.NotEmpty(t, result.Meta().ModeExplanation)

	pending := c.PendingAction()
	require.NotNil(t, pending)
	assert.Equal(t, model.ModePassive, pending.Mode)
	assert.Equal(t, vagueTask, pending.OriginalInput)
	assert.Len(t, c.History(), 1)
}

func TestConfirmationExecutesPendingAction(t *testing.T) {
	c := newTestController(t, nil)
	ctx := context.Background()

	c.Process(ctx, vagueTask, model.TaskContext{})
	require.NotNil(t, c.PendingAction())

	result := c.Process(ctx, "sí, continúa", model.TaskContext{})
	assert.Equal(t, model.ModeDirect, result.Meta().Mode)
	assert.Equal(t, model.StatusExecuted, result.Meta().Status)
	assert.Equal(t, model.ConfirmationAccepted, result.Meta().Confirmation)
	assert.Nil(t, c.PendingAction())
	assert.Len(t, c.History(), 2)

	// the executed action must be the original task, not the confirmation text
	direct, ok := result.(*model.DirectResult)
	require.True(t, ok)
	assert.Contains(t, direct.Results, vagueTask)
}

func TestRejectionCancelsPendingAction(t *testing.T) {
	c := newTestController(t, nil)
	ctx := context.Background()

	c.Process(ctx, vagueTask, model.TaskContext{})
	result := c.Process(ctx, "no, mejor no", model.TaskContext{})

	cancelled, ok := result.(*model.CancelledResult)
	require.True(t, ok, "expected a cancelled result, got %T", result)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)
	assert.Equal(t, model.ConfirmationRejected, cancelled.Confirmation)
	assert.Contains(t, cancelled.Message, "cancelled")
	assert.Nil(t, c.PendingAction())
	assert.Len(t, c.History(), 2)
}

func TestUnrelatedTurnDiscardsPendingAction(t *testing.T) {
	c := newTestController(t, nil)
	ctx := context.Background()

	c.Process(ctx, vagueTask, model.TaskContext{})
	require.NotNil(t, c.PendingAction())

	result := c.Process(ctx, "Genera una política de contraseñas según ISO 27001", model.TaskContext{})
	assert.Equal(t, model.ModeDirect, result.Meta().Mode)
	assert.Equal(t, model.ConfirmationNone, result.Meta().Confirmation)
	assert.Nil(t, c.PendingAction())
	assert.Len(t, c.History(), 2)
}

func TestAtMostOnePendingAction(t *testing.T) {
	c := newTestController(t, nil)
	ctx := context.Background()

	c.Process(ctx, vagueTask, model.TaskContext{})
	first := c.PendingAction()
	require.NotNil(t, first)

	c.Process(ctx, "ayuda delete remove logs", model.TaskContext{})
	second := c.PendingAction()
	require.NotNil(t, second)
	assert.NotEqual(t, first.OriginalInput, second.OriginalInput)
}

func TestConfirmPendingProgrammatically(t *testing.T) {
	c := newTestController(t, nil)
	ctx := context.Background()

	c.Process(ctx, vagueTask, model.TaskContext{})
	result, err := c.ConfirmPending(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, model.ConfirmationAccepted, result.Meta().Confirmation)
	assert.Nil(t, c.PendingAction())
}

func TestConfirmPendingWithoutPendingFails(t *testing.T) {
	c := newTestController(t, nil)

	_, err := c.ConfirmPending(context.Background(), true)
	require.Error(t, err)

	var appErr *errx.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, errx.InvalidReferenceMessage, appErr.Message)
}

func TestRecordStampsMetadata(t *testing.T) {
	c := newTestController(t, nil)
	ctx := context.Background()

	first := c.Process(ctx, "Audit the access logs from last week", model.TaskContext{})
	second := c.Process(ctx, "Review the quarterly access report", model.TaskContext{})

	assert.False(t, first.Meta().Timestamp.IsZero())
	assert.Equal(t, 0, first.Meta().InteractionID)
	assert.Equal(t, 1, second.Meta().InteractionID)

	history := c.History()
	require.Len(t, history, 2)
	assert.NotEmpty(t, history[0].ID)
	assert.NotEqual(t, history[0].ID, history[1].ID)
}

func TestSummary(t *testing.T) {
	c := newTestController(t, nil)
	ctx := context.Background()

	c.Process(ctx, vagueTask, model.TaskContext{})
	c.Process(ctx, "sí, continúa", model.TaskContext{})
	c.Process(ctx, "Genera una política de contraseñas según ISO 27001", model.TaskContext{})

	summary := c.Summary()
	assert.Equal(t, c.SessionID(), summary.SessionID)
	assert.Equal(t, 3, summary.TotalInteractions)
	assert.Equal(t, 1, summary.ModesDistribution[model.ModePassive])
	assert.Equal(t, 2, summary.ModesDistribution[model.ModeDirect])
	assert.Equal(t, 1, summary.TotalConfirmations)
	assert.False(t, summary.HasPendingAction)
	assert.Equal(t, "simulated", summary.Collaborator)
}

func TestArchiveMirroring(t *testing.T) {
	archive := newMemArchive()
	c := newTestController(t, archive)
	ctx := context.Background()

	c.Process(ctx, vagueTask, model.TaskContext{})
	c.Process(ctx, "sí, continúa", model.TaskContext{})

	turns, err := archive.LoadTurns(ctx, c.SessionID())
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, vagueTask, turns[0].Input)
	assert.Equal(t, model.ModePassive, turns[0].Mode)
	assert.Equal(t, "sí, continúa", turns[1].Input)
}

func TestArchiveFailureNeverFailsATurn(t *testing.T) {
	archive := newMemArchive()
	archive.appendErr = errors.New("connection refused")
	c := newTestController(t, archive)

	result := c.Process(context.Background(), vagueTask, model.TaskContext{})
	assert.Equal(t, model.ModePassive, result.Meta().Mode)
	assert.Len(t, c.History(), 1)
}

func TestReset(t *testing.T) {
	archive := newMemArchive()
	c := newTestController(t, archive)
	ctx := context.Background()

	c.Process(ctx, vagueTask, model.TaskContext{})
	oldID := c.SessionID()
	require.NotEmpty(t, archive.turns[oldID])

	c.Reset(ctx)
	assert.Empty(t, c.History())
	assert.Nil(t, c.PendingAction())
	assert.Empty(t, c.DecisionLog())
	assert.Equal(t, "No decisions recorded yet", c.ExplainLastDecision())
	assert.Empty(t, archive.turns[oldID])

	summary := c.Summary()
	assert.Zero(t, summary.TotalInteractions)
	assert.False(t, summary.HasPendingAction)
}

func TestSnapshot(t *testing.T) {
	c := newTestController(t, nil)
	ctx := context.Background()

	c.Process(ctx, "Genera una política de contraseñas según ISO 27001", model.TaskContext{})

	snapshot := c.Snapshot()
	assert.Equal(t, c.SessionID(), snapshot.SessionID)
	assert.False(t, snapshot.ExportedAt.IsZero())
	assert.Equal(t, 1, snapshot.Summary.TotalInteractions)
	require.Len(t, snapshot.History, 1)
}
