package model

// PolicyType enumerates the policy documents the template collaborator can
// produce.
type PolicyType string

const (
	PolicyPassword           PolicyType = "password"
	PolicyIncident           PolicyType = "incident"
	PolicyAccess             PolicyType = "access"
	PolicyDataClassification PolicyType = "data_classification"
	PolicyBackup             PolicyType = "backup"
)

// PolicyTypes lists all supported policy types in a stable order.
func PolicyTypes() []PolicyType {
	return []PolicyType{
		PolicyPassword,
		PolicyIncident,
		PolicyAccess,
		PolicyDataClassification,
		PolicyBackup,
	}
}
