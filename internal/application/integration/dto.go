package integration

import "github.com/linq/acme-integration/internal/domain/contact"

// CreateResult is returned after a contact reaches AcmeCRM.
type CreateResult struct {
	Success   bool   `json:"success" example:"true"`
	ContactID string `json:"contact_id" example:"acme_a1b2c3d4"`
	Message   string `json:"message" example:"Contact successfully created in AcmeCRM by user demo_user"`
}

// ContactView is a stored contact rendered in the Linq schema.
type ContactView struct {
	ID        string `json:"id" example:"acme_a1b2c3d4"`
	Status    string `json:"status" example:"active"`
	CreatedAt string `json:"created_at" example:"2025-07-25T10:30:00Z"`
	contact.LinqContact
}

// StatsResult reports AcmeCRM contact counts to the caller.
type StatsResult struct {
	User              string        `json:"user" example:"demo_user"`
	AcmeCRMStats      contact.Stats `json:"acmecrm_stats"`
	IntegrationStatus string        `json:"integration_status" example:"active"`
}
