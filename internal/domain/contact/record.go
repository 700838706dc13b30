package contact

// StoredRecord is an Acme contact plus the fields the CRM generates on insert.
type StoredRecord struct {
	ID        string      `json:"acme_contact_id"`
	Contact   AcmeContact `json:"acme_contact"`
	CreatedAt string      `json:"acme_created_at"`
	Status    string      `json:"acme_status"`
}

// Stats summarises the CRM store. Active+Inactive always equals Total.
type Stats struct {
	Total    int `json:"total_contacts"`
	Active   int `json:"active_contacts"`
	Inactive int `json:"inactive_contacts"`
}

// CRMGateway is the port to the contact store behind the integration.
// A miss is reported through the bool results, never as an error.
type CRMGateway interface {
	Create(c AcmeContact) StoredRecord
	Get(id string) (StoredRecord, bool)
	List() []StoredRecord
	UpdateStatus(id, status string) bool
	Delete(id string) bool
	Stats() Stats
}
