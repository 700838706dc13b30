package contact

// Status values recognised by the CRM. Any status other than StatusActive is
// counted as inactive.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Fields is a flat name/value view of a contact in either representation.
// Absent fields are absent keys, never empty values.
type Fields map[string]string

// LinqContact is the contact as callers of the Linq API see it.
type LinqContact struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=100" example:"John"`
	LastName  string `json:"lastName" validate:"required,min=1,max=100" example:"Doe"`
	Email     string `json:"email" validate:"required,email" example:"john.doe@example.com"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20" example:"+1-555-123-4567"`
	Company   string `json:"company,omitempty" validate:"omitempty,max=200" example:"Tech Corp"`
	Notes     string `json:"notes,omitempty" validate:"omitempty,max=1000" example:"Met at conference"`
}

// AcmeContact is the contact as stored by AcmeCRM.
type AcmeContact struct {
	FirstName string `json:"acme_first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"acme_last_name" validate:"required,min=1,max=100"`
	Email     string `json:"acme_email" validate:"required,email"`
	Phone     string `json:"acme_phone_number,omitempty" validate:"omitempty,max=20"`
	Company   string `json:"acme_company_name,omitempty" validate:"omitempty,max=200"`
	Notes     string `json:"acme_notes,omitempty" validate:"omitempty,max=1000"`
}

// Fields returns the populated fields of c keyed by Linq names.
func (c LinqContact) Fields() Fields {
	f := make(Fields, 6)
	put(f, "firstName", c.FirstName)
	put(f, "lastName", c.LastName)
	put(f, "email", c.Email)
	put(f, "phone", c.Phone)
	put(f, "company", c.Company)
	put(f, "notes", c.Notes)
	return f
}

// Fields returns the populated fields of c keyed by Acme names.
func (c AcmeContact) Fields() Fields {
	f := make(Fields, 6)
	put(f, "acme_first_name", c.FirstName)
	put(f, "acme_last_name", c.LastName)
	put(f, "acme_email", c.Email)
	put(f, "acme_phone_number", c.Phone)
	put(f, "acme_company_name", c.Company)
	put(f, "acme_notes", c.Notes)
	return f
}

func linqFromFields(f Fields) LinqContact {
	return LinqContact{
		FirstName: f["firstName"],
		LastName:  f["lastName"],
		Email:     f["email"],
		Phone:     f["phone"],
		Company:   f["company"],
		Notes:     f["notes"],
	}
}

func acmeFromFields(f Fields) AcmeContact {
	return AcmeContact{
		FirstName: f["acme_first_name"],
		LastName:  f["acme_last_name"],
		Email:     f["acme_email"],
		Phone:     f["acme_phone_number"],
		Company:   f["acme_company_name"],
		Notes:     f["acme_notes"],
	}
}

func put(f Fields, key, value string) {
	if value != "" {
		f[key] = value
	}
}
