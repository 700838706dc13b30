package contact

import (
	"fmt"
	"maps"
)

// SchemaDescription is returned with every schema descriptor.
const SchemaDescription = "Field mapping between Linq and AcmeCRM contact formats"

var linqToAcme = map[string]string{
	"firstName": "acme_first_name",
	"lastName":  "acme_last_name",
	"email":     "acme_email",
	"phone":     "acme_phone_number",
	"company":   "acme_company_name",
	"notes":     "acme_notes",
}

var acmeToLinq = map[string]string{
	"acme_first_name":   "firstName",
	"acme_last_name":    "lastName",
	"acme_email":        "email",
	"acme_phone_number": "phone",
	"acme_company_name": "company",
	"acme_notes":        "notes",
}

// MappingSchema describes both rename tables.
type MappingSchema struct {
	LinqToAcme  map[string]string `json:"linq_to_acme"`
	AcmeToLinq  map[string]string `json:"acme_to_linq"`
	Description string            `json:"description"`
}

// Schema returns copies of the rename tables.
func Schema() MappingSchema {
	return MappingSchema{
		LinqToAcme:  maps.Clone(linqToAcme),
		AcmeToLinq:  maps.Clone(acmeToLinq),
		Description: SchemaDescription,
	}
}

// RenameToAcme substitutes Linq keys with Acme keys. Keys that are not part
// of the Linq schema are dropped.
func RenameToAcme(src Fields) Fields {
	return rename(src, linqToAcme)
}

// RenameToLinq substitutes Acme keys with Linq keys. Keys that are not part
// of the Acme schema are dropped.
func RenameToLinq(src Fields) Fields {
	return rename(src, acmeToLinq)
}

func rename(src Fields, table map[string]string) Fields {
	dst := make(Fields, len(src))
	for k, v := range src {
		if target, ok := table[k]; ok {
			dst[target] = v
		}
	}
	return dst
}

// ToAcme converts a Linq contact into the AcmeCRM representation.
// It returns a *ValidationError when the resulting record violates a field
// constraint. Violations are reported under Linq field names.
func ToAcme(c LinqContact) (AcmeContact, error) {
	out := acmeFromFields(RenameToAcme(c.Fields()))
	if err := validateRecord(out, acmeToLinq); err != nil {
		return AcmeContact{}, err
	}
	return out, nil
}

// ToLinq converts an AcmeCRM contact into the Linq representation.
func ToLinq(c AcmeContact) (LinqContact, error) {
	out := linqFromFields(RenameToLinq(c.Fields()))
	if err := validateRecord(out, linqToAcme); err != nil {
		return LinqContact{}, err
	}
	return out, nil
}

// ValidateMapping checks that the two rename tables are exact inverses.
func ValidateMapping() error {
	return checkInverse(linqToAcme, acmeToLinq)
}

func checkInverse(forward, reverse map[string]string) error {
	if len(forward) != len(reverse) {
		return fmt.Errorf("mapping size mismatch: %d forward, %d reverse", len(forward), len(reverse))
	}
	for a, b := range forward {
		if back, ok := reverse[b]; !ok || back != a {
			return fmt.Errorf("forward %q -> %q has no matching reverse entry", a, b)
		}
	}
	for b, a := range reverse {
		if fwd, ok := forward[a]; !ok || fwd != b {
			return fmt.Errorf("reverse %q -> %q has no matching forward entry", b, a)
		}
	}
	return nil
}
