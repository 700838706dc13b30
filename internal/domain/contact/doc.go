// Package contact contains the Contact bounded context shared by the Linq
// caller-facing API and the AcmeCRM backend.
//
// Key concepts:
//   - LinqContact: external representation with camelCase field names
//   - AcmeContact: internal representation with acme_ prefixed field names
//   - Field mapping: a static bijective rename table between the two
//   - ValidationError: field-level constraint violations raised when either
//     representation is constructed
//
// The mapper performs renaming only. Values are never converted.
package contact
