package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidContact is returned by Contact.Validate.
var ErrInvalidContact = errors.New("invalid contact")

// Contact is one set of contact details as stored by the registrar. Every field
// is optional: nil means the value is absent, which is not the same as an empty
// string.
type Contact struct {
	AddressLine1     *string `json:"addressLine1,omitempty"`
	AddressLine2     *string `json:"addressLine2,omitempty"`
	City             *string `json:"city,omitempty"`
	ContactType      *string `json:"contactType,omitempty"`
	CountryCode      *string `json:"countryCode,omitempty"`
	Email            *string `json:"email,omitempty"`
	Fax              *string `json:"fax,omitempty"`
	FirstName        *string `json:"firstName,omitempty"`
	LastName         *string `json:"lastName,omitempty"`
	OrganizationName *string `json:"organizationName,omitempty"`
	PhoneNumber      *string `json:"phoneNumber,omitempty"`
	State            *string `json:"state,omitempty"`
	ZipCode          *string `json:"zipCode,omitempty"`
}

// FieldDifference describes a single contact field whose value differs between
// two contacts.
type FieldDifference struct {
	Field string  `json:"field"`
	Left  *string `json:"left"`
	Right *string `json:"right"`
}

// contactField binds a field name to its accessor. The order of contactFields
// is the order in which differences are reported.
type contactField struct {
	name string
	get  func(c *Contact) *string
}

//nolint: gochecknoglobals
var contactFields = [...]contactField{
	{"AddressLine1", func(c *Contact) *string { return c.AddressLine1 }},
	{"AddressLine2", func(c *Contact) *string { return c.AddressLine2 }},
	{"City", func(c *Contact) *string { return c.City }},
	{"ContactType", func(c *Contact) *string { return c.ContactType }},
	{"CountryCode", func(c *Contact) *string { return c.CountryCode }},
	{"Email", func(c *Contact) *string { return c.Email }},
	{"Fax", func(c *Contact) *string { return c.Fax }},
	{"FirstName", func(c *Contact) *string { return c.FirstName }},
	{"LastName", func(c *Contact) *string { return c.LastName }},
	{"OrganizationName", func(c *Contact) *string { return c.OrganizationName }},
	{"PhoneNumber", func(c *Contact) *string { return c.PhoneNumber }},
	{"State", func(c *Contact) *string { return c.State }},
	{"ZipCode", func(c *Contact) *string { return c.ZipCode }},
}

// ContactFieldNames returns the contact field names in comparison order.
func ContactFieldNames() []string {
	names := make([]string, len(contactFields))
	for i, f := range contactFields {
		names[i] = f.name
	}

	return names
}

// enumFields are stored by the registrar as enumerations, where an empty value
// reads back as absent.
//
//nolint: gochecknoglobals
var enumFields = [...]contactField{
	{"ContactType", func(c *Contact) *string { return c.ContactType }},
	{"CountryCode", func(c *Contact) *string { return c.CountryCode }},
}

// Validate rejects contacts the registrar cannot store as given: an enumerated
// field set to the empty string would read back as absent and never compare
// equal again.
func (c Contact) Validate() error {
	for _, f := range enumFields {
		if v := f.get(&c); v != nil && *v == "" {
			return fmt.Errorf("%w: %s must be omitted rather than empty", ErrInvalidContact, f.name)
		}
	}

	return nil
}

// String returns a pointer to s. It is a convenience for building contacts.
func String(s string) *string { return &s }

// equalString compares two optional values. Two nils are equal, a nil and an
// empty string are not.
func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

// Equal reports whether all thirteen fields of both contacts are equal. The
// comparison is exact: no trimming, case folding or other normalization.
func (c Contact) Equal(other Contact) bool {
	for _, f := range contactFields {
		if !equalString(f.get(&c), f.get(&other)) {
			return false
		}
	}

	return true
}

// Differences returns one FieldDifference per field whose value differs between
// c (left) and other (right), in a fixed field order. It returns nil when the
// contacts are equal.
func (c Contact) Differences(other Contact) []FieldDifference {
	var out []FieldDifference
	for _, f := range contactFields {
		left, right := f.get(&c), f.get(&other)
		if !equalString(left, right) {
			out = append(out, FieldDifference{Field: f.name, Left: left, Right: right})
		}
	}

	return out
}
