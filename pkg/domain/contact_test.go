package domain_test

import (
	"domainsync/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func fullContact() domain.Contact {
	return domain.Contact{
		AddressLine1:     domain.String("1 Main St"),
		AddressLine2:     domain.String("Suite 2"),
		City:             domain.String("Seattle"),
		ContactType:      domain.String("PERSON"),
		CountryCode:      domain.String("US"),
		Email:            domain.String("hostmaster@example.com"),
		Fax:              domain.String("+1.2065550100"),
		FirstName:        domain.String("Jane"),
		LastName:         domain.String("Doe"),
		OrganizationName: domain.String("Example"),
		PhoneNumber:      domain.String("+1.2065550199"),
		State:            domain.String("WA"),
		ZipCode:          domain.String("98101"),
	}
}

func TestContact_CompareWithItself(t *testing.T) {
	for _, c := range []domain.Contact{{}, fullContact(), {Email: domain.String("")}} {
		require.Empty(t, c.Differences(c))
		require.True(t, c.Equal(c))
	}
}

func TestContact_Differences_FieldOrder(t *testing.T) {
	left := fullContact()
	right := fullContact()
	right.ZipCode = domain.String("98102")
	right.AddressLine1 = domain.String("2 Main St")
	right.Email = nil

	diff := left.Differences(right)
	require.Equal(t, []domain.FieldDifference{
		{Field: "AddressLine1", Left: domain.String("1 Main St"), Right: domain.String("2 Main St")},
		{Field: "Email", Left: domain.String("hostmaster@example.com"), Right: nil},
		{Field: "ZipCode", Left: domain.String("98101"), Right: domain.String("98102")},
	}, diff)
	require.False(t, left.Equal(right))
}

func TestContact_Differences_Symmetric(t *testing.T) {
	a := fullContact()
	b := domain.Contact{City: domain.String("Seattle"), State: domain.String("wa")}

	ab := a.Differences(b)
	ba := b.Differences(a)
	require.Len(t, ba, len(ab))
	for i := range ab {
		require.Equal(t, ab[i].Field, ba[i].Field)
		require.Equal(t, ab[i].Left, ba[i].Right)
		require.Equal(t, ab[i].Right, ba[i].Left)
	}
}

func TestContact_NilAndEmptyAreDistinct(t *testing.T) {
	withEmpty := domain.Contact{Fax: domain.String("")}
	withNil := domain.Contact{}

	require.False(t, withEmpty.Equal(withNil))
	require.Equal(t, []domain.FieldDifference{
		{Field: "Fax", Left: domain.String(""), Right: nil},
	}, withEmpty.Differences(withNil))
}

func TestContact_NoNormalization(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
	}{
		{name: "case", left: "Jane", right: "jane"},
		{name: "leading space", left: "Jane", right: " Jane"},
		{name: "trailing space", left: "Jane", right: "Jane "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := domain.Contact{FirstName: domain.String(tt.left)}
			r := domain.Contact{FirstName: domain.String(tt.right)}
			require.False(t, l.Equal(r))
			require.Len(t, l.Differences(r), 1)
		})
	}
}

func TestContact_EverySingleFieldIsCompared(t *testing.T) {
	names := domain.ContactFieldNames()
	require.Len(t, names, 13)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			left := fullContact()
			right := fullContact()
			setField(&right, name, "changed")

			diff := left.Differences(right)
			require.Len(t, diff, 1)
			require.Equal(t, name, diff[0].Field)
			require.Equal(t, "changed", *diff[0].Right)
		})
	}
}

// setField changes one field by name; it mirrors the field list of Contact.
func setField(c *domain.Contact, name, value string) {
	v := domain.String(value)
	switch name {
	case "AddressLine1":
		c.AddressLine1 = v
	case "AddressLine2":
		c.AddressLine2 = v
	case "City":
		c.City = v
	case "ContactType":
		c.ContactType = v
	case "CountryCode":
		c.CountryCode = v
	case "Email":
		c.Email = v
	case "Fax":
		c.Fax = v
	case "FirstName":
		c.FirstName = v
	case "LastName":
		c.LastName = v
	case "OrganizationName":
		c.OrganizationName = v
	case "PhoneNumber":
		c.PhoneNumber = v
	case "State":
		c.State = v
	case "ZipCode":
		c.ZipCode = v
	}
}

func TestContact_Validate(t *testing.T) {
	tests := map[string]struct {
		contact domain.Contact
		valid   bool
	}{
		"empty contact":        {domain.Contact{}, true},
		"full contact":         {fullContact(), true},
		"empty free text":      {domain.Contact{Fax: domain.String(""), State: domain.String("")}, true},
		"empty contact type":   {domain.Contact{ContactType: domain.String("")}, false},
		"empty country code":   {domain.Contact{CountryCode: domain.String("")}, false},
		"absent enum accepted": {domain.Contact{FirstName: domain.String("Jane")}, true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.contact.Validate()
			if tt.valid {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, domain.ErrInvalidContact)
		})
	}
}
