package domain

// Contact roles as reported in RoleDifference.
const (
	RoleAdmin      = "AdminContact"
	RoleRegistrant = "RegistrantContact"
	RoleTech       = "TechContact"
)

// DomainContacts groups the three contact roles of a single domain.
type DomainContacts struct {
	Admin      Contact `json:"adminContact"`
	Registrant Contact `json:"registrantContact"`
	Tech       Contact `json:"techContact"`
}

// RoleDifference lists the field differences of one contact role.
type RoleDifference struct {
	Role        string            `json:"role"`
	Differences []FieldDifference `json:"differences"`
}

// UniformContacts returns a DomainContacts in which c plays all three roles.
func UniformContacts(c Contact) DomainContacts {
	return DomainContacts{Admin: c, Registrant: c, Tech: c}
}

// Equal reports whether every role of both sets is equal field by field.
func (d DomainContacts) Equal(other DomainContacts) bool {
	return d.Admin.Equal(other.Admin) &&
		d.Registrant.Equal(other.Registrant) &&
		d.Tech.Equal(other.Tech)
}

// Differences compares d (left) with other (right) role by role, in the order
// admin, registrant, tech. Roles without differences are omitted.
func (d DomainContacts) Differences(other DomainContacts) []RoleDifference {
	roles := [...]struct {
		name        string
		left, right Contact
	}{
		{RoleAdmin, d.Admin, other.Admin},
		{RoleRegistrant, d.Registrant, other.Registrant},
		{RoleTech, d.Tech, other.Tech},
	}

	var out []RoleDifference
	for _, r := range roles {
		if diff := r.left.Differences(r.right); len(diff) > 0 {
			out = append(out, RoleDifference{Role: r.name, Differences: diff})
		}
	}

	return out
}
