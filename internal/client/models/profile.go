// Package models defines the client-side records exchanged with the
// InternHub backend. Field tags follow the backend's JSON contract;
// responses are decoded into these types at the API boundary so shape
// mismatches surface as recoverable errors instead of loose maps.
package models

// Role distinguishes the two account types in the marketplace.
type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
)

// Valid reports whether r is one of the roles the backend defines.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleCompany
}

// User is the account record nested inside a profile.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Profile is the server-owned profile record. The client caches one
// copy in the session controller; it goes stale if the backend changes
// it out-of-band.
type Profile struct {
	ID          int64  `json:"id"`
	User        User   `json:"user"`
	Role        Role   `json:"role"`
	Bio         string `json:"bio"`
	Skills      string `json:"skills"`
	CV          string `json:"cv"`
	CompanyName string `json:"company_name"`
	Logo        string `json:"logo"`

	// student-specific, blank for companies
	Phone          string `json:"phone"`
	College        string `json:"college"`
	Degree         string `json:"degree"`
	GraduationYear int    `json:"graduation_year"`
	GitHub         string `json:"github"`
	LinkedIn       string `json:"linkedin"`
	Portfolio      string `json:"portfolio"`
}

// ProfileUpdate is a partial profile update. Nil fields are omitted
// from the PATCH body and left untouched by the backend.
type ProfileUpdate struct {
	Bio            *string `json:"bio,omitempty"`
	Skills         *string `json:"skills,omitempty"`
	CompanyName    *string `json:"company_name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	College        *string `json:"college,omitempty"`
	Degree         *string `json:"degree,omitempty"`
	GraduationYear *int    `json:"graduation_year,omitempty"`
	GitHub         *string `json:"github,omitempty"`
	LinkedIn       *string `json:"linkedin,omitempty"`
	Portfolio      *string `json:"portfolio,omitempty"`
}

// Registration is the create-account request. Role-specific fields are
// optional and validated by the backend.
type Registration struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Password2   string `json:"password2"`
	Role        Role   `json:"role"`
	CompanyName string `json:"company_name,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
}
