package models

import (
	"net/url"
	"strconv"
	"time"
)

// Internship is a posting as returned by the backend. Stipend and
// LastDate keep the backend's string encodings (decimal and ISO date);
// the client only displays them.
type Internship struct {
	ID                int64     `json:"id"`
	Poster            *Profile  `json:"poster,omitempty"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	SkillsRequired    string    `json:"skills_required"`
	Stipend           string    `json:"stipend"`
	Duration          string    `json:"duration"`
	Location          string    `json:"location"`
	Remote            bool      `json:"remote"`
	LastDate          string    `json:"last_date"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	ApplicationsCount int       `json:"applications_count"`
}

// InternshipDraft is the writable subset of an internship, used for
// create and update calls.
type InternshipDraft struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	SkillsRequired string `json:"skills_required"`
	Stipend        string `json:"stipend"`
	Duration       string `json:"duration"`
	Location       string `json:"location"`
	Remote         bool   `json:"remote"`
	LastDate       string `json:"last_date"`
	IsActive       bool   `json:"is_active"`
}

// InternshipPatch is a partial internship update. Nil fields are
// omitted from the PATCH body.
type InternshipPatch struct {
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	SkillsRequired *string `json:"skills_required,omitempty"`
	Stipend        *string `json:"stipend,omitempty"`
	Duration       *string `json:"duration,omitempty"`
	Location       *string `json:"location,omitempty"`
	Remote         *bool   `json:"remote,omitempty"`
	LastDate       *string `json:"last_date,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// InternshipFilter collects the query parameters the list endpoint
// understands. Zero values are omitted from the query string.
type InternshipFilter struct {
	Query         string
	Location      string
	Skills        string
	Remote        *bool
	Ordering      string
	Page          int
	MyInternships bool
}

// Values encodes the filter as URL query parameters.
func (f InternshipFilter) Values() url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	if f.Location != "" {
		v.Set("location", f.Location)
	}
	if f.Skills != "" {
		v.Set("skills", f.Skills)
	}
	if f.Remote != nil {
		v.Set("remote", strconv.FormatBool(*f.Remote))
	}
	if f.Ordering != "" {
		v.Set("ordering", f.Ordering)
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.MyInternships {
		v.Set("my_internships", "true")
	}
	return v
}

// Page is the backend's paginated list envelope.
type Page[T any] struct {
	Count    int    `json:"count"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
	Results  []T    `json:"results"`
}
