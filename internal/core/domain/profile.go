package domain

import "time"

// ProfileID is the fixed key of the single profile document.
const ProfileID = "profile"

type PersonalInfo struct {
	Name        string `json:"name"        bson:"name"`
	Title       string `json:"title"       bson:"title"`
	Location    string `json:"location"    bson:"location"`
	Email       string `json:"email"       bson:"email"`
	Phone       string `json:"phone"       bson:"phone"`
	LinkedIn    string `json:"linkedin"    bson:"linkedin"`
	Summary     string `json:"summary"     bson:"summary"`
	CurrentRole string `json:"currentRole" bson:"current_role"`
}

type Experience struct {
	Company      string   `json:"company"      bson:"company"`
	Position     string   `json:"position"     bson:"position"`
	Duration     string   `json:"duration"     bson:"duration"`
	Location     string   `json:"location"     bson:"location"`
	Achievements []string `json:"achievements" bson:"achievements"`
	Technologies []string `json:"technologies" bson:"technologies"`
}

type Education struct {
	Degree          string   `json:"degree"          bson:"degree"`
	Institution     string   `json:"institution"     bson:"institution"`
	Location        string   `json:"location"        bson:"location"`
	Duration        string   `json:"duration"        bson:"duration"`
	RelevantCourses []string `json:"relevantCourses" bson:"relevant_courses"`
}

type Certification struct {
	Name         string `json:"name"                   bson:"name"`
	Issuer       string `json:"issuer"                 bson:"issuer"`
	Year         string `json:"year"                   bson:"year"`
	CredentialID string `json:"credentialId,omitempty" bson:"credential_id,omitempty"`
}

// Profile is the biography record rendered on the landing page.
// Skills maps a category name (e.g. "programming") to an ordered list.
type Profile struct {
	ID             string              `json:"id"             bson:"_id"`
	Personal       PersonalInfo        `json:"personal"       bson:"personal"`
	Skills         map[string][]string `json:"skills"         bson:"skills"`
	Experience     []Experience        `json:"experience"     bson:"experience"`
	Education      []Education         `json:"education"      bson:"education"`
	Certifications []Certification     `json:"certifications" bson:"certifications"`
	CreatedAt      time.Time           `json:"createdAt"      bson:"created_at"`
	UpdatedAt      time.Time           `json:"updatedAt"      bson:"updated_at"`
}
