package handler

import "github.com/portfolio-site/portfolio-api/internal/core/domain"

type personalRequest struct {
	Name        string `json:"name"        validate:"required,max=200"`
	Title       string `json:"title"       validate:"required,max=200"`
	Location    string `json:"location"    validate:"required,max=200"`
	Email       string `json:"email"       validate:"required,email"`
	Phone       string `json:"phone"       validate:"required,max=50"`
	LinkedIn    string `json:"linkedin"    validate:"required,max=300"`
	Summary     string `json:"summary"     validate:"required"`
	CurrentRole string `json:"currentRole" validate:"required,max=200"`
}

type experienceRequest struct {
	Company      string   `json:"company"      validate:"required"`
	Position     string   `json:"position"     validate:"required"`
	Duration     string   `json:"duration"     validate:"required"`
	Location     string   `json:"location"     validate:"required"`
	Achievements []string `json:"achievements" validate:"dive,required"`
	Technologies []string `json:"technologies" validate:"dive,required"`
}

type educationRequest struct {
	Degree          string   `json:"degree"          validate:"required"`
	Institution     string   `json:"institution"     validate:"required"`
	Location        string   `json:"location"        validate:"required"`
	Duration        string   `json:"duration"        validate:"required"`
	RelevantCourses []string `json:"relevantCourses" validate:"dive,required"`
}

type certificationRequest struct {
	Name         string `json:"name"         validate:"required"`
	Issuer       string `json:"issuer"       validate:"required"`
	Year         string `json:"year"         validate:"required"`
	CredentialID string `json:"credentialId"`
}

// profileRequest is the full replacement payload of PUT /profile.
// Every skills category must carry a list, even an empty one.
type profileRequest struct {
	Personal       personalRequest        `json:"personal"       validate:"required"`
	Skills         map[string][]string    `json:"skills"         validate:"required,dive,keys,required,endkeys,required"`
	Experience     []experienceRequest    `json:"experience"     validate:"dive"`
	Education      []educationRequest     `json:"education"      validate:"dive"`
	Certifications []certificationRequest `json:"certifications" validate:"dive"`
}

func (r profileRequest) toDomain() domain.Profile {
	p := domain.Profile{
		Personal:       domain.PersonalInfo(r.Personal),
		Skills:         r.Skills,
		Experience:     make([]domain.Experience, 0, len(r.Experience)),
		Education:      make([]domain.Education, 0, len(r.Education)),
		Certifications: make([]domain.Certification, 0, len(r.Certifications)),
	}
	for _, e := range r.Experience {
		p.Experience = append(p.Experience, domain.Experience{
			Company:      e.Company,
			Position:     e.Position,
			Duration:     e.Duration,
			Location:     e.Location,
			Achievements: nonNil(e.Achievements),
			Technologies: nonNil(e.Technologies),
		})
	}
	for _, e := range r.Education {
		p.Education = append(p.Education, domain.Education{
			Degree:          e.Degree,
			Institution:     e.Institution,
			Location:        e.Location,
			Duration:        e.Duration,
			RelevantCourses: nonNil(e.RelevantCourses),
		})
	}
	for _, c := range r.Certifications {
		p.Certifications = append(p.Certifications, domain.Certification(c))
	}
	return p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
