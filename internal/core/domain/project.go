package domain

import "time"

// ProjectType tags where a project was carried out.
type ProjectType string

const (
	ProjectProfessional ProjectType = "professional"
	ProjectAcademic     ProjectType = "academic"
)

func (t ProjectType) Valid() bool {
	return t == ProjectProfessional || t == ProjectAcademic
}

// Project is a single portfolio work item.
type Project struct {
	ID           string      `json:"id"           bson:"_id"`
	Title        string      `json:"title"        bson:"title"`
	Company      string      `json:"company"      bson:"company"`
	Type         ProjectType `json:"type"         bson:"type"`
	Description  string      `json:"description"  bson:"description"`
	Impact       []string    `json:"impact"       bson:"impact"`
	Technologies []string    `json:"technologies" bson:"technologies"`
	Details      string      `json:"details"      bson:"details"`
	Featured     bool        `json:"featured"     bson:"featured"`
	DisplayOrder int         `json:"displayOrder" bson:"display_order"`
	CreatedAt    time.Time   `json:"createdAt"    bson:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt"    bson:"updated_at"`
}

// ProjectPatch holds the fields of a partial update; nil means unchanged.
type ProjectPatch struct {
	Title        *string
	Company      *string
	Type         *ProjectType
	Description  *string
	Impact       *[]string
	Technologies *[]string
	Details      *string
	Featured     *bool
	DisplayOrder *int
}

// Apply copies every non-nil field of the patch onto p.
func (patch ProjectPatch) Apply(p *Project) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Company != nil {
		p.Company = *patch.Company
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Impact != nil {
		p.Impact = *patch.Impact
	}
	if patch.Technologies != nil {
		p.Technologies = *patch.Technologies
	}
	if patch.Details != nil {
		p.Details = *patch.Details
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.DisplayOrder != nil {
		p.DisplayOrder = *patch.DisplayOrder
	}
}
