package handler

import (
	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

type createProjectRequest struct {
	Title        string   `json:"title"        validate:"required,max=200"`
	Company      string   `json:"company"      validate:"required,max=200"`
	Type         string   `json:"type"         validate:"required,oneof=professional academic"`
	Description  string   `json:"description"  validate:"required"`
	Impact       []string `json:"impact"       validate:"dive,required"`
	Technologies []string `json:"technologies" validate:"dive,required"`
	Details      string   `json:"details"`
	Featured     *bool    `json:"featured"`
	DisplayOrder *int     `json:"displayOrder" validate:"omitnil,min=0"`
}

func (r createProjectRequest) toInput() ports.CreateProjectInput {
	return ports.CreateProjectInput{
		Title:        r.Title,
		Company:      r.Company,
		Type:         domain.ProjectType(r.Type),
		Description:  r.Description,
		Impact:       r.Impact,
		Technologies: r.Technologies,
		Details:      r.Details,
		Featured:     r.Featured,
		DisplayOrder: r.DisplayOrder,
	}
}

// updateProjectRequest carries a partial update; absent fields stay untouched.
type updateProjectRequest struct {
	Title        *string   `json:"title"        validate:"omitnil,min=1,max=200"`
	Company      *string   `json:"company"      validate:"omitnil,min=1,max=200"`
	Type         *string   `json:"type"         validate:"omitnil,oneof=professional academic"`
	Description  *string   `json:"description"  validate:"omitnil,min=1"`
	Impact       *[]string `json:"impact"       validate:"omitnil,dive,required"`
	Technologies *[]string `json:"technologies" validate:"omitnil,dive,required"`
	Details      *string   `json:"details"`
	Featured     *bool     `json:"featured"`
	DisplayOrder *int      `json:"displayOrder" validate:"omitnil,min=0"`
}

func (r updateProjectRequest) toPatch() domain.ProjectPatch {
	patch := domain.ProjectPatch{
		Title:        r.Title,
		Company:      r.Company,
		Description:  r.Description,
		Impact:       r.Impact,
		Technologies: r.Technologies,
		Details:      r.Details,
		Featured:     r.Featured,
		DisplayOrder: r.DisplayOrder,
	}
	if r.Type != nil {
		t := domain.ProjectType(*r.Type)
		patch.Type = &t
	}
	return patch
}
