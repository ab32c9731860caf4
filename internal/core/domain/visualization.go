package domain

import "time"

// Visualization describes a chart shown in the analytics showcase section.
// ChartData is passed through to the client untouched.
type Visualization struct {
	ID           string         `json:"id"           bson:"_id"`
	Title        string         `json:"title"        bson:"title"`
	Description  string         `json:"description"  bson:"description"`
	Metrics      []string       `json:"metrics"      bson:"metrics"`
	ChartType    string         `json:"chartType"    bson:"chart_type"`
	ChartData    map[string]any `json:"chartData"    bson:"chart_data"`
	IsActive     bool           `json:"isActive"     bson:"is_active"`
	DisplayOrder int            `json:"displayOrder" bson:"display_order"`
	CreatedAt    time.Time      `json:"createdAt"    bson:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt"    bson:"updated_at"`
}

type VisualizationPatch struct {
	Title        *string
	Description  *string
	Metrics      *[]string
	ChartType    *string
	ChartData    *map[string]any
	IsActive     *bool
	DisplayOrder *int
}

func (patch VisualizationPatch) Apply(v *Visualization) {
	if patch.Title != nil {
		v.Title = *patch.Title
	}
	if patch.Description != nil {
		v.Description = *patch.Description
	}
	if patch.Metrics != nil {
		v.Metrics = *patch.Metrics
	}
	if patch.ChartType != nil {
		v.ChartType = *patch.ChartType
	}
	if patch.ChartData != nil {
		v.ChartData = *patch.ChartData
	}
	if patch.IsActive != nil {
		v.IsActive = *patch.IsActive
	}
	if patch.DisplayOrder != nil {
		v.DisplayOrder = *patch.DisplayOrder
	}
}
