package domain

import "time"

// ResumeID is the fixed key of the resume metadata document.
const ResumeID = "resume"

// Resume points at the currently published resume file.
type Resume struct {
	ID          string    `json:"-"           bson:"_id"`
	Filename    string    `json:"filename"    bson:"filename"`
	URL         string    `json:"url"         bson:"url"`
	ContentType string    `json:"contentType" bson:"content_type"`
	Size        int64     `json:"size"        bson:"size"`
	UploadedAt  time.Time `json:"uploadedAt"  bson:"uploaded_at"`
}
