package domain

import "time"

// EventType enumerates the analytics events the site records.
type EventType string

const (
	EventVisit    EventType = "visit"
	EventDownload EventType = "download"
	EventContact  EventType = "contact"
)

func (t EventType) Valid() bool {
	switch t {
	case EventVisit, EventDownload, EventContact:
		return true
	}
	return false
}

// AnalyticsEvent is append-only.
type AnalyticsEvent struct {
	ID        string    `json:"id"        bson:"_id"`
	EventType EventType `json:"eventType" bson:"event_type"`
	Page      string    `json:"page"      bson:"page"`
	IPAddress string    `json:"ipAddress" bson:"ip_address"`
	UserAgent string    `json:"userAgent" bson:"user_agent"`
	Referrer  string    `json:"referrer"  bson:"referrer"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// EventCount is one (eventType, page) bucket of the stats aggregation.
type EventCount struct {
	EventType EventType `json:"eventType" bson:"event_type"`
	Page      string    `json:"page"      bson:"page"`
	Count     int64     `json:"count"     bson:"count"`
}
