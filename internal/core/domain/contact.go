package domain

import "time"

// ContactMessage is a message left through the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"        bson:"_id"`
	Name      string    `json:"name"      bson:"name"`
	Email     string    `json:"email"     bson:"email"`
	Subject   string    `json:"subject"   bson:"subject"`
	Message   string    `json:"message"   bson:"message"`
	IsRead    bool      `json:"isRead"    bson:"is_read"`
	IPAddress string    `json:"ipAddress" bson:"ip_address"`
	UserAgent string    `json:"userAgent" bson:"user_agent"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
