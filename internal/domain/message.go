package domain

import "time"

// ContactMessage is a message submitted through the public contact form
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Subject   string
	Message   string
	IsRead    bool
	IPAddress *string
	CreatedAt time.Time
}
