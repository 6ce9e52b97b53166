package model

import "time"

// Lead is an append-only capture of a contact-form submission. The
// application only ever creates leads; the row is the durable record even
// when the email notification fails. Lead fields are untrusted input and
// must be escaped wherever they are rendered.
type Lead struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null"`
	Message   string    `json:"message" gorm:"type:text"`
	Project   string    `json:"project" gorm:"type:varchar(100)"`
	CreatedAt time.Time `json:"created_at"`
}
