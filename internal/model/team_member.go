package model

import "time"

// TeamMember is a profile shown on the team page.
type TeamMember struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Role      string    `json:"role" gorm:"type:varchar(255)"`
	ImageUrl  *string   `json:"imageUrl"`
	Linkedin  *string   `json:"linkedin"`
	Instagram *string   `json:"instagram"`
	Email     *string   `json:"email"`
	Order     int       `json:"order" gorm:"column:display_order;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
