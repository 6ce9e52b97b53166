package model

import "time"

// AdminUser is an administrator account for the editing panel.
type AdminUser struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	Password  string    `json:"-" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AllModels lists every model for automigration.
func AllModels() []interface{} {
	return []interface{}{
		&SiteConfig{},
		&Service{},
		&Project{},
		&TeamMember{},
		&Lead{},
		&AdminUser{},
	}
}
