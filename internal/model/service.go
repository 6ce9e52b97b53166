package model

import "time"

// DefaultIconName is used when a service is created without any icon.
const DefaultIconName = "building"

// Service represents a listed offering. Description fields hold
// producer-trusted rich HTML edited in the admin panel.
type Service struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Title               *string   `json:"title"`
	Description         *string   `json:"description" gorm:"type:text"`
	DetailedDescription *string   `json:"detailedDescription" gorm:"type:text"`
	Icon                string    `json:"icon" gorm:"type:varchar(50)"`
	IconSvg             *string   `json:"iconSvg" gorm:"type:text"`
	IconImageUrl        *string   `json:"iconImageUrl"`
	Order               int       `json:"order" gorm:"column:display_order;index"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
