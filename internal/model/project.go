package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores an ordered list of strings as a JSON text column. Both
// postgres and sqlite take the serialized form as-is.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}

	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// Project is a portfolio entry. Description and Details hold producer-trusted
// rich HTML. Category is free text; the conventional values are residential,
// commercial, cultural and industrial.
type Project struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Description *string    `json:"description" gorm:"type:text"`
	Details     *string    `json:"details" gorm:"type:text"`
	Category    string     `json:"category" gorm:"type:varchar(100)"`
	ImageUrl    *string    `json:"imageUrl"`
	Images      StringList `json:"images" gorm:"type:text"`
	Featured    bool       `json:"featured"`
	Order       int        `json:"order" gorm:"column:display_order;index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Gallery returns the ordered image list for the gallery view. An empty list
// degrades to the primary image as a one-element gallery.
func (p *Project) Gallery() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.ImageUrl != nil && *p.ImageUrl != "" {
		return []string{*p.ImageUrl}
	}
	return nil
}
