package models

import "time"

// CollectionDocument stores one whole collection as a JSON payload when the
// postgres storage driver is selected.
type CollectionDocument struct {
	Name      string    `gorm:"primaryKey;size:100" json:"name"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}
