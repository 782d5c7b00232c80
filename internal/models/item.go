package models

import "time"

// Item is one material line belonging to exactly one Guide.
type Item struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Tag         string     `gorm:"size:128;not null;index" json:"tag"`
	Description string     `gorm:"size:512;not null" json:"descripcion"`
	Quantity    int        `gorm:"not null" json:"cantidad"`
	Specialty   *Specialty `gorm:"size:64;index" json:"especialidad"`
	GuideID     string     `gorm:"size:64;not null;index" json:"id_guid"`

	CreatedAt time.Time `json:"created_at"`
}

func (Item) TableName() string { return "items" }
