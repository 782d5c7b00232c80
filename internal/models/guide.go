package models

import "time"

// Guide is one delivery receipt (guía de despacho). The ID is the printed
// receipt number, assigned outside the system, and never changes.
type Guide struct {
	ID       string    `gorm:"primaryKey;size:64" json:"id_guid"`
	Date     time.Time `gorm:"type:date;not null;index" json:"fecha"`
	Supplier *string   `gorm:"size:255;index" json:"proveedor"`
	Note     *string   `gorm:"size:1024" json:"observacion"`

	Items []Item `gorm:"foreignKey:GuideID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Guide) TableName() string { return "guias" }
