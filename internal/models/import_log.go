package models

import (
	"time"

	"gorm.io/datatypes"
)

// ImportLog records the outcome of every ingestion attempt, successful or
// not, so a rejected file can be diagnosed after the fact.
type ImportLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Source    string         `gorm:"size:20;not null" json:"source"` // "file" | "manual"
	Filename  string         `gorm:"size:255" json:"filename"`
	Username  string         `gorm:"size:64;index" json:"username"`
	Success   bool           `gorm:"not null" json:"success"`
	Detail    datatypes.JSON `json:"detail"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}

func (ImportLog) TableName() string { return "import_logs" }
