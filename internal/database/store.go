package database

import (
	"errors"

	"github.com/3k2024/bodega-simple/internal/models"
	"gorm.io/gorm"
)

// RecordStore implements importer.Store over a *gorm.DB. Hand it a
// transaction handle and the whole batch commits or rolls back together.
type RecordStore struct {
	db *gorm.DB
}

func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

func (s *RecordStore) GetGuide(id string) (*models.Guide, error) {
	var guide models.Guide
	err := s.db.First(&guide, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func (s *RecordStore) CreateGuide(g *models.Guide) error {
	return s.db.Create(g).Error
}

func (s *RecordStore) CreateItem(it *models.Item) error {
	return s.db.Create(it).Error
}

// DeleteAll empties both tables. Items go first so the store behaves the
// same on databases without enforced foreign keys.
func (s *RecordStore) DeleteAll() error {
	if err := s.db.Where("1 = 1").Delete(&models.Item{}).Error; err != nil {
		return err
	}
	return s.db.Where("1 = 1").Delete(&models.Guide{}).Error
}
