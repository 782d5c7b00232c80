package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/3k2024/bodega-simple/internal/database"
	"github.com/3k2024/bodega-simple/internal/dto"
	"github.com/3k2024/bodega-simple/internal/importer"
	"github.com/3k2024/bodega-simple/internal/models"
	"gorm.io/gorm"
)

var ErrGuideNotFound = errors.New("guide not found")

type GuideService struct {
	db *gorm.DB
}

func NewGuideService(db *gorm.DB) *GuideService {
	return &GuideService{db: db}
}

// Create is the manual entry path: one guide with its first item, in one
// transaction. A repeated guide id is rejected here, unlike bulk imports.
func (s *GuideService) Create(req *dto.CreateGuideRequest) (*models.Guide, error) {
	row := map[string]string{
		importer.FieldGuideID:     req.GuideID,
		importer.FieldDate:        req.Date,
		importer.FieldSupplier:    req.Supplier,
		importer.FieldNote:        req.Note,
		importer.FieldTag:         req.Tag,
		importer.FieldDescription: req.Description,
		importer.FieldQuantity:    strconv.Itoa(req.Quantity),
		importer.FieldSpecialty:   req.Specialty,
	}

	fill := importer.DefaultFill()
	session := importer.NewSession(importer.DefaultSynonyms(), fill, importer.PolicyReject)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		_, err := session.IngestRows(database.NewRecordStore(tx), []map[string]string{row})
		return err
	})
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(req.GuideID)
	if id == "" {
		id = fill.GuideID
	}
	return s.Get(id)
}

func (s *GuideService) AddItem(guideID string, req *dto.AddItemRequest) (*models.Item, error) {
	var guide models.Guide
	if err := s.db.First(&guide, "id = ?", guideID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuideNotFound
		}
		return nil, err
	}

	// Same coercion rules as every ingestion path: sentinels for blank
	// text, no negative quantities, unknown specialties dropped.
	rec, err := importer.NormalizeRow(map[string]string{
		importer.FieldTag:         req.Tag,
		importer.FieldDescription: req.Description,
		importer.FieldQuantity:    strconv.Itoa(req.Quantity),
		importer.FieldSpecialty:   req.Specialty,
	}, 0, importer.DefaultFill())
	if err != nil {
		return nil, err
	}

	item := models.Item{
		Tag:         rec.Tag,
		Description: rec.Description,
		Quantity:    rec.Quantity,
		Specialty:   rec.Specialty,
		GuideID:     guide.ID,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GuideService) List() ([]models.Guide, error) {
	var guides []models.Guide
	err := s.db.Preload("Items").Order("date desc, id").Find(&guides).Error
	return guides, err
}

func (s *GuideService) Get(id string) (*models.Guide, error) {
	var guide models.Guide
	err := s.db.Preload("Items").First(&guide, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGuideNotFound
	}
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

// Delete removes a guide and its items in one transaction. Items are
// deleted explicitly so the cascade holds even without FK enforcement.
func (s *GuideService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var guide models.Guide
		if err := tx.First(&guide, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGuideNotFound
			}
			return err
		}
		if err := tx.Where("guide_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&guide).Error
	})
}

func (s *GuideService) Search(q *dto.SearchQuery) ([]models.Guide, error) {
	stmt := s.db.Preload("Items")
	if q.GuideID != "" {
		stmt = stmt.Where("id = ?", q.GuideID)
	}
	if q.Supplier != "" {
		stmt = stmt.Where("supplier LIKE ?", "%"+q.Supplier+"%")
	}
	if q.DateFrom != "" {
		from, err := importer.ParseDate(q.DateFrom)
		if err != nil {
			return nil, &importer.RowValidationError{Field: "date_from", Value: q.DateFrom, Reason: "unrecognized date format"}
		}
		stmt = stmt.Where("date >= ?", from)
	}
	if q.DateTo != "" {
		to, err := importer.ParseDate(q.DateTo)
		if err != nil {
			return nil, &importer.RowValidationError{Field: "date_to", Value: q.DateTo, Reason: "unrecognized date format"}
		}
		stmt = stmt.Where("date <= ?", to)
	}

	var guides []models.Guide
	err := stmt.Order("date desc, id").Find(&guides).Error
	return guides, err
}

// Reset empties the whole store.
func (s *GuideService) Reset() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return database.NewRecordStore(tx).DeleteAll()
	})
}
