package services

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/3k2024/bodega-simple/internal/database"
	"github.com/3k2024/bodega-simple/internal/dto"
	"github.com/3k2024/bodega-simple/internal/importer"
	"github.com/3k2024/bodega-simple/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImportService runs bulk ingestion batches. Both paths use the merge
// policy: a repeated guide id attaches more items to the existing guide.
type ImportService struct {
	db *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

// ImportFile ingests an uploaded .xlsx. The whole file commits in one
// transaction or not at all.
func (s *ImportService) ImportFile(filename string, r io.Reader, username string) (*importer.Summary, error) {
	sheet, err := importer.ReadXLSX(filename, r)
	if err != nil {
		s.logAttempt("file", filename, username, nil, err)
		return nil, err
	}

	session := importer.NewSession(importer.DefaultSynonyms(), importer.DefaultFill(), importer.PolicyMerge)

	var summary *importer.Summary
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		summary, err = session.IngestSheet(database.NewRecordStore(tx), sheet)
		return err
	})

	s.logAttempt("file", filename, username, summary, err)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// ImportRows ingests manual bulk rows, same transaction semantics as a file.
func (s *ImportService) ImportRows(reqRows []dto.ManualImportRow, username string) (*importer.Summary, error) {
	rows := make([]map[string]string, 0, len(reqRows))
	for _, r := range reqRows {
		rows = append(rows, map[string]string{
			importer.FieldGuideID:     r.GuideID,
			importer.FieldDate:        r.Date,
			importer.FieldSupplier:    r.Supplier,
			importer.FieldNote:        r.Note,
			importer.FieldTag:         r.Tag,
			importer.FieldDescription: r.Description,
			importer.FieldQuantity:    r.Quantity,
			importer.FieldSpecialty:   r.Specialty,
		})
	}

	session := importer.NewSession(importer.DefaultSynonyms(), importer.DefaultFill(), importer.PolicyMerge)

	var summary *importer.Summary
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		summary, err = session.IngestRows(database.NewRecordStore(tx), rows)
		return err
	})

	s.logAttempt("manual", "", username, summary, err)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *ImportService) ListLogs(limit int) ([]models.ImportLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var logs []models.ImportLog
	err := s.db.Order("created_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}

// logAttempt writes the audit record for one ingestion attempt. Audit
// failures are logged, never surfaced: they must not mask the import result.
func (s *ImportService) logAttempt(source, filename, username string, summary *importer.Summary, ingestErr error) {
	detail := map[string]interface{}{}
	if summary != nil {
		detail["rows_processed"] = summary.RowsProcessed
		detail["guides_created"] = summary.GuidesCreated
	}
	if ingestErr != nil {
		detail["error"] = ingestErr.Error()
	}
	raw, err := json.Marshal(detail)
	if err != nil {
		raw = []byte("{}")
	}

	log := models.ImportLog{
		Source:   source,
		Filename: filename,
		Username: username,
		Success:  ingestErr == nil,
		Detail:   datatypes.JSON(raw),
	}
	if err := s.db.Create(&log).Error; err != nil {
		slog.Error("failed to write import log", "source", source, "error", err)
	}
}
