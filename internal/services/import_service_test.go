package services

import (
	"testing"

	"github.com/3k2024/bodega-simple/internal/dto"
	"github.com/3k2024/bodega-simple/internal/importer"
	"github.com/3k2024/bodega-simple/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One in-memory database per test; extra connections would each get
	// their own empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Guide{}, &models.Item{}, &models.ImportLog{}))
	return db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func manualRow(gd, fecha, tag, desc, cant, prov string) dto.ManualImportRow {
	return dto.ManualImportRow{GuideID: gd, Date: fecha, Tag: tag, Description: desc, Quantity: cant, Supplier: prov}
}

func TestImportRowsMergesRepeatedGuide(t *testing.T) {
	db := testDB(t)
	svc := NewImportService(db)

	summary, err := svc.ImportRows([]dto.ManualImportRow{
		manualRow("100", "2024-01-10", "A1", "Bolt", "5", "Acme"),
		manualRow("100", "2024-01-10", "A2", "Nut", "3", ""),
	}, "tester")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.RowsProcessed)
	assert.Equal(t, 1, summary.GuidesCreated)
	assert.EqualValues(t, 1, countRows(t, db, &models.Guide{}))
	assert.EqualValues(t, 2, countRows(t, db, &models.Item{}))

	var log models.ImportLog
	require.NoError(t, db.Order("id desc").First(&log).Error)
	assert.True(t, log.Success)
	assert.Equal(t, "manual", log.Source)
	assert.Equal(t, "tester", log.Username)
}

func TestImportRowsAllOrNothing(t *testing.T) {
	db := testDB(t)
	svc := NewImportService(db)

	_, err := svc.ImportRows([]dto.ManualImportRow{
		manualRow("100", "2024-01-10", "A1", "Bolt", "5", "Acme"),
		manualRow("101", "2024-01-11", "B1", "Washer", "abc", "Acme"),
		manualRow("102", "2024-01-12", "C1", "Screw", "2", "Acme"),
	}, "tester")

	var rowErr *importer.RowValidationError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, "abc", rowErr.Value)

	assert.EqualValues(t, 0, countRows(t, db, &models.Guide{}), "failed batch must leave the store unchanged")
	assert.EqualValues(t, 0, countRows(t, db, &models.Item{}))

	var log models.ImportLog
	require.NoError(t, db.Order("id desc").First(&log).Error)
	assert.False(t, log.Success)
}

func TestImportRowsAppendToExistingStore(t *testing.T) {
	db := testDB(t)
	svc := NewImportService(db)

	_, err := svc.ImportRows([]dto.ManualImportRow{
		manualRow("100", "2024-01-10", "A1", "Bolt", "5", "Acme"),
	}, "tester")
	require.NoError(t, err)

	// A later batch referencing the same guide merges into it.
	summary, err := svc.ImportRows([]dto.ManualImportRow{
		manualRow("100", "2024-02-01", "A3", "Rod", "7", "Other"),
	}, "tester")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.GuidesCreated)

	var guide models.Guide
	require.NoError(t, db.First(&guide, "id = ?", "100").Error)
	require.NotNil(t, guide.Supplier)
	assert.Equal(t, "Acme", *guide.Supplier, "existing guide fields stay untouched under merge")
	assert.EqualValues(t, 2, countRows(t, db, &models.Item{}))
}
