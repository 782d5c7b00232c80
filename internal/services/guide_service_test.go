package services

import (
	"testing"

	"github.com/3k2024/bodega-simple/internal/dto"
	"github.com/3k2024/bodega-simple/internal/importer"
	"github.com/3k2024/bodega-simple/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGuide(t *testing.T, svc *GuideService, id string) *models.Guide {
	t.Helper()
	guide, err := svc.Create(&dto.CreateGuideRequest{
		GuideID:     id,
		Date:        "2024-01-10",
		Supplier:    "Acme",
		Note:        "entrada normal",
		Tag:         "A1",
		Description: "Bolt",
		Quantity:    5,
		Specialty:   "Civil",
	})
	require.NoError(t, err)
	return guide
}

func TestCreateGuideWithFirstItem(t *testing.T) {
	svc := NewGuideService(testDB(t))

	guide := createGuide(t, svc, "100")
	assert.Equal(t, "100", guide.ID)
	require.NotNil(t, guide.Supplier)
	assert.Equal(t, "Acme", *guide.Supplier)
	require.Len(t, guide.Items, 1)
	assert.Equal(t, "A1", guide.Items[0].Tag)
	require.NotNil(t, guide.Items[0].Specialty)
	assert.Equal(t, models.SpecialtyCivil, *guide.Items[0].Specialty)
}

func TestCreateGuideRejectsDuplicate(t *testing.T) {
	db := testDB(t)
	svc := NewGuideService(db)
	createGuide(t, svc, "100")

	_, err := svc.Create(&dto.CreateGuideRequest{
		GuideID: "100", Date: "2024-01-11", Tag: "B1", Description: "Nut", Quantity: 1,
	})

	var dup *importer.DuplicateGuideError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "100", dup.GuideID)
	assert.EqualValues(t, 1, countRows(t, db, &models.Item{}), "the rejected entry must not add an item")
}

func TestAddItem(t *testing.T) {
	db := testDB(t)
	svc := NewGuideService(db)
	createGuide(t, svc, "100")

	item, err := svc.AddItem("100", &dto.AddItemRequest{
		Tag: " A2 ", Description: "Nut", Quantity: 3, Specialty: "Estructura",
	})
	require.NoError(t, err)

	assert.Equal(t, "A2", item.Tag, "tag must be trimmed")
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, "100", item.GuideID)
	require.NotNil(t, item.Specialty)
	assert.Equal(t, models.SpecialtyEstructura, *item.Specialty)
	assert.EqualValues(t, 2, countRows(t, db, &models.Item{}))
}

func TestAddItemRejectsNegativeQuantity(t *testing.T) {
	db := testDB(t)
	svc := NewGuideService(db)
	createGuide(t, svc, "100")

	_, err := svc.AddItem("100", &dto.AddItemRequest{Tag: "A2", Description: "Nut", Quantity: -5})

	var rowErr *importer.RowValidationError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, importer.FieldQuantity, rowErr.Field)
	assert.Equal(t, "-5", rowErr.Value)
	assert.EqualValues(t, 1, countRows(t, db, &models.Item{}), "rejected item must not persist")
}

func TestAddItemBlankFieldsGetSentinels(t *testing.T) {
	svc := NewGuideService(testDB(t))
	createGuide(t, svc, "100")

	item, err := svc.AddItem("100", &dto.AddItemRequest{Specialty: "no-such"})
	require.NoError(t, err)

	assert.Equal(t, "SIN TAG", item.Tag)
	assert.Equal(t, "SIN DESCRIPCION", item.Description)
	assert.Equal(t, 0, item.Quantity)
	assert.Nil(t, item.Specialty, "unknown specialty must stay unset")
}

func TestAddItemToMissingGuide(t *testing.T) {
	svc := NewGuideService(testDB(t))

	_, err := svc.AddItem("nope", &dto.AddItemRequest{Tag: "A1", Description: "Bolt", Quantity: 1})
	assert.ErrorIs(t, err, ErrGuideNotFound)
}

func TestDeleteGuideCascades(t *testing.T) {
	db := testDB(t)
	svc := NewGuideService(db)
	createGuide(t, svc, "100")
	_, err := svc.AddItem("100", &dto.AddItemRequest{Tag: "A2", Description: "Nut", Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Delete("100"))

	assert.EqualValues(t, 0, countRows(t, db, &models.Guide{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Item{}), "items must go with their guide")

	assert.ErrorIs(t, svc.Delete("100"), ErrGuideNotFound)
}

func TestSearchFilters(t *testing.T) {
	db := testDB(t)
	svc := NewGuideService(db)
	createGuide(t, svc, "100")

	_, err := svc.Create(&dto.CreateGuideRequest{
		GuideID: "200", Date: "2024-03-15", Supplier: "Ferretería Sur",
		Tag: "B1", Description: "Nut", Quantity: 2,
	})
	require.NoError(t, err)

	byID, err := svc.Search(&dto.SearchQuery{GuideID: "100"})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "100", byID[0].ID)

	bySupplier, err := svc.Search(&dto.SearchQuery{Supplier: "Sur"})
	require.NoError(t, err)
	require.Len(t, bySupplier, 1)
	assert.Equal(t, "200", bySupplier[0].ID)

	byRange, err := svc.Search(&dto.SearchQuery{DateFrom: "2024-02-01", DateTo: "2024-04-01"})
	require.NoError(t, err)
	require.Len(t, byRange, 1)
	assert.Equal(t, "200", byRange[0].ID)

	all, err := svc.Search(&dto.SearchQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestResetEmptiesStore(t *testing.T) {
	db := testDB(t)
	svc := NewGuideService(db)
	createGuide(t, svc, "100")
	createGuide(t, svc, "200")

	require.NoError(t, svc.Reset())
	assert.EqualValues(t, 0, countRows(t, db, &models.Guide{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Item{}))
}
