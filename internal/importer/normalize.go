package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/3k2024/bodega-simple/internal/models"
)

// dateFormats are the accepted date inputs, tried in order.
var dateFormats = []string{"2006-01-02", "02/01/2006"}

// Defaults are the fill-in values for blank cells. Blank text cells get a
// sentinel rather than failing the row: suppliers leave those columns empty
// all the time and exports should still show something searchable.
type Defaults struct {
	GuideID     string
	Supplier    string
	Tag         string
	Description string
	Note        string
	Date        time.Time
}

func DefaultFill() Defaults {
	return Defaults{
		GuideID:     "SIN GD",
		Supplier:    "SIN PROVEEDOR",
		Tag:         "SIN TAG",
		Description: "SIN DESCRIPCION",
		Note:        "",
		Date:        time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Record is one fully typed row, ready for the reconciler.
type Record struct {
	GuideID     string
	Date        time.Time
	Supplier    string
	Note        string
	Tag         string
	Description string
	Quantity    int
	Specialty   *models.Specialty
}

// NormalizeRow coerces one raw row (canonical field -> raw cell value) into
// a Record. row is the spreadsheet row number used in error messages.
func NormalizeRow(raw map[string]string, row int, fill Defaults) (*Record, error) {
	rec := &Record{
		GuideID:     textOr(raw[FieldGuideID], fill.GuideID),
		Supplier:    textOr(raw[FieldSupplier], fill.Supplier),
		Note:        textOr(raw[FieldNote], fill.Note),
		Tag:         textOr(raw[FieldTag], fill.Tag),
		Description: textOr(raw[FieldDescription], fill.Description),
	}

	qty := strings.TrimSpace(raw[FieldQuantity])
	if qty == "" {
		rec.Quantity = 0
	} else {
		n, err := strconv.Atoi(qty)
		if err != nil {
			return nil, &RowValidationError{Row: row, Field: FieldQuantity, Value: qty, Reason: "not a whole number"}
		}
		if n < 0 {
			return nil, &RowValidationError{Row: row, Field: FieldQuantity, Value: qty, Reason: "negative quantity"}
		}
		rec.Quantity = n
	}

	date := strings.TrimSpace(raw[FieldDate])
	if date == "" {
		rec.Date = fill.Date
	} else {
		parsed, err := ParseDate(date)
		if err != nil {
			return nil, &RowValidationError{Row: row, Field: FieldDate, Value: date, Reason: "unrecognized date format"}
		}
		rec.Date = parsed
	}

	// Unknown specialty strings are dropped, not adopted as new categories.
	if sp, ok := models.ParseSpecialty(strings.TrimSpace(raw[FieldSpecialty])); ok {
		rec.Specialty = &sp
	}

	return rec, nil
}

// ParseDate tries each accepted date format in order.
func ParseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateFormats {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func textOr(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}
