package importer

// Canonical field names used throughout the ingestion pipeline.
const (
	FieldGuideID     = "guide_id"
	FieldDate        = "date"
	FieldSupplier    = "supplier"
	FieldTag         = "tag"
	FieldDescription = "description"
	FieldQuantity    = "quantity"
	FieldSpecialty   = "specialty"
	FieldNote        = "note"
)

// requiredFields must all resolve to a column or the file is rejected.
var requiredFields = []string{
	FieldGuideID,
	FieldDate,
	FieldSupplier,
	FieldTag,
	FieldDescription,
	FieldQuantity,
}

// SynonymTable maps canonical fields to the column headers accepted for
// them, in priority order. Versioned so header conventions can evolve
// without touching the mapper.
type SynonymTable struct {
	Version  int
	Synonyms map[string][]string
}

// DefaultSynonyms is v1, covering the headers seen on supplier spreadsheets.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		Version: 1,
		Synonyms: map[string][]string{
			FieldGuideID:     {"GD", "Guía", "Guia", "N° Guía", "Nro Guia"},
			FieldDate:        {"Fecha", "FECHA", "Fecha Guía"},
			FieldSupplier:    {"Proveedor", "PROVEEDOR"},
			FieldTag:         {"TAG", "Tag"},
			FieldDescription: {"Descripcion Material", "Descripción Material", "Descripcion", "Descripción"},
			FieldQuantity:    {"Cantidad", "CANTIDAD", "Cant"},
			FieldSpecialty:   {"Especialidad", "ESPECIALIDAD"},
			FieldNote:        {"Observacion", "Observación", "Obs"},
		},
	}
}

// MapColumns resolves each canonical field to the first of its synonyms
// present in headers. Pure function: same inputs, same mapping. Returns
// MissingColumnsError naming every unresolved required field.
func MapColumns(headers []string, table SynonymTable) (map[string]string, error) {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	mapping := make(map[string]string)
	for field, synonyms := range table.Synonyms {
		for _, syn := range synonyms {
			if present[syn] {
				mapping[field] = syn
				break
			}
		}
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := mapping[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Fields: missing}
	}

	return mapping, nil
}
