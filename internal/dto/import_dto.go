package dto

// ManualImportRow is one row of the manual bulk path, canonical fields
// straight from the form. Cells arrive untyped; the normalizer coerces them
// with the same rules as a spreadsheet upload.
type ManualImportRow struct {
	GuideID     string `json:"id_guid"`
	Date        string `json:"fecha"`
	Supplier    string `json:"proveedor"`
	Note        string `json:"observacion"`
	Tag         string `json:"tag"`
	Description string `json:"descripcion"`
	Quantity    string `json:"cantidad"`
	Specialty   string `json:"especialidad"`
}

type ManualImportRequest struct {
	Rows []ManualImportRow `json:"rows"`
}
