package dto

// CreateGuideRequest is the manual entry form: a new guide plus its first
// item in one shot. Duplicate guide ids are rejected on this path.
type CreateGuideRequest struct {
	GuideID     string `json:"id_guid"`
	Date        string `json:"fecha"`
	Supplier    string `json:"proveedor"`
	Note        string `json:"observacion"`
	Tag         string `json:"tag"`
	Description string `json:"descripcion"`
	Quantity    int    `json:"cantidad"`
	Specialty   string `json:"especialidad"`
}

type AddItemRequest struct {
	Tag         string `json:"tag"`
	Description string `json:"descripcion"`
	Quantity    int    `json:"cantidad"`
	Specialty   string `json:"especialidad"`
}

type SearchQuery struct {
	GuideID  string `query:"id_guid"`
	Supplier string `query:"proveedor"`
	DateFrom string `query:"date_from"`
	DateTo   string `query:"date_to"`
}
