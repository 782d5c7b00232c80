package importer

// Summary is returned after a committed batch.
type Summary struct {
	RowsProcessed int `json:"rows_processed"`
	GuidesCreated int `json:"guides_created"`
}

// Session runs one ingestion batch over a Store. The Store is expected to
// be a single open transaction owned by the caller: on a nil error the
// caller commits, on any error it rolls back, so a batch lands all or not
// at all.
type Session struct {
	table  SynonymTable
	fill   Defaults
	policy Policy
}

func NewSession(table SynonymTable, fill Defaults, policy Policy) *Session {
	return &Session{table: table, fill: fill, policy: policy}
}

// IngestSheet is the bulk path: header resolution, then normalize and
// reconcile every row. Row numbers in errors are 1-based with the header
// occupying row 1.
func (s *Session) IngestSheet(store Store, sheet *Sheet) (*Summary, error) {
	mapping, err := MapColumns(sheet.Headers, s.table)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]string, 0, len(sheet.Rows))
	for _, raw := range sheet.Rows {
		row := make(map[string]string, len(mapping))
		for field, header := range mapping {
			row[field] = raw[header]
		}
		rows = append(rows, row)
	}

	return s.ingest(store, rows, 2)
}

// IngestRows is the manual bulk path: rows already keyed by canonical
// field, no column mapping. Row numbers in errors start at 1.
func (s *Session) IngestRows(store Store, rows []map[string]string) (*Summary, error) {
	return s.ingest(store, rows, 1)
}

func (s *Session) ingest(store Store, rows []map[string]string, firstRow int) (*Summary, error) {
	rec := NewReconciler(store, s.policy)
	summary := &Summary{}

	for i, raw := range rows {
		rowNum := firstRow + i
		record, err := NormalizeRow(raw, rowNum, s.fill)
		if err != nil {
			return nil, err
		}
		created, err := rec.Apply(record, rowNum)
		if err != nil {
			return nil, err
		}
		if created {
			summary.GuidesCreated++
		}
		summary.RowsProcessed++
	}

	return summary, nil
}
