package importer

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadXLSX(t *testing.T) {
	buf := buildWorkbook(t,
		[]interface{}{"GD", "Fecha", "TAG", "Cantidad"},
		[]interface{}{"100", "2024-01-10", "A1", 5},
		[]interface{}{"101", "2024-01-11", "A2"}, // short row
	)

	sheet, err := ReadXLSX("guias.xlsx", buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"GD", "Fecha", "TAG", "Cantidad"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "100", sheet.Rows[0]["GD"])
	assert.Equal(t, "5", sheet.Rows[0]["Cantidad"])
	assert.Equal(t, "", sheet.Rows[1]["Cantidad"], "short rows read as blank cells")
}

func TestReadXLSXWrongExtension(t *testing.T) {
	_, err := ReadXLSX("guias.csv", strings.NewReader("GD,Fecha\n100,2024-01-10\n"))

	var format *UnsupportedFormatError
	require.ErrorAs(t, err, &format)
	assert.Equal(t, "guias.csv", format.Filename)
}

func TestReadXLSXGarbageBytes(t *testing.T) {
	_, err := ReadXLSX("guias.xlsx", bytes.NewReader([]byte("not a zip archive")))

	var format *UnsupportedFormatError
	require.ErrorAs(t, err, &format)
}

func TestReadXLSXCorruptWorksheet(t *testing.T) {
	buf := buildWorkbook(t, []interface{}{"GD"})

	// Rebuild the archive with the worksheet XML truncated. The zip itself
	// stays valid, so the failure surfaces while reading rows.
	src, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	var out bytes.Buffer
	w := zip.NewWriter(&out)
	for _, entry := range src.File {
		dst, err := w.Create(entry.Name)
		require.NoError(t, err)
		if entry.Name == "xl/worksheets/sheet1.xml" {
			_, err = dst.Write([]byte("<worksheet"))
			require.NoError(t, err)
			continue
		}
		r, err := entry.Open()
		require.NoError(t, err)
		_, err = io.Copy(dst, r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
	}
	require.NoError(t, w.Close())

	_, err = ReadXLSX("guias.xlsx", &out)
	require.Error(t, err)

	var format *UnsupportedFormatError
	assert.False(t, errors.As(err, &format), "a broken worksheet is not a client format mistake")
	assert.Contains(t, err.Error(), "read worksheet")
}
