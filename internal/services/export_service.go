package services

import (
	"bytes"
	"fmt"
	"io"

	"github.com/3k2024/bodega-simple/internal/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportService renders the whole store as a spreadsheet or a PDF, one
// line per item with its guide columns repeated.
type ExportService struct {
	db *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{db: db}
}

var exportHeaders = []string{"Guía", "Fecha", "Proveedor", "TAG", "Descripción", "Cantidad", "Especialidad"}

func (s *ExportService) guides() ([]models.Guide, error) {
	var guides []models.Guide
	err := s.db.Preload("Items").Order("date, id").Find(&guides).Error
	return guides, err
}

// Excel writes a .xlsx workbook to w.
func (s *ExportService) Excel(w io.Writer) error {
	guides, err := s.guides()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Bodega"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	rowNo := 2
	for _, g := range guides {
		for _, it := range g.Items {
			values := []interface{}{
				g.ID,
				g.Date.Format("2006-01-02"),
				deref(g.Supplier),
				it.Tag,
				it.Description,
				it.Quantity,
				specialtyLabel(it.Specialty),
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowNo)
				f.SetCellValue(sheet, cell, v)
			}
			rowNo++
		}
	}

	return f.Write(w)
}

// PDF writes the full listing to w. Each guide header carries a QR of its
// id so the printed sheet can be scanned at the gate.
func (s *ExportService) PDF(w io.Writer) error {
	guides, err := s.guides()
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr("Bodega — Guías de despacho"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for i, g := range guides {
		qrPng, err := qrcode.Encode(g.ID, qrcode.Low, 128)
		if err != nil {
			return fmt.Errorf("qr for guide %q: %w", g.ID, err)
		}
		imgName := fmt.Sprintf("qr_%d", i)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(qrPng))

		if pdf.GetY() > 260 {
			pdf.AddPage()
		}

		y := pdf.GetY()
		pdf.ImageOptions(imgName, 190, y, 12, 12, false, opts, 0, "")

		pdf.SetFont("Arial", "B", 11)
		header := fmt.Sprintf("Guía %s — %s — %s", g.ID, g.Date.Format("2006-01-02"), deref(g.Supplier))
		pdf.CellFormat(180, 7, tr(header), "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 9)
		for _, it := range g.Items {
			line := fmt.Sprintf("%s | %s | Cant: %d", it.Tag, it.Description, it.Quantity)
			if it.Specialty != nil {
				line += fmt.Sprintf(" | Esp: %s", *it.Specialty)
			}
			pdf.CellFormat(180, 5, tr(line), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func specialtyLabel(sp *models.Specialty) string {
	if sp == nil {
		return ""
	}
	return string(*sp)
}
