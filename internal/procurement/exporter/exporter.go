// Package exporter builds the downloadable spreadsheet artifact for one
// exported page of procurement notices.
package exporter

import (
	"bytes"
	"fmt"

	"secop_portal_backend/internal/procurement/transport"
	"secop_portal_backend/platform/apperr"

	"github.com/xuri/excelize/v2"
)

// ContentType is the standard xlsx MIME type.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var headers = []interface{}{
	"Código", "Estado", "Entidad", "Departamento", "Descripción", "Valor", "Fecha Publicación",
}

// Filename returns the download name for the given page.
func Filename(page int) string {
	return fmt.Sprintf("secop_p%d.xlsx", page)
}

// Build serializes the notices into a one-sheet workbook. Exporting zero
// rows is a user-facing condition, not a server fault, and never produces
// an empty workbook. Serialization faults surface as an internal
// export-generation error carrying the cause.
func Build(page int, notices []transport.Notice) (*bytes.Buffer, error) {
	if len(notices) == 0 {
		return nil, apperr.NotFound("nothing to export").WithOp("exporter.Build")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Página %d", page)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, generationFailed(err)
	}

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, generationFailed(err)
	}
	// The header row is styled regardless of content so it always reads
	// distinct from data rows.
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, generationFailed(err)
	}
	if err := f.SetCellStyle(sheet, "A1", "G1", headerStyle); err != nil {
		return nil, generationFailed(err)
	}

	for i, notice := range notices {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, generationFailed(err)
		}
		row := []interface{}{
			notice.Code,
			notice.Status,
			notice.Entity,
			notice.Department,
			notice.Description,
			notice.Value,
			notice.PublicationDate,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, generationFailed(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, generationFailed(err)
	}
	return buf, nil
}

func generationFailed(err error) error {
	return apperr.Wrap(apperr.KindInternal, "export generation failed", err).WithOp("exporter.Build")
}
