package service

import (
	"strings"

	"secop_portal_backend/internal/procurement/transport"
)

// Dataset column names read by the projector.
const (
	colCategory    = "codigo_principal_de_categoria"
	colReference   = "referencia_del_proceso"
	colStatus      = "estado_del_procedimiento"
	colEntity      = "entidad"
	colDepartment  = "departamento_entidad"
	colDescription = "descripci_n_del_procedimiento"
	colBasePrice   = "precio_base"
	colEstimated   = "valor_estimado"
	colPublished   = "fecha_de_publicacion_del"
)

const missing = "N/A"

// Project maps one loosely-typed dataset record onto the fixed 7-field
// Notice shape. Every field tolerates absence: text fields default to N/A,
// the value defaults to zero (it stays numeric), and nested values render
// as their textual form.
func Project(record transport.Record) transport.Notice {
	return transport.Notice{
		Code:            projectCode(record),
		Status:          textOr(record.Field(colStatus), missing),
		Entity:          textOr(record.Field(colEntity), missing),
		Department:      textOr(record.Field(colDepartment), missing),
		Description:     textOr(record.Field(colDescription), missing),
		Value:           projectValue(record),
		PublicationDate: projectDate(record.Field(colPublished)),
	}
}

// projectCode joins the category code (dataset prefix stripped) with the
// process reference. Only when both are absent does the whole field
// collapse to N/A.
func projectCode(record transport.Record) string {
	category := record.Field(colCategory)
	reference := record.Field(colReference)

	if !category.Present() && !reference.Present() {
		return missing
	}

	code := strings.TrimPrefix(category.Text(), "V1.")
	return code + " / " + textOr(reference, missing)
}

// projectValue prefers the base price, falls back to the estimated value,
// and bottoms out at zero so the column is always numeric.
func projectValue(record transport.Record) float64 {
	if n, ok := record.Field(colBasePrice).Number(); ok {
		return n
	}
	if n, ok := record.Field(colEstimated).Number(); ok {
		return n
	}
	return 0
}

// projectDate keeps the calendar-date prefix of the ISO timestamp.
func projectDate(v transport.Value) string {
	if !v.Present() {
		return missing
	}
	text := v.Text()
	if len(text) > 10 {
		return text[:10]
	}
	return text
}

func textOr(v transport.Value, fallback string) string {
	if !v.Present() {
		return fallback
	}
	return v.Text()
}
