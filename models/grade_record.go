package models

// GradeRecord is one row of the grade table
type GradeRecord struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Nota   string `json:"nota"`
}

// GradeTable maps a student codigo to its record
type GradeTable map[string]GradeRecord

// Lookup returns the record for codigo and whether it exists
func (t GradeTable) Lookup(codigo string) (GradeRecord, bool) {
	record, ok := t[codigo]
	return record, ok
}

// Grade table column names
const (
	ColumnCodigo = "codigo"
	ColumnNombre = "nombre"
	ColumnNota   = "nota"
)
