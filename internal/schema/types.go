package schema

import "fmt"

// DataType is the closed set of column types a TableSchema may carry.
// Free-text type strings from the design sheet are normalized into this
// set by the builder and never survive past it.
type DataType int

const (
	TypeString DataType = iota
	TypeInteger
	TypeDecimal
	TypeBoolean
	TypeDate
	TypeTimestamp
)

func (t DataType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeDecimal:
		return "decimal"
	case TypeBoolean:
		return "boolean"
	case TypeDate:
		return "date"
	case TypeTimestamp:
		return "timestamp"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// ColumnSpec describes one target column of the trusted table.
type ColumnSpec struct {
	Name             string
	SourceExpression string
	Type             DataType
	// Precision and Scale apply to TypeDecimal only. Precision zero means
	// the design sheet did not provide one; the validator rejects that.
	Precision    int
	Scale        int
	Nullable     bool
	Description  string
	IsPrimaryKey bool
	// Row is the 1-based spreadsheet row the column was read from, kept
	// so findings can point back at the source document.
	Row int
}

// TypeLabel returns the normalized type as it appears in generated
// artifacts, e.g. "decimal(10,2)".
func (c ColumnSpec) TypeLabel() string {
	if c.Type == TypeDecimal && c.Precision > 0 {
		return fmt.Sprintf("decimal(%d,%d)", c.Precision, c.Scale)
	}
	return c.Type.String()
}

// TableSchema is the compilation unit both renderers consume. It is built
// once per run and treated as read-only afterwards; renderers receive it
// by pointer but must not mutate it.
type TableSchema struct {
	TableName   string
	Description string
	Columns     []ColumnSpec
}

// ColumnNames returns the column names in schema order. Both renderers
// derive their column sequence from this single accessor.
func (s *TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// PrimaryKeyColumns returns the names of primary-key columns in schema order.
func (s *TableSchema) PrimaryKeyColumns() []string {
	var names []string
	for _, c := range s.Columns {
		if c.IsPrimaryKey {
			names = append(names, c.Name)
		}
	}
	return names
}
