package specdoc

// Row is one raw column-definition row from the design sheet, cell values
// still untyped strings. A row with an empty Name is passed through, not
// discarded, so the schema builder can report a precise error tied to the
// row number.
type Row struct {
	// Number is the 1-based spreadsheet row the record was read from.
	Number int

	Name        string
	Source      string
	DataType    string
	Nullable    string
	Description string
	PrimaryKey  string
}

// IsBlank reports whether every recognized cell of the row is empty.
// Fully blank rows are skipped by the reader.
func (r Row) IsBlank() bool {
	return r.Name == "" && r.Source == "" && r.DataType == "" &&
		r.Nullable == "" && r.Description == "" && r.PrimaryKey == ""
}

// Document is the raw content of one design sheet: the ordered
// column-definition rows plus any table name found in metadata cells
// above the header row. TableName may be empty; the pipeline falls back
// to the sheet name.
type Document struct {
	Sheet     string
	TableName string
	Rows      []Row
}
