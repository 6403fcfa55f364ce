package specdoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// field identifies one recognized design-sheet header.
type field int

const (
	fieldName field = iota
	fieldSource
	fieldType
	fieldNullable
	fieldDescription
	fieldPrimaryKey
)

// headerAliases maps normalized header spellings to fields. Recognition
// is case-insensitive and whitespace-tolerant; unrecognized headers are
// ignored, not errors. The Japanese spellings match the upstream design
// sheet template.
var headerAliases = map[string]field{
	"column name":   fieldName,
	"column_name":   fieldName,
	"column":        fieldName,
	"name":          fieldName,
	"field":         fieldName,
	"physical name": fieldName,
	"physical_name": fieldName,
	"物理名":           fieldName,
	"カラム名":          fieldName,

	"source expression": fieldSource,
	"source_expression": fieldSource,
	"source mapping":    fieldSource,
	"source_mapping":    fieldSource,
	"source":            fieldSource,
	"mapping":           fieldSource,
	"expression":        fieldSource,

	"data type": fieldType,
	"data_type": fieldType,
	"datatype":  fieldType,
	"type":      fieldType,
	"データ型":      fieldType,
	"型":         fieldType,

	"nullable":   fieldNullable,
	"null":       fieldNullable,
	"allow null": fieldNullable,
	"allow_null": fieldNullable,

	"description": fieldDescription,
	"comment":     fieldDescription,
	"remarks":     fieldDescription,
	"note":        fieldDescription,
	"説明":          fieldDescription,
	"備考":          fieldDescription,
	"コメント":        fieldDescription,

	"primary key":    fieldPrimaryKey,
	"primary_key":    fieldPrimaryKey,
	"pk":             fieldPrimaryKey,
	"is primary key": fieldPrimaryKey,
	"is_primary_key": fieldPrimaryKey,
	"主キー":            fieldPrimaryKey,
}

// tableNameKeys are the metadata labels searched for above the header row.
var tableNameKeys = map[string]bool{
	"table name": true,
	"table_name": true,
	"table":      true,
	"テーブル名":      true,
}

// maxHeaderScan bounds how far down the sheet the header row is searched
// for; design sheets carry at most a few title/metadata rows on top.
const maxHeaderScan = 20

// ReadFile reads the design sheet from the workbook at path. An empty
// sheet name selects the first sheet.
func ReadFile(path, sheet string) (*Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &SourceFormatError{Msg: fmt.Sprintf("cannot open workbook %s", path), Err: err}
	}
	defer f.Close()
	return read(f, sheet)
}

// Read reads the design sheet from workbook bytes, for callers holding an
// uploaded file rather than a path.
func Read(r io.Reader, sheet string) (*Document, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &SourceFormatError{Msg: "cannot open workbook", Err: err}
	}
	defer f.Close()
	return read(f, sheet)
}

func read(f *excelize.File, sheet string) (*Document, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &SourceFormatError{Msg: "workbook has no sheets"}
	}
	if sheet == "" {
		sheet = sheets[0]
	} else if !containsSheet(sheets, sheet) {
		return nil, &SourceFormatError{Sheet: sheet, Msg: fmt.Sprintf("sheet not found (workbook has %s)", strings.Join(sheets, ", "))}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &SourceFormatError{Sheet: sheet, Msg: "cannot read rows", Err: err}
	}

	headerIdx, columns := locateHeader(rows)
	if headerIdx < 0 {
		return nil, &SourceFormatError{Sheet: sheet, Msg: "header row not found: expected a row with at least a column name and a data type header"}
	}

	doc := &Document{
		Sheet:     sheet,
		TableName: findTableName(rows[:headerIdx]),
	}

	for i := headerIdx + 1; i < len(rows); i++ {
		row := parseRow(rows[i], columns, i+1)
		if row.IsBlank() {
			continue
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc, nil
}

// locateHeader scans the first maxHeaderScan rows for a row that carries
// at least the column-name and data-type headers. It returns the row
// index and the mapping from cell position to field.
func locateHeader(rows [][]string) (int, map[int]field) {
	limit := len(rows)
	if limit > maxHeaderScan {
		limit = maxHeaderScan
	}
	for i := 0; i < limit; i++ {
		columns := make(map[int]field)
		seen := make(map[field]bool)
		for pos, cell := range rows[i] {
			if f, ok := headerAliases[normalizeHeader(cell)]; ok && !seen[f] {
				columns[pos] = f
				seen[f] = true
			}
		}
		if seen[fieldName] && seen[fieldType] {
			return i, columns
		}
	}
	return -1, nil
}

// findTableName searches the metadata rows above the header for a
// "table name" label followed by a value in the next non-empty cell.
func findTableName(rows [][]string) string {
	for _, row := range rows {
		for pos, cell := range row {
			if !tableNameKeys[normalizeHeader(cell)] {
				continue
			}
			for _, next := range row[pos+1:] {
				if v := strings.TrimSpace(next); v != "" {
					return v
				}
			}
		}
	}
	return ""
}

func parseRow(cells []string, columns map[int]field, number int) Row {
	row := Row{Number: number}
	for pos, f := range columns {
		if pos >= len(cells) {
			continue
		}
		v := strings.TrimSpace(cells[pos])
		switch f {
		case fieldName:
			row.Name = v
		case fieldSource:
			row.Source = v
		case fieldType:
			row.DataType = v
		case fieldNullable:
			row.Nullable = v
		case fieldDescription:
			row.Description = v
		case fieldPrimaryKey:
			row.PrimaryKey = v
		}
	}
	return row
}

func normalizeHeader(cell string) string {
	s := strings.ToLower(strings.TrimSpace(cell))
	return strings.TrimRight(s, ":：")
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
