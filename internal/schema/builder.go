package schema

import (
	"strings"

	"github.com/miho-ichinose/trsgen/internal/specdoc"
)

// boolTokens maps design-sheet yes/no cell spellings to booleans. The
// circle/cross marks match the upstream Japanese template.
var boolTokens = map[string]bool{
	"yes": true, "y": true, "true": true, "1": true, "○": true,
	"no": false, "n": false, "false": false, "0": false, "×": false, "-": false,
}

// Build converts raw design-sheet rows into a TableSchema plus the
// per-row parse findings. Parsing never aborts on a bad row: invalid
// rows are kept with best-effort defaults so a single run reports every
// problem at once, and the validator decides whether the run as a whole
// may proceed. Row order is preserved unconditionally into column order.
func Build(doc *specdoc.Document, tableName string) (*TableSchema, Findings) {
	if tableName == "" {
		tableName = doc.TableName
	}
	if tableName == "" {
		tableName = SanitizeIdentifier(doc.Sheet)
	}

	s := &TableSchema{
		TableName: tableName,
		Columns:   make([]ColumnSpec, 0, len(doc.Rows)),
	}
	var findings Findings

	// First row seen for each lowercased name, for duplicate reporting.
	seen := make(map[string]int)

	for _, row := range doc.Rows {
		col := ColumnSpec{
			Name:             row.Name,
			SourceExpression: row.Source,
			Description:      row.Description,
			Nullable:         true,
			Row:              row.Number,
		}

		if row.Name == "" {
			findings = append(findings, Errorf("", "row %d: missing column name", row.Number))
		} else {
			key := strings.ToLower(row.Name)
			if first, dup := seen[key]; dup {
				findings = append(findings, Errorf(row.Name, "duplicate column name %q (rows %d and %d)", row.Name, first, row.Number))
			} else {
				seen[key] = row.Number
			}
		}

		nt := NormalizeType(row.DataType)
		col.Type = nt.Type
		col.Precision = nt.Precision
		col.Scale = nt.Scale
		if !nt.Recognized && strings.TrimSpace(row.DataType) != "" {
			findings = append(findings, Warnf(row.Name, "row %d: unrecognized data type %q, defaulting to string", row.Number, row.DataType))
		}

		var f Findings
		col.Nullable, f = parseBool(row.Nullable, true, "nullable", row)
		findings = append(findings, f...)
		col.IsPrimaryKey, f = parseBool(row.PrimaryKey, false, "primary key", row)
		findings = append(findings, f...)

		s.Columns = append(s.Columns, col)
	}

	return s, findings
}

func parseBool(raw string, def bool, label string, row specdoc.Row) (bool, Findings) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return def, nil
	}
	if v, ok := boolTokens[s]; ok {
		return v, nil
	}
	return def, Findings{Warnf(row.Name, "row %d: unrecognized %s value %q, defaulting to %v", row.Number, label, raw, def)}
}
