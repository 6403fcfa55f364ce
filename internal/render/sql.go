package render

import (
	"fmt"
	"strings"

	"github.com/miho-ichinose/trsgen/internal/schema"
)

// SQLParams carries the staging-source coordinates the wrapper selects
// from. They come from configuration, not from the design sheet.
type SQLParams struct {
	SourceSchema string
	SourceTable  string
}

// Wrapper boilerplate. Fixed text, never computed from the schema.
const (
	sqlHeader = "with\n" +
		"    -- minimal ingestion-safety casts from the staging source\n" +
		"    source_data as (\n" +
		"        select\n"
	sqlMid    = "\n        from %s\n    )\n\nselect\n"
	sqlFooter = "\nfrom source_data\n"
)

// RenderSQL renders the dbt model SQL for the trusted table: one output
// column per ColumnSpec in schema order, wrapped in the dialect's
// staging-source boilerplate. A pure function of the schema; the same
// schema always yields byte-identical output.
//
// RenderSQL assumes the schema already passed validation. Anything it
// cannot render (an incomplete decimal, an unknown type) is an internal
// consistency defect and returns an error rather than degrading.
func RenderSQL(s *schema.TableSchema, d Dialect, params SQLParams) (string, error) {
	var b strings.Builder
	b.WriteString(sqlHeader)

	exprs := make([]string, 0, len(s.Columns))
	for i, col := range s.Columns {
		expr := col.SourceExpression
		if expr == "" {
			expr = d.PositionalReference(i + 1)
		}
		cast, err := d.CastExpression(expr, col)
		if err != nil {
			return "", err
		}
		exprs = append(exprs, fmt.Sprintf("            %s as %s", cast, col.Name))
	}
	b.WriteString(strings.Join(exprs, ",\n"))

	fmt.Fprintf(&b, sqlMid, d.SourceReference(params.SourceSchema, params.SourceTable))

	names := make([]string, 0, len(s.Columns))
	for _, name := range s.ColumnNames() {
		names = append(names, "    "+name)
	}
	b.WriteString(strings.Join(names, ",\n"))
	b.WriteString(sqlFooter)

	return b.String(), nil
}
