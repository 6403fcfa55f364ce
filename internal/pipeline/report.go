package pipeline

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/miho-ichinose/trsgen/internal/schema"
)

// FormatFindingsAsText renders the findings report shown to the user
// after a run. One run yields one complete report.
func FormatFindingsAsText(findings schema.Findings) string {
	if len(findings) == 0 {
		return "No findings.\n"
	}
	errs, warns := findings.Count()
	var buffer bytes.Buffer
	fmt.Fprintf(&buffer, "--- Findings: %d error(s), %d warning(s) ---\n", errs, warns)
	for _, f := range findings {
		if f.Column == "" {
			fmt.Fprintf(&buffer, "  %-5s %s\n", f.Severity, f.Message)
		} else {
			fmt.Fprintf(&buffer, "  %-5s [%s] %s\n", f.Severity, f.Column, f.Message)
		}
	}
	return buffer.String()
}

// FormatSchemaAsText renders the parsed schema as a review table for the
// inspect command.
func FormatSchemaAsText(s *schema.TableSchema) string {
	var buffer bytes.Buffer
	fmt.Fprintf(&buffer, "--- Table: %s (%d columns) ---\n", s.TableName, len(s.Columns))

	w := tabwriter.NewWriter(&buffer, 2, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ROW\tNAME\tTYPE\tNULLABLE\tPK\tSOURCE")
	for _, col := range s.Columns {
		nullable := "yes"
		if !col.Nullable {
			nullable = "no"
		}
		pk := ""
		if col.IsPrimaryKey {
			pk = "pk"
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\t%s\n",
			col.Row, col.Name, col.TypeLabel(), nullable, pk, col.SourceExpression)
	}
	w.Flush()

	if pk := s.PrimaryKeyColumns(); len(pk) > 0 {
		fmt.Fprintf(&buffer, "primary key: %s\n", strings.Join(pk, ", "))
	}
	return buffer.String()
}
