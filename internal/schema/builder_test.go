package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miho-ichinose/trsgen/internal/specdoc"
)

func TestBuildPreservesRowOrder(t *testing.T) {
	doc := &specdoc.Document{
		Sheet: "design",
		Rows: []specdoc.Row{
			{Number: 2, Name: "user_id", Source: "src.id", DataType: "integer", Nullable: "no", PrimaryKey: "yes"},
			{Number: 3, Name: "bad-name!", DataType: "integer"},
			{Number: 4, Name: "email", Source: "src.email_addr", DataType: "string", Description: "user email"},
		},
	}

	s, findings := Build(doc, "trs_users")
	require.Len(t, s.Columns, 3)
	assert.Equal(t, []string{"user_id", "bad-name!", "email"}, s.ColumnNames(),
		"invalid rows are kept in place so the validator can report them")
	assert.Empty(t, findings)

	assert.Equal(t, "trs_users", s.TableName)
	assert.False(t, s.Columns[0].Nullable)
	assert.True(t, s.Columns[0].IsPrimaryKey)
	assert.True(t, s.Columns[2].Nullable)
	assert.Equal(t, "user email", s.Columns[2].Description)
	assert.Equal(t, 4, s.Columns[2].Row)
}

func TestBuildDuplicateNames(t *testing.T) {
	doc := &specdoc.Document{
		Sheet: "design",
		Rows: []specdoc.Row{
			{Number: 2, Name: "amount", DataType: "decimal(10,2)"},
			{Number: 3, Name: "Amount", DataType: "string"},
		},
	}

	s, findings := Build(doc, "trs_orders")
	require.Len(t, s.Columns, 2, "duplicate rows are retained")
	require.Len(t, findings, 1, "case-insensitive collision yields exactly one finding")
	assert.Equal(t, SeverityError, findings[0].Severity)
	assert.Equal(t, "Amount", findings[0].Column)
	assert.Contains(t, findings[0].Message, "rows 2 and 3")
}

func TestBuildTypeFallback(t *testing.T) {
	doc := &specdoc.Document{
		Sheet: "design",
		Rows: []specdoc.Row{
			{Number: 2, Name: "payload", DataType: "foo"},
		},
	}

	s, findings := Build(doc, "trs_events")
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarning, findings[0].Severity, "unparseable type is a warning, not an error")
	assert.Contains(t, findings[0].Message, `"foo"`)
	assert.Equal(t, TypeString, s.Columns[0].Type)
}

func TestBuildMissingName(t *testing.T) {
	doc := &specdoc.Document{
		Sheet: "design",
		Rows: []specdoc.Row{
			{Number: 5, DataType: "integer"},
		},
	}

	s, findings := Build(doc, "trs_events")
	require.Len(t, s.Columns, 1, "nameless rows pass through for reporting")
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityError, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "row 5")
}

func TestBuildBoolParsing(t *testing.T) {
	tests := []struct {
		name         string
		nullable     string
		wantNullable bool
		wantFindings int
	}{
		{"empty defaults true", "", true, 0},
		{"yes", "yes", true, 0},
		{"no", "no", false, 0},
		{"upper NO", "NO", false, 0},
		{"numeric zero", "0", false, 0},
		{"circle mark", "○", true, 0},
		{"cross mark", "×", false, 0},
		{"garbage warns and defaults", "maybe", true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &specdoc.Document{
				Sheet: "design",
				Rows:  []specdoc.Row{{Number: 2, Name: "c", DataType: "string", Nullable: tt.nullable}},
			}
			s, findings := Build(doc, "t")
			assert.Equal(t, tt.wantNullable, s.Columns[0].Nullable)
			assert.Len(t, findings, tt.wantFindings)
		})
	}
}

func TestBuildTableNamePrecedence(t *testing.T) {
	doc := &specdoc.Document{
		Sheet:     "Customer Master",
		TableName: "trs_customer",
		Rows:      []specdoc.Row{{Number: 2, Name: "c", DataType: "string"}},
	}

	s, _ := Build(doc, "trs_override")
	assert.Equal(t, "trs_override", s.TableName, "explicit name wins")

	s, _ = Build(doc, "")
	assert.Equal(t, "trs_customer", s.TableName, "sheet metadata next")

	doc.TableName = ""
	s, _ = Build(doc, "")
	assert.Equal(t, "customer_master", s.TableName, "sanitized sheet name last")
}
