package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miho-ichinose/trsgen/internal/schema"
)

func userSchema() *schema.TableSchema {
	return &schema.TableSchema{
		TableName: "trs_users",
		Columns: []schema.ColumnSpec{
			{Name: "user_id", SourceExpression: "src.id", Type: schema.TypeInteger, IsPrimaryKey: true, Row: 2},
			{Name: "email", SourceExpression: "src.email_addr", Type: schema.TypeString, Nullable: true, Description: "user email", Row: 3},
		},
	}
}

func snowflake(t *testing.T) Dialect {
	t.Helper()
	d, err := GetDialect("snowflake")
	require.NoError(t, err)
	return d
}

func TestRenderSQL(t *testing.T) {
	got, err := RenderSQL(userSchema(), snowflake(t), SQLParams{SourceSchema: "staging", SourceTable: "users"})
	require.NoError(t, err)

	want := `with
    -- minimal ingestion-safety casts from the staging source
    source_data as (
        select
            nullif(src.id, '')::number as user_id,
            src.email_addr as email
        from {{ source("staging", "users") }}
    )

select
    user_id,
    email
from source_data
`
	assert.Equal(t, want, got)
}

func TestRenderSQLIdempotent(t *testing.T) {
	s := userSchema()
	d := snowflake(t)
	params := SQLParams{SourceSchema: "staging", SourceTable: "users"}

	first, err := RenderSQL(s, d, params)
	require.NoError(t, err)
	second, err := RenderSQL(s, d, params)
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical schema must render byte-identical SQL")
}

func TestRenderSQLPositionalFallback(t *testing.T) {
	s := &schema.TableSchema{
		TableName: "trs_import",
		Columns: []schema.ColumnSpec{
			{Name: "a", Type: schema.TypeString, Nullable: true},
			{Name: "b", Type: schema.TypeInteger, Nullable: true},
		},
	}

	got, err := RenderSQL(s, snowflake(t), SQLParams{SourceSchema: "raw", SourceTable: "import"})
	require.NoError(t, err)
	assert.Contains(t, got, "value:c1 as a")
	assert.Contains(t, got, "nullif(value:c2, '')::number as b")
}

func TestRenderSQLCasts(t *testing.T) {
	tests := []struct {
		name string
		col  schema.ColumnSpec
		want string
	}{
		{"string is not cast", schema.ColumnSpec{Name: "c", SourceExpression: "src.c", Type: schema.TypeString}, "src.c as c"},
		{"integer gets nullif guard", schema.ColumnSpec{Name: "c", SourceExpression: "src.c", Type: schema.TypeInteger}, "nullif(src.c, '')::number as c"},
		{"decimal keeps precision", schema.ColumnSpec{Name: "c", SourceExpression: "src.c", Type: schema.TypeDecimal, Precision: 10, Scale: 2}, "nullif(src.c, '')::number(10,2) as c"},
		{"date gets nullif guard", schema.ColumnSpec{Name: "c", SourceExpression: "src.c", Type: schema.TypeDate}, "nullif(src.c, '')::date as c"},
		{"timestamp gets nullif guard", schema.ColumnSpec{Name: "c", SourceExpression: "src.c", Type: schema.TypeTimestamp}, "nullif(src.c, '')::timestamp as c"},
		{"boolean gets plain cast", schema.ColumnSpec{Name: "c", SourceExpression: "src.c", Type: schema.TypeBoolean}, "src.c::boolean as c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &schema.TableSchema{TableName: "t", Columns: []schema.ColumnSpec{tt.col}}
			got, err := RenderSQL(s, snowflake(t), SQLParams{SourceSchema: "raw", SourceTable: "t"})
			require.NoError(t, err)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestRenderSQLIncompleteDecimalFailsLoudly(t *testing.T) {
	// The validator guarantees decimals carry precision; one reaching
	// the renderer without it is an internal-consistency defect.
	s := &schema.TableSchema{
		TableName: "t",
		Columns:   []schema.ColumnSpec{{Name: "amount", Type: schema.TypeDecimal}},
	}
	_, err := RenderSQL(s, snowflake(t), SQLParams{SourceSchema: "raw", SourceTable: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal")
}

func TestGetDialectUnknown(t *testing.T) {
	_, err := GetDialect("oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported SQL dialect")
}
