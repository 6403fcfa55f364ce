package render

import (
	"fmt"

	"github.com/miho-ichinose/trsgen/internal/schema"
)

func init() {
	RegisterDialect(&snowflakeDialect{})
}

// snowflakeDialect targets dbt-on-Snowflake, the convention the upstream
// design sheets were written for: external-table columns arrive as text,
// so non-string types get a nullif empty-string guard before the cast
// to avoid ingestion errors on empty cells.
type snowflakeDialect struct{}

func (d *snowflakeDialect) Name() string { return "snowflake" }

func (d *snowflakeDialect) SQLType(col schema.ColumnSpec) (string, error) {
	switch col.Type {
	case schema.TypeString:
		return "varchar", nil
	case schema.TypeInteger:
		return "number", nil
	case schema.TypeDecimal:
		if col.Precision <= 0 {
			return "", fmt.Errorf("internal: decimal column %q reached the renderer without precision/scale", col.Name)
		}
		return fmt.Sprintf("number(%d,%d)", col.Precision, col.Scale), nil
	case schema.TypeBoolean:
		return "boolean", nil
	case schema.TypeDate:
		return "date", nil
	case schema.TypeTimestamp:
		return "timestamp", nil
	default:
		return "", fmt.Errorf("internal: unknown data type %v for column %q", col.Type, col.Name)
	}
}

func (d *snowflakeDialect) CastExpression(expr string, col schema.ColumnSpec) (string, error) {
	switch col.Type {
	case schema.TypeString:
		return expr, nil
	case schema.TypeBoolean:
		return expr + "::boolean", nil
	default:
		t, err := d.SQLType(col)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("nullif(%s, '')::%s", expr, t), nil
	}
}

func (d *snowflakeDialect) SourceReference(sourceSchema, sourceTable string) string {
	return fmt.Sprintf(`{{ source("%s", "%s") }}`, sourceSchema, sourceTable)
}

func (d *snowflakeDialect) PositionalReference(pos int) string {
	return fmt.Sprintf("value:c%d", pos)
}
