package render

import (
	"fmt"
	"sync"

	"github.com/miho-ichinose/trsgen/internal/schema"
)

// Dialect supplies the SQL-flavor-specific pieces of the rendered model:
// type names, cast syntax and the staging-source reference. The
// structural wrapper boilerplate also belongs to the dialect so that
// nothing dialect-shaped is hard-coded in the renderer.
type Dialect interface {
	Name() string
	// SQLType returns the dialect type name for a column. It fails on a
	// decimal without precision; that reaching a renderer means the
	// validator's checks were incomplete.
	SQLType(col schema.ColumnSpec) (string, error)
	// CastExpression wraps a source expression with whatever cast the
	// column's declared type requires, or returns it unchanged.
	CastExpression(expr string, col schema.ColumnSpec) (string, error)
	// SourceReference renders the staging-source clause of the wrapper.
	SourceReference(sourceSchema, sourceTable string) string
	// PositionalReference renders the fallback source expression for a
	// column with no explicit mapping, pos is 1-based.
	PositionalReference(pos int) string
}

var (
	dialects = make(map[string]Dialect)
	mu       sync.RWMutex
)

// RegisterDialect makes a dialect selectable by name. Dialects register
// themselves in init().
func RegisterDialect(d Dialect) {
	mu.Lock()
	defer mu.Unlock()
	dialects[d.Name()] = d
}

// GetDialect returns the dialect registered under name.
func GetDialect(name string) (Dialect, error) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("unsupported SQL dialect: %s", name)
	}
	return d, nil
}
