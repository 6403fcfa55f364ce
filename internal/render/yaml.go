package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/miho-ichinose/trsgen/internal/schema"
)

// Shapes of the dbt schema YAML. Description fields are omitempty so an
// absent design-sheet description stays absent in the output instead of
// becoming an empty string.
type yamlDoc struct {
	Version int         `yaml:"version"`
	Models  []yamlModel `yaml:"models"`
}

type yamlModel struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Columns     []yamlColumn     `yaml:"columns"`
	Constraints []yamlConstraint `yaml:"constraints,omitempty"`
}

type yamlColumn struct {
	Name        string `yaml:"name"`
	DataType    string `yaml:"data_type"`
	Nullable    bool   `yaml:"nullable"`
	Description string `yaml:"description,omitempty"`
}

type yamlConstraint struct {
	Type    string   `yaml:"type"`
	Columns []string `yaml:"columns,flow"`
}

// RenderYAML renders the dbt schema document for the trusted table: one
// entry per column in schema order, primary-key columns gathered into a
// constraint block. Like RenderSQL it is a pure function of the schema
// and assumes validation already passed.
func RenderYAML(s *schema.TableSchema) (string, error) {
	model := yamlModel{
		Name:        s.TableName,
		Description: s.Description,
		Columns:     make([]yamlColumn, 0, len(s.Columns)),
	}

	for _, col := range s.Columns {
		if col.Type == schema.TypeDecimal && col.Precision <= 0 {
			return "", fmt.Errorf("internal: decimal column %q reached the renderer without precision/scale", col.Name)
		}
		model.Columns = append(model.Columns, yamlColumn{
			Name:        col.Name,
			DataType:    col.TypeLabel(),
			Nullable:    col.Nullable,
			Description: col.Description,
		})
	}

	if pk := s.PrimaryKeyColumns(); len(pk) > 0 {
		model.Constraints = []yamlConstraint{{Type: "primary_key", Columns: pk}}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlDoc{Version: 2, Models: []yamlModel{model}}); err != nil {
		return "", fmt.Errorf("encoding schema yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding schema yaml: %w", err)
	}
	return buf.String(), nil
}
