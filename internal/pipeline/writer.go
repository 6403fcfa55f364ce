package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// writeArtifacts writes both artifact files to dir, all-or-nothing: each
// file is written to a temp name first and renamed into place, and any
// failure removes whatever was already placed. A half-written SQL/YAML
// pair would desynchronize the downstream dbt project.
func writeArtifacts(fs afero.Fs, dir, tableName, sqlText, yamlText string) (string, string, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	sqlPath := filepath.Join(dir, tableName+".sql")
	yamlPath := filepath.Join(dir, tableName+".yml")
	sqlTmp := sqlPath + ".tmp"
	yamlTmp := yamlPath + ".tmp"

	if err := afero.WriteFile(fs, sqlTmp, []byte(sqlText), 0o644); err != nil {
		fs.Remove(sqlTmp)
		return "", "", fmt.Errorf("writing %s: %w", sqlTmp, err)
	}
	if err := afero.WriteFile(fs, yamlTmp, []byte(yamlText), 0o644); err != nil {
		fs.Remove(sqlTmp)
		fs.Remove(yamlTmp)
		return "", "", fmt.Errorf("writing %s: %w", yamlTmp, err)
	}

	if err := fs.Rename(sqlTmp, sqlPath); err != nil {
		fs.Remove(sqlTmp)
		fs.Remove(yamlTmp)
		return "", "", fmt.Errorf("placing %s: %w", sqlPath, err)
	}
	if err := fs.Rename(yamlTmp, yamlPath); err != nil {
		fs.Remove(sqlPath)
		fs.Remove(yamlTmp)
		return "", "", fmt.Errorf("placing %s: %w", yamlPath, err)
	}

	return sqlPath, yamlPath, nil
}
