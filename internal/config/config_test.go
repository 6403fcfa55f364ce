package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg := Load(v)
	assert.Equal(t, "snowflake", cfg.Dialect)
	assert.Equal(t, "staging", cfg.SourceSchema)
	assert.Empty(t, cfg.SourceTable)
	assert.Empty(t, cfg.ModelDescription)
	assert.Equal(t, ".", cfg.OutputDir)
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("dialect", "snowflake")
	v.Set("source_schema", "raw")
	v.Set("source_table", "customer_master_ext")
	v.Set("output_dir", "models/trusted")

	cfg := Load(v)
	assert.Equal(t, "raw", cfg.SourceSchema)
	assert.Equal(t, "customer_master_ext", cfg.SourceTable)
	assert.Equal(t, "models/trusted", cfg.OutputDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TRSGEN_SOURCE_SCHEMA", "landing")

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("TRSGEN")
	v.AutomaticEnv()

	cfg := Load(v)
	assert.Equal(t, "landing", cfg.SourceSchema)
}
