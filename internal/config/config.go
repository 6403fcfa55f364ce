/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package config

import "github.com/spf13/viper"

// Config holds the generator settings that parameterize rendering: the
// SQL dialect, the staging-source coordinates the generated model selects
// from, and where artifacts are written. None of these come from the
// design sheet itself.
type Config struct {
	// Dialect selects the registered SQL dialect template.
	Dialect string
	// SourceSchema and SourceTable name the dbt staging source the
	// generated model reads from. An empty SourceTable defaults to the
	// target table name at generation time.
	SourceSchema string
	SourceTable  string
	// ModelDescription is carried verbatim into the YAML header.
	ModelDescription string
	// OutputDir is where the two artifact files are written.
	OutputDir string
}

// SetDefaults registers the default value for every config key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dialect", "snowflake")
	v.SetDefault("source_schema", "staging")
	v.SetDefault("source_table", "")
	v.SetDefault("model_description", "")
	v.SetDefault("output_dir", ".")
}

// Load reads the configuration out of v. Callers are expected to have
// wired v to its config file, environment and flags already.
func Load(v *viper.Viper) *Config {
	return &Config{
		Dialect:          v.GetString("dialect"),
		SourceSchema:     v.GetString("source_schema"),
		SourceTable:      v.GetString("source_table"),
		ModelDescription: v.GetString("model_description"),
		OutputDir:        v.GetString("output_dir"),
	}
}
