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
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/miho-ichinose/trsgen/internal/config"
)

var (
	cfgFile string
	verbose bool

	// Per-run selectors
	sheetName string
	tableName string

	// Generator settings, overridable via config file / env
	dialect          string
	sourceSchema     string
	sourceTable      string
	modelDescription string
	outputDir        string
)

var (
	appConfig *config.Config
	logger    *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "trsgen",
	Short: "Generate trusted-table dbt artifacts from an Excel design workbook",
	Long: `trsgen compiles a table design workbook (column names, types, source
mappings, constraints) into two consistent artifacts for a dbt project:
the trusted-table model SQL and the matching schema YAML.`,
	SilenceUsage: true,
}

// initFlagsAndConfig merges flags, environment and the optional config
// file into the generator configuration. Explicit flags win over the
// environment, which wins over the config file.
func initFlagsAndConfig(cmd *cobra.Command, args []string) error {
	v := viper.New()
	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("trsgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("TRSGEN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	for key, flag := range map[string]string{
		"dialect":           "dialect",
		"source_schema":     "source-schema",
		"source_table":      "source-table",
		"model_description": "description",
		"output_dir":        "out-dir",
	} {
		if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			return err
		}
	}

	appConfig = config.Load(v)

	zapCfg := zap.NewProductionConfig()
	if verbose {
		zapCfg = zap.NewDevelopmentConfig()
	}
	l, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	logger = l.Sugar()
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentPreRunE = initFlagsAndConfig

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (defaults to ./trsgen.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (development) logging")

	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Worksheet to read (defaults to the first sheet)")
	rootCmd.PersistentFlags().StringVar(&tableName, "table-name", "", "Target table name (defaults to sheet metadata, then the sheet name)")

	rootCmd.PersistentFlags().StringVar(&dialect, "dialect", "snowflake", "SQL dialect template for the generated model")
	rootCmd.PersistentFlags().StringVar(&sourceSchema, "source-schema", "staging", "dbt source schema the model selects from")
	rootCmd.PersistentFlags().StringVar(&sourceTable, "source-table", "", "dbt source table the model selects from (defaults to the target table name)")
	rootCmd.PersistentFlags().StringVar(&modelDescription, "description", "", "Model description carried into the schema YAML")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "out-dir", "o", ".", "Directory the two artifact files are written to")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
}
