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
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/miho-ichinose/trsgen/internal/pipeline"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:     "generate <design.xlsx>",
	Short:   "Generate the trusted-table SQL model and schema YAML",
	Long:    `Reads the design workbook, validates the parsed schema and writes <table>.sql and <table>.yml to the output directory. When validation reports any error the full findings report is printed and no file is written.`,
	Example: `  trsgen generate designs/customer_master.xlsx --sheet "table design" --table-name trs_customer_master --source-schema raw --out-dir models/trusted`,
	Args:    cobra.ExactArgs(1),
	RunE:    runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p := pipeline.New(appConfig, afero.NewOsFs(), logger)

	result, err := p.Run(pipeline.Request{
		SpecPath:  args[0],
		Sheet:     sheetName,
		TableName: tableName,
	})
	if err != nil {
		return err
	}

	if len(result.Findings) > 0 {
		fmt.Print(pipeline.FormatFindingsAsText(result.Findings))
	}
	if !result.Success {
		errs, _ := result.Findings.Count()
		return fmt.Errorf("generation aborted: %d error finding(s)", errs)
	}

	fmt.Printf("Wrote %s\n", result.SQLPath)
	fmt.Printf("Wrote %s\n", result.YAMLPath)
	return nil
}
