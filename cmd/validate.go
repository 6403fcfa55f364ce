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

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <design.xlsx>",
	Short: "Validate the design workbook without writing artifacts",
	Long:  `Runs the reader, schema builder and validator and prints the complete findings report. Exits non-zero when any error-severity finding exists. Nothing is written.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	p := pipeline.New(appConfig, afero.NewOsFs(), logger)

	result, err := p.Check(pipeline.Request{
		SpecPath:  args[0],
		Sheet:     sheetName,
		TableName: tableName,
	})
	if err != nil {
		return err
	}

	fmt.Print(pipeline.FormatFindingsAsText(result.Findings))
	if !result.Success {
		errs, _ := result.Findings.Count()
		return fmt.Errorf("validation failed: %d error finding(s)", errs)
	}
	fmt.Printf("Table %s is valid.\n", result.TableName)
	return nil
}
