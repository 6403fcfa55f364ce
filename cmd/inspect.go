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

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <design.xlsx>",
	Short: "Print the parsed schema for review",
	Long:  `Reads the design workbook and prints the parsed columns (name, normalized type, nullability, primary key, source mapping) together with any parse findings, without validating or writing anything. Useful for checking header detection before generating.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	p := pipeline.New(appConfig, afero.NewOsFs(), logger)

	s, findings, err := p.Load(pipeline.Request{
		SpecPath:  args[0],
		Sheet:     sheetName,
		TableName: tableName,
	})
	if err != nil {
		return err
	}

	fmt.Print(pipeline.FormatSchemaAsText(s))
	if len(findings) > 0 {
		fmt.Print(pipeline.FormatFindingsAsText(findings))
	}
	return nil
}
