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
package specdoc

import "fmt"

// SourceFormatError indicates the workbook or sheet is structurally
// unreadable: wrong sheet, wrong template version, no header row. It is
// fatal and aborts the run before schema building.
type SourceFormatError struct {
	Sheet string
	Msg   string
	Err   error
}

func (e *SourceFormatError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("source format error in sheet %q: %s", e.Sheet, e.Msg)
	}
	return fmt.Sprintf("source format error: %s", e.Msg)
}

func (e *SourceFormatError) Unwrap() error {
	return e.Err
}
