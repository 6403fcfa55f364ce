package schema

// Validate runs every structural check against the built schema and
// returns the combined, deduplicated findings: the builder's per-row
// parse findings followed by the structural ones. Checks are independent
// and all run, never short-circuited, so one invocation reports every
// problem. The caller proceeds to rendering iff HasErrors() is false.
func Validate(s *TableSchema, buildFindings Findings) Findings {
	findings := make(Findings, 0, len(buildFindings)+4)
	findings = append(findings, buildFindings...)

	switch {
	case s.TableName == "":
		findings = append(findings, Errorf("", "empty table name"))
	case !IsValidIdentifier(s.TableName):
		findings = append(findings, Errorf("", "table name %q is not a valid identifier", s.TableName))
	}

	if len(s.Columns) == 0 {
		findings = append(findings, Errorf("", "empty column list"))
	}

	for _, col := range s.Columns {
		// Empty names were already reported row-by-row during the build.
		if col.Name != "" && !IsValidIdentifier(col.Name) {
			findings = append(findings, Errorf(col.Name, "column name %q is not a valid identifier", col.Name))
		}
		if col.Type == TypeDecimal && col.Precision <= 0 {
			findings = append(findings, Errorf(col.Name, "row %d: decimal type missing precision/scale", col.Row))
		}
	}

	return findings.Dedupe()
}
