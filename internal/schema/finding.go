package schema

import "fmt"

// Severity classifies a finding. Errors block artifact generation,
// warnings are surfaced but never block.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARN"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Finding is one validation result. Column is empty for table-level
// findings. Findings are created fresh per run and never mutated.
type Finding struct {
	Severity Severity
	Column   string
	Message  string
}

func Errorf(column, format string, args ...interface{}) Finding {
	return Finding{Severity: SeverityError, Column: column, Message: fmt.Sprintf(format, args...)}
}

func Warnf(column, format string, args ...interface{}) Finding {
	return Finding{Severity: SeverityWarning, Column: column, Message: fmt.Sprintf(format, args...)}
}

// Findings is an ordered list of findings.
type Findings []Finding

// HasErrors reports whether any finding is error severity. This is the
// pipeline's go/no-go decision for rendering.
func (f Findings) HasErrors() bool {
	for _, finding := range f {
		if finding.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of errors and warnings.
func (f Findings) Count() (errors, warnings int) {
	for _, finding := range f {
		if finding.Severity == SeverityError {
			errors++
		} else {
			warnings++
		}
	}
	return errors, warnings
}

// Dedupe returns the findings with exact duplicates removed, preserving
// first-occurrence order.
func (f Findings) Dedupe() Findings {
	seen := make(map[Finding]bool, len(f))
	out := make(Findings, 0, len(f))
	for _, finding := range f {
		if seen[finding] {
			continue
		}
		seen[finding] = true
		out = append(out, finding)
	}
	return out
}
