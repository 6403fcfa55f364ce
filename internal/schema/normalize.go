package schema

import (
	"regexp"
	"strconv"
	"strings"
)

// typeAliases maps lowercased design-sheet type names to the normalized
// type set. Japanese names appear because the upstream design sheets are
// authored in both languages.
var typeAliases = map[string]DataType{
	"string":    TypeString,
	"varchar":   TypeString,
	"char":      TypeString,
	"text":      TypeString,
	"文字列":       TypeString,
	"int":       TypeInteger,
	"integer":   TypeInteger,
	"bigint":    TypeInteger,
	"smallint":  TypeInteger,
	"数値":        TypeInteger,
	"decimal":   TypeDecimal,
	"numeric":   TypeDecimal,
	"number":    TypeDecimal,
	"bool":      TypeBoolean,
	"boolean":   TypeBoolean,
	"date":      TypeDate,
	"日付":        TypeDate,
	"timestamp": TypeTimestamp,
	"datetime":  TypeTimestamp,
	"日時":        TypeTimestamp,
}

var parenTypeRe = regexp.MustCompile(`^([^()]+?)\s*\(\s*(\d+)\s*(?:,\s*(\d+)\s*)?\)$`)

// NormalizedType is the result of parsing a free-text type string.
type NormalizedType struct {
	Type      DataType
	Precision int
	Scale     int
	// Recognized is false when the raw string matched nothing in the
	// alias table and the type fell back to string.
	Recognized bool
}

// NormalizeType parses a free-text type string from the design sheet into
// the closed type set. Unrecognized strings fall back to string rather
// than failing, so one bad row does not hide the rest of the report; the
// caller records a warning when Recognized is false.
//
// Sized character types ("varchar(50)") normalize to plain string, the
// size is dropped. Decimal types keep their precision/scale; a bare
// "decimal" yields precision zero, which the validator rejects.
func NormalizeType(raw string) NormalizedType {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return NormalizedType{Type: TypeString}
	}

	base := s
	precision, scale := 0, 0
	if m := parenTypeRe.FindStringSubmatch(s); m != nil {
		base = strings.TrimSpace(m[1])
		precision, _ = strconv.Atoi(m[2])
		if m[3] != "" {
			scale, _ = strconv.Atoi(m[3])
		}
	}

	t, ok := typeAliases[base]
	if !ok {
		return NormalizedType{Type: TypeString}
	}
	if t != TypeDecimal {
		// Size arguments are only meaningful for decimals.
		precision, scale = 0, 0
	}
	return NormalizedType{Type: t, Precision: precision, Scale: scale, Recognized: true}
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsValidIdentifier reports whether name is usable as a SQL/YAML
// identifier: letters, digits and underscores, not starting with a digit.
func IsValidIdentifier(name string) bool {
	return identifierRe.MatchString(name)
}

var sanitizeRe = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// SanitizeIdentifier lowercases name and replaces every run of
// non-identifier characters with a single underscore. Used when deriving
// a table name from a sheet name.
func SanitizeIdentifier(name string) string {
	s := sanitizeRe.ReplaceAllString(strings.TrimSpace(name), "_")
	s = strings.Trim(s, "_")
	return strings.ToLower(s)
}
