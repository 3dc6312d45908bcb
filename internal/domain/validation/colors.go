// Package validation holds value checks shared by configuration and
// presentation code.
package validation

import (
	"fmt"
	"regexp"
)

var hexColorRE = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether value is #RGB or #RRGGBB.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ColorField names one configured color.
type ColorField struct {
	Key   string
	Value string
}

// ValidateHexColors returns one message per non-empty field that is not a
// hex color. Empty values mean "use the default" and pass.
func ValidateHexColors(fields ...ColorField) []string {
	var errs []string
	for _, f := range fields {
		if f.Value != "" && !IsHexColor(f.Value) {
			errs = append(errs, fmt.Sprintf("%s must be a hex color like #aabbcc (got %q)", f.Key, f.Value))
		}
	}
	return errs
}
