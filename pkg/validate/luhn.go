package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a digit string with a valid Luhn check
// digit. Student card numbers are issued with one.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
