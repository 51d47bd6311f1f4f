// Package validation holds the input patterns shared by the service layer.
package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,8}$`

	// Neptun identifier pattern - 6 alphanumeric characters
	NeptunCodePattern = `^[A-Z0-9]{6}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 1
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	NeptunCode *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	NeptunCode: regexp.MustCompile(NeptunCodePattern),
}
