// utils/valid.go
package utils

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to Echo's Validator
// interface.
type RequestValidator struct {
	validator *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validator: validator.New()}
}

// Validate validates the request body
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validator.Struct(i)
}

// IsAbsoluteURL reports whether raw parses as an absolute http(s) URL
// with a host.
func IsAbsoluteURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// SanitizeInput trims surrounding whitespace and strips control
// characters from user input.
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, input)
}
