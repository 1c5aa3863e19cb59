// Package validation provides composable field validators that collect
// every failure instead of stopping at the first one. Handlers render the
// collected errors as a field-level error array.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// FieldError is one field-level validation failure. Path names the JSON
// field as the client sent it.
type FieldError struct {
	Path string `json:"path"`
	Msg  string `json:"msg"`
}

// Errors is the set of failures from validating one request. It implements
// error so services can return it through normal error plumbing.
type Errors []FieldError

// Error implements the error interface.
func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		if fe.Path == "" {
			parts[i] = fe.Msg
			continue
		}
		parts[i] = fe.Path + ": " + fe.Msg
	}
	return strings.Join(parts, "; ")
}

// Validator checks a single string value and returns a message on failure.
// Every validator except Required treats the empty string as absent and
// passes it through; pairing with Required makes a field mandatory.
type Validator func(value string) string

// Required fails on an empty value. name is the display name used in the
// message.
func Required(name string) Validator {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return name + " is required"
		}
		return ""
	}
}

// MaxLen fails when the value exceeds maxChars runes.
func MaxLen(name string, maxChars int) Validator {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if len([]rune(value)) > maxChars {
			return fmt.Sprintf("%s cannot exceed %d characters", name, maxChars)
		}
		return ""
	}
}

// MinLen fails when the value is shorter than minChars runes.
func MinLen(name string, minChars int) Validator {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if len([]rune(value)) < minChars {
			return fmt.Sprintf("%s must be at least %d characters", name, minChars)
		}
		return ""
	}
}

// emailRe is deliberately loose: one @ with something on both sides and a
// dot in the domain. Deliverability is the mail server's problem.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email fails when the value is not a plausible email address.
func Email(_ string) Validator {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if !emailRe.MatchString(value) {
			return "Invalid email format"
		}
		return ""
	}
}

// HTTPURL fails when the value is not an absolute http or https URL.
func HTTPURL(name string) Validator {
	return func(value string) string {
		if value == "" {
			return ""
		}
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return name + " must be a valid URL"
		}
		return ""
	}
}

// OneOf fails when the value is not a member of allowed. Matching is
// exact; no case folding.
func OneOf(name string, allowed []string) Validator {
	return func(value string) string {
		if value == "" {
			return ""
		}
		for _, a := range allowed {
			if value == a {
				return ""
			}
		}
		return "Invalid " + strings.ToLower(name)
	}
}

// IntRange fails when the value is not an integer within [low, high].
func IntRange(name string, low, high int) Validator {
	return func(value string) string {
		if value == "" {
			return ""
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < low || n > high {
			return fmt.Sprintf("%s must be between %d and %d", name, low, high)
		}
		return ""
	}
}

// Fields accumulates failures across a request's fields. Check records at
// most one failure per call, the first validator that rejects.
type Fields struct {
	errs Errors
}

// NewFields creates an empty accumulator.
func NewFields() *Fields {
	return &Fields{}
}

// Check runs validators against the value in order and records the first
// failure under path. It returns the accumulator for chaining.
func (f *Fields) Check(path, value string, validators ...Validator) *Fields {
	for _, v := range validators {
		if msg := v(value); msg != "" {
			f.errs = append(f.errs, FieldError{Path: path, Msg: msg})
			return f
		}
	}
	return f
}

// Add records a failure directly, for checks that don't fit the Validator
// shape.
func (f *Fields) Add(path, msg string) *Fields {
	f.errs = append(f.errs, FieldError{Path: path, Msg: msg})
	return f
}

// Errors returns the collected failures, or nil when everything passed.
// Failures keep the order the fields were checked in.
func (f *Fields) Errors() Errors {
	if len(f.errs) == 0 {
		return nil
	}
	return f.errs
}
