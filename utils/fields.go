package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// FieldError names the submitted field that could not be used.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Fields is a flattened request body: form values or top-level JSON members.
type Fields map[string]string

func (f Fields) String(key string) string {
	return strings.TrimSpace(f[key])
}

func (f Fields) RequiredString(key string) (string, error) {
	v := f.String(key)
	if v == "" {
		return "", &FieldError{Field: key, Reason: "is required"}
	}
	return v, nil
}

// Date parses a required YYYY-MM-DD value as UTC midnight.
func (f Fields) Date(key string) (time.Time, error) {
	raw := f.String(key)
	if raw == "" {
		return time.Time{}, &FieldError{Field: key, Reason: "is required"}
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, &FieldError{Field: key, Reason: "must be a date in YYYY-MM-DD format"}
	}
	return d, nil
}

func (f Fields) OptionalDate(key string) (*time.Time, error) {
	if f.String(key) == "" {
		return nil, nil
	}
	d, err := f.Date(key)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Float returns nil for a missing or empty value and an error for a malformed one.
func (f Fields) Float(key string) (*float64, error) {
	raw := f.String(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &FieldError{Field: key, Reason: "must be a number"}
	}
	return &v, nil
}

func (f Fields) Int(key string) (*int, error) {
	raw := f.String(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &FieldError{Field: key, Reason: "must be a whole number"}
	}
	return &v, nil
}

// LenientFloat drops malformed values instead of failing.
func (f Fields) LenientFloat(key string) *float64 {
	v, err := f.Float(key)
	if err != nil {
		return nil
	}
	return v
}
