package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultRequiredField is the record key whose presence is checked.
	DefaultRequiredField = "progressKey"
	// UnknownID is shown for records without an "id" key.
	UnknownID = "Unknown"
	// MissingValue is shown in place of an absent required field.
	MissingValue = "MISSING"
)

// ShapeError reports JSON that parsed fine but does not have the dataset shape.
type ShapeError struct {
	message string
}

func (e *ShapeError) Error() string {
	return e.message
}

func NewShapeError(format string, args ...any) error {
	return &ShapeError{message: fmt.Sprintf(format, args...)}
}

// QuizRecord is one entry of the "quizzes" array. Fields are kept raw since
// only a couple of keys are ever inspected.
type QuizRecord struct {
	Index  int
	Fields map[string]json.RawMessage
	// NonObject holds the JSON type of the entry when it is not an object.
	NonObject string
}

// Check fails when the entry cannot be inspected as a record.
func (r QuizRecord) Check() error {
	if r.NonObject != "" {
		return NewShapeError("quiz at index %d must be an object, got %s", r.Index, r.NonObject)
	}
	return nil
}

// Has reports whether key is present, regardless of its value.
func (r QuizRecord) Has(key string) bool {
	_, ok := r.Fields[key]
	return ok
}

// Display returns the printable form of the value under key, or def when the
// key is absent.
func (r QuizRecord) Display(key, def string) (string, error) {
	raw, ok := r.Fields[key]
	if !ok {
		return def, nil
	}
	s, err := DisplayValue(raw)
	if err != nil {
		return "", NewShapeError("quiz at index %d: %q %v", r.Index, key, err)
	}
	return s, nil
}

// ID returns the record id, or UnknownID when absent.
func (r QuizRecord) ID() (string, error) {
	return r.Display("id", UnknownID)
}

// QuizDataset is the root document. Quizzes keeps file order.
type QuizDataset struct {
	Quizzes []QuizRecord
}

// DisplayValue renders a scalar JSON value: strings verbatim, null as None,
// booleans as True/False and numbers via DisplayNumber.
func DisplayValue(raw json.RawMessage) (string, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "", fmt.Errorf("has an empty value")
	}
	switch text[0] {
	case '"':
		var s string
		if err := json.Unmarshal([]byte(text), &s); err != nil {
			return "", err
		}
		return s, nil
	case 'n':
		return "None", nil
	case 't':
		return "True", nil
	case 'f':
		return "False", nil
	case '{':
		return "", fmt.Errorf("must be a scalar, got object")
	case '[':
		return "", fmt.Errorf("must be a scalar, got array")
	default:
		return DisplayNumber(text)
	}
}

// DisplayNumber formats a JSON number literal the way the quiz tooling has
// always printed it: integers as written, other numbers as the shortest
// round-tripping float with a ".0" suffix for whole values and exponent form
// below 1e-4 or from 1e16 on (100.0, 1.5, 1e-05, 1e+16).
func DisplayNumber(literal string) (string, error) {
	if !strings.ContainsAny(literal, ".eE") {
		if literal == "-0" {
			return "0", nil
		}
		return literal, nil
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return "", fmt.Errorf("has an invalid number %s", literal)
	}
	switch {
	case math.IsInf(f, 1):
		return "inf", nil
	case math.IsInf(f, -1):
		return "-inf", nil
	}

	exp := 0
	if f != 0 {
		sci := strconv.FormatFloat(f, 'e', -1, 64)
		exp, _ = strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	}
	if exp < -4 || exp >= 16 {
		return strconv.FormatFloat(f, 'e', -1, 64), nil
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s, nil
}
