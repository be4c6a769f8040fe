package domain

import "fmt"

const StatusOK = "OK"

// RecordStatus is the result of checking a single record.
type RecordStatus struct {
	ID      string
	Field   string
	Present bool
	Value   string
}

// Status returns the label printed for the record, e.g. "MISSING progressKey".
func (s RecordStatus) Status() string {
	if s.Present {
		return StatusOK
	}
	return fmt.Sprintf("MISSING %s", s.Field)
}

// Report is the result of a validation run. After a record-level failure it
// holds only the records checked before the failing one.
type Report struct {
	Field      string
	Total      int
	Records    []RecordStatus
	AllPresent bool
}

// Count is the number of quizzes found in the file.
func (r *Report) Count() int {
	if r.Total > len(r.Records) {
		return r.Total
	}
	return len(r.Records)
}

// OutcomeKind tags how a validation run ended.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFileNotFound
	OutcomeParseError
	OutcomeOtherError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFileNotFound:
		return "file_not_found"
	case OutcomeParseError:
		return "parse_error"
	case OutcomeOtherError:
		return "other_error"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of one run. Parsed is set once the file was
// read as syntactically valid JSON. Report is set on success and, partially
// filled, when a record failed the check.
type Outcome struct {
	Kind   OutcomeKind
	Detail string
	Parsed bool
	Report *Report
}
