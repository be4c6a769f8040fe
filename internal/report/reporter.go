// Package report renders validation outcomes as the plain-text report
// printed on standard output.
package report

import (
	"fmt"
	"io"

	"quiz-validator/internal/domain"
)

const (
	validJSONLine    = "JSON is valid!"
	fileNotFoundLine = "Error: quiz-data.json file not found"
)

// Write renders outcome to w. Lines printed before a failure are kept: the
// "JSON is valid!" line once the file parsed, and the count and record lines
// for the records checked before a bad one.
func Write(w io.Writer, outcome domain.Outcome) error {
	p := &printer{w: w}

	switch outcome.Kind {
	case domain.OutcomeFileNotFound:
		p.line(fileNotFoundLine)
		return p.err
	case domain.OutcomeParseError:
		p.line("Error: Invalid JSON - %s", outcome.Detail)
		return p.err
	case domain.OutcomeOtherError:
		if outcome.Parsed {
			p.line(validJSONLine)
		}
		if outcome.Report != nil {
			p.records(outcome.Report)
		}
		p.line("Error: %s", outcome.Detail)
		return p.err
	}

	r := outcome.Report
	if r == nil {
		r = &domain.Report{Field: domain.DefaultRequiredField, AllPresent: true}
	}

	p.line(validJSONLine)
	p.records(r)
	p.line("")
	p.line("All quizzes have %s: %s", r.Field, pyBool(r.AllPresent))
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) records(r *domain.Report) {
	p.line("")
	p.line("Found %d quizzes:", r.Count())
	for _, rec := range r.Records {
		p.line("%s: %s (%s: %s)", rec.ID, rec.Status(), r.Field, rec.Value)
	}
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
