package validation

import (
	"quiz-validator/internal/domain"
)

// Validator checks every quiz record for a required field.
type Validator struct {
	field string
}

// NewValidator creates a validator for field; an empty field means progressKey.
func NewValidator(field string) *Validator {
	if field == "" {
		field = domain.DefaultRequiredField
	}
	return &Validator{field: field}
}

// Field returns the key being checked.
func (v *Validator) Field() string {
	return v.field
}

// CheckRecord reports presence of the required field on a single record.
// Presence is a key membership test; null, "" and false all count as present.
func (v *Validator) CheckRecord(record domain.QuizRecord) (domain.RecordStatus, error) {
	if err := record.Check(); err != nil {
		return domain.RecordStatus{}, err
	}
	id, err := record.ID()
	if err != nil {
		return domain.RecordStatus{}, err
	}
	value, err := record.Display(v.field, domain.MissingValue)
	if err != nil {
		return domain.RecordStatus{}, err
	}
	return domain.RecordStatus{
		ID:      id,
		Field:   v.field,
		Present: record.Has(v.field),
		Value:   value,
	}, nil
}

// Validate checks all records in file order. AllPresent is true for an empty
// dataset. On a bad record it returns the error together with the report of
// the records checked before it.
func (v *Validator) Validate(dataset *domain.QuizDataset) (*domain.Report, error) {
	report := &domain.Report{
		Field:      v.field,
		Total:      len(dataset.Quizzes),
		Records:    make([]domain.RecordStatus, 0, len(dataset.Quizzes)),
		AllPresent: true,
	}
	for _, record := range dataset.Quizzes {
		status, err := v.CheckRecord(record)
		if err != nil {
			return report, err
		}
		report.Records = append(report.Records, status)
		report.AllPresent = report.AllPresent && status.Present
	}
	return report, nil
}
