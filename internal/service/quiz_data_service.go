package service

import (
	"context"
	"errors"
	"io"

	"quiz-validator/internal/domain"
	"quiz-validator/internal/report"
	"quiz-validator/internal/util"
	"quiz-validator/internal/validation"

	"go.uber.org/zap"
)

// quizDataService implements domain.QuizDataService
type quizDataService struct {
	loader    domain.DatasetLoader
	validator *validation.Validator
	path      string
	logger    *zap.Logger
}

// NewQuizDataService creates a service that validates the file at path.
func NewQuizDataService(
	loader domain.DatasetLoader,
	validator *validation.Validator,
	path string,
	logger *zap.Logger,
) domain.QuizDataService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &quizDataService{
		loader:    loader,
		validator: validator,
		path:      path,
		logger:    logger,
	}
}

func (s *quizDataService) Validate(ctx context.Context) domain.Outcome {
	log := s.logger.With(zap.String("run_id", util.NewRunID()), zap.String("path", s.path))
	log.Info("Validating quiz data", zap.String("field", s.validator.Field()))

	dataset, err := s.loader.Load(ctx, s.path)
	if err != nil {
		outcome := classify(err)
		log.Warn("Quiz data could not be loaded",
			zap.String("outcome", outcome.Kind.String()),
			zap.String("code", string(domain.CodeOf(err))),
			zap.Error(err))
		return outcome
	}
	log.Debug("Parsed quiz data", zap.Int("quizzes", len(dataset.Quizzes)))

	rep, err := s.validator.Validate(dataset)
	if err != nil {
		log.Warn("Quiz record has an unexpected shape",
			zap.Int("checked", len(rep.Records)),
			zap.Int("quizzes", rep.Count()),
			zap.Error(err))
		return domain.Outcome{Kind: domain.OutcomeOtherError, Detail: err.Error(), Parsed: true, Report: rep}
	}

	missing := 0
	for _, rec := range rep.Records {
		if !rec.Present {
			missing++
		}
	}
	log.Info("Validation completed",
		zap.Int("quizzes", rep.Count()),
		zap.Int("missing", missing),
		zap.Bool("all_present", rep.AllPresent))

	return domain.Outcome{Kind: domain.OutcomeSuccess, Parsed: true, Report: rep}
}

func (s *quizDataService) Run(ctx context.Context, w io.Writer) domain.Outcome {
	outcome := s.Validate(ctx)
	if err := report.Write(w, outcome); err != nil {
		s.logger.Error("Failed to write report", zap.Error(err))
	}
	return outcome
}

// classify maps a loader error onto the outcome taxonomy.
func classify(err error) domain.Outcome {
	var shapeErr *domain.ShapeError
	if errors.As(err, &shapeErr) {
		return domain.Outcome{Kind: domain.OutcomeOtherError, Detail: shapeErr.Error(), Parsed: true}
	}

	var de *domain.DomainError
	if errors.As(err, &de) {
		switch de.Code {
		case domain.ErrFileNotFound:
			return domain.Outcome{Kind: domain.OutcomeFileNotFound, Detail: de.Error()}
		case domain.ErrInvalidJSON:
			return domain.Outcome{Kind: domain.OutcomeParseError, Detail: de.Message}
		}
	}
	return domain.Outcome{Kind: domain.OutcomeOtherError, Detail: err.Error()}
}
