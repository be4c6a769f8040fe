package quizfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"quiz-validator/internal/domain"

	"go.uber.org/zap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileLoader implements domain.DatasetLoader on top of the local filesystem.
type FileLoader struct {
	logger *zap.Logger
}

// NewFileLoader creates a new FileLoader. A nil logger disables logging.
func NewFileLoader(logger *zap.Logger) domain.DatasetLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileLoader{logger: logger}
}

// Load opens path, checks that it is UTF-8 JSON and builds the dataset.
func (l *FileLoader) Load(ctx context.Context, path string) (*domain.QuizDataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewInternalError("validation cancelled", err)
	}

	data, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("Quiz data file does not exist", zap.String("path", path))
			return nil, domain.NewFileNotFoundError(path, err)
		}
		return nil, domain.NewInternalError("failed to read quiz data file", err)
	}
	l.logger.Debug("Read quiz data file", zap.String("path", path), zap.Int("bytes", len(data)))

	if bytes.HasPrefix(data, utf8BOM) {
		return nil, domain.NewInvalidJSONError("Unexpected UTF-8 BOM (decode using utf-8-sig): line 1 column 1 (char 0)")
	}
	if !utf8.Valid(data) {
		return nil, domain.NewInternalError("quiz data file is not valid UTF-8", fmt.Errorf("invalid byte at offset %d", invalidUTF8Offset(data)))
	}

	var root json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, domain.NewInvalidJSONError(describeSyntaxError(data, err))
	}

	return buildDataset(root)
}

// readFile keeps the handle scoped to this call; it is closed on every path.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func buildDataset(root json.RawMessage) (*domain.QuizDataset, error) {
	if kind := jsonKind(root); kind != "object" {
		return nil, domain.NewShapeError("quiz data root must be an object, got %s", kind)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(root, &top); err != nil {
		return nil, domain.NewInternalError("failed to decode quiz data root", err)
	}

	dataset := &domain.QuizDataset{Quizzes: []domain.QuizRecord{}}
	rawQuizzes, ok := top["quizzes"]
	if !ok {
		return dataset, nil
	}
	if kind := jsonKind(rawQuizzes); kind != "array" {
		return nil, domain.NewShapeError("\"quizzes\" must be an array, got %s", kind)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rawQuizzes, &items); err != nil {
		return nil, domain.NewInternalError("failed to decode quizzes", err)
	}

	for i, item := range items {
		if kind := jsonKind(item); kind != "object" {
			// Reported when the record is reached, after the records before it.
			dataset.Quizzes = append(dataset.Quizzes, domain.QuizRecord{Index: i, NonObject: kind})
			continue
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, domain.NewInternalError(fmt.Sprintf("failed to decode quiz at index %d", i), err)
		}
		dataset.Quizzes = append(dataset.Quizzes, domain.QuizRecord{Index: i, Fields: fields})
	}
	return dataset, nil
}

// jsonKind names the type of a syntactically valid JSON value.
func jsonKind(raw json.RawMessage) string {
	text := bytes.TrimSpace(raw)
	if len(text) == 0 {
		return "nothing"
	}
	switch text[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}

// describeSyntaxError appends the failure position as line, column and
// character offset. Line and column are 1-based, char is 0-based, all counted
// in characters.
func describeSyntaxError(data []byte, err error) string {
	var se *json.SyntaxError
	if !errors.As(err, &se) {
		return err.Error()
	}

	pos := int(se.Offset)
	// Offset points past the offending byte unless the input simply ended.
	if !strings.HasPrefix(se.Error(), "unexpected end") && pos > 0 {
		pos--
	}
	if pos > len(data) {
		pos = len(data)
	}

	line, col, char := position(data, pos)
	return fmt.Sprintf("%s: line %d column %d (char %d)", se.Error(), line, col, char)
}

func position(data []byte, pos int) (line, col, char int) {
	prefix := data[:pos]
	line = bytes.Count(prefix, []byte{'\n'}) + 1
	lineStart := bytes.LastIndexByte(prefix, '\n') + 1
	col = utf8.RuneCount(prefix[lineStart:]) + 1
	char = utf8.RuneCount(prefix)
	return line, col, char
}

func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(data)
}
