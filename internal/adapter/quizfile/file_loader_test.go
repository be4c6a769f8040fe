package quizfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"quiz-validator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quiz-data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_Load_FileNotFound(t *testing.T) {
	loader := NewFileLoader(nil)

	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Equal(t, domain.ErrFileNotFound, domain.CodeOf(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileLoader_Load_InvalidJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bare word in object",
			content: "{ invalid }",
			want:    "invalid character 'i' looking for beginning of object key string: line 1 column 3 (char 2)",
		},
		{
			name:    "error on second line",
			content: "{\n  \"a\": ,\n}",
			want:    "invalid character ',' looking for beginning of value: line 2 column 8 (char 9)",
		},
		{
			name:    "empty file",
			content: "",
			want:    "unexpected end of JSON input: line 1 column 1 (char 0)",
		},
		{
			name:    "truncated document",
			content: `{"quizzes": [`,
			want:    "unexpected end of JSON input: line 1 column 14 (char 13)",
		},
		{
			name:    "byte order mark",
			content: "\xEF\xBB\xBF{}",
			want:    "Unexpected UTF-8 BOM (decode using utf-8-sig): line 1 column 1 (char 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)

			_, err := NewFileLoader(nil).Load(context.Background(), path)
			require.Error(t, err)

			var de *domain.DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, domain.ErrInvalidJSON, de.Code)
			assert.Equal(t, tt.want, de.Message)
		})
	}
}

func TestFileLoader_Load_InvalidUTF8(t *testing.T) {
	path := writeFile(t, "{\"quizzes\": \"\xff\"}")

	_, err := NewFileLoader(nil).Load(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, domain.ErrInternal, domain.CodeOf(err))
	assert.Contains(t, err.Error(), "not valid UTF-8")
	assert.Contains(t, err.Error(), "offset 13")
}

func TestFileLoader_Load_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		count   int
	}{
		{name: "missing quizzes", content: `{}`, count: 0},
		{name: "empty quizzes", content: `{"quizzes": []}`, count: 0},
		{name: "extra top level keys", content: `{"version": 2, "quizzes": [{"id": "a"}]}`, count: 1},
		{name: "root array", content: `[]`, wantErr: "quiz data root must be an object, got array"},
		{name: "quizzes null", content: `{"quizzes": null}`, wantErr: `"quizzes" must be an array, got null`},
		{name: "quizzes object", content: `{"quizzes": {}}`, wantErr: `"quizzes" must be an array, got object`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)

			dataset, err := NewFileLoader(nil).Load(context.Background(), path)
			if tt.wantErr != "" {
				require.Error(t, err)
				var shapeErr *domain.ShapeError
				assert.True(t, errors.As(err, &shapeErr))
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Len(t, dataset.Quizzes, tt.count)
		})
	}
}

func TestFileLoader_Load_KeepsNonObjectRecords(t *testing.T) {
	path := writeFile(t, `{"quizzes": [{"id": "q1"}, "q", 5]}`)

	dataset, err := NewFileLoader(nil).Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, dataset.Quizzes, 3)

	assert.NoError(t, dataset.Quizzes[0].Check())
	assert.EqualError(t, dataset.Quizzes[1].Check(), "quiz at index 1 must be an object, got string")
	assert.EqualError(t, dataset.Quizzes[2].Check(), "quiz at index 2 must be an object, got number")
}

func TestFileLoader_Load_PreservesOrder(t *testing.T) {
	path := writeFile(t, `{"quizzes": [{"id": "c"}, {"id": "a"}, {"id": "b", "progressKey": "k"}]}`)

	dataset, err := NewFileLoader(nil).Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, dataset.Quizzes, 3)

	var ids []string
	for i, rec := range dataset.Quizzes {
		assert.Equal(t, i, rec.Index)
		id, err := rec.ID()
		require.NoError(t, err)
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
	assert.True(t, dataset.Quizzes[2].Has("progressKey"))
}

func TestFileLoader_Load_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileLoader(nil).Load(ctx, writeFile(t, `{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
