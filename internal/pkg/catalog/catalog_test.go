package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ecovance/disclose/internal/domain"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "modules.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalogFile(t, `{
		"modules": [{
			"name": "Energy",
			"questions": [
				{"id": "q1", "title": "Energy consumption", "type": "table", "rows": [
					{"parameter": "Renewables", "is_header": true},
					{"parameter": "Electricity (A)"},
					{"parameter": "Total Energy (A)"}
				]},
				{"id": "q2", "title": "Initiatives", "type": "subjective"}
			]
		}]
	}`)

	cat, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, domain.QuestionTypeTable, cat.QuestionType("q1"))
	require.Equal(t, domain.QuestionTypeSubjective, cat.QuestionType("q2"))
	require.Equal(t, domain.QuestionTypeUnknown, cat.QuestionType("missing"))

	rows := cat.RowMetadata("q1")
	require.Len(t, rows, 3)
	require.True(t, rows[0].IsHeader)
	require.Equal(t, "Electricity (A)", rows[1].Parameter)

	require.Nil(t, cat.RowMetadata("q2"))
	require.Nil(t, cat.RowMetadata("missing"))
}

func TestLoadRejectsUnknownType(t *testing.T) {
	path := writeCatalogFile(t, `{
		"modules": [{"name": "Broken", "questions": [{"id": "q1", "type": "matrix"}]}]
	}`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	path := writeCatalogFile(t, `{
		"modules": [{"name": "Dup", "questions": [
			{"id": "q1", "type": "subjective"},
			{"id": "q1", "type": "subjective"}
		]}]
	}`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
