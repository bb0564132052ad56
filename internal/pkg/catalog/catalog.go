package catalog

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/ecovance/disclose/internal/domain"
)

// Catalog - неизменяемый справочник модулей опросника. Загружается один раз
// при старте и инжектится в сервисы; обновление каталога - рестарт процесса.
type Catalog struct {
	types map[string]domain.QuestionType
	rows  map[string][]domain.RowDescriptor
}

type moduleFile struct {
	Modules []struct {
		Name      string `json:"name"`
		Questions []struct {
			ID    string                 `json:"id"`
			Title string                 `json:"title"`
			Type  domain.QuestionType    `json:"type"`
			Rows  []domain.RowDescriptor `json:"rows,omitempty"`
		} `json:"questions"`
	} `json:"modules"`
}

func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file moduleFile
	if err := sonic.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("unmarshal catalog file: %w", err)
	}

	c := &Catalog{
		types: make(map[string]domain.QuestionType),
		rows:  make(map[string][]domain.RowDescriptor),
	}
	for _, module := range file.Modules {
		for _, q := range module.Questions {
			if q.Type != domain.QuestionTypeSubjective && q.Type != domain.QuestionTypeTable {
				return nil, fmt.Errorf("question %s: unknown type %q", q.ID, q.Type)
			}
			if _, exists := c.types[q.ID]; exists {
				return nil, fmt.Errorf("question %s: duplicate id in catalog", q.ID)
			}

			c.types[q.ID] = q.Type
			if q.Type == domain.QuestionTypeTable {
				c.rows[q.ID] = q.Rows
			}
		}
	}

	return c, nil
}

// QuestionType возвращает объявленный тип вопроса,
// QuestionTypeUnknown если вопроса нет в каталоге.
func (c *Catalog) QuestionType(questionID string) domain.QuestionType {
	return c.types[questionID]
}

// RowMetadata возвращает упорядоченные дескрипторы строк табличного вопроса.
func (c *Catalog) RowMetadata(questionID string) []domain.RowDescriptor {
	return c.rows[questionID]
}
