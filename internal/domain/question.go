package domain

type QuestionType string

const (
	QuestionTypeSubjective QuestionType = "subjective"
	QuestionTypeTable      QuestionType = "table"
	QuestionTypeUnknown    QuestionType = ""
)

// RowDescriptor описывает строку табличного вопроса из каталога модулей.
// Порядок дескрипторов совпадает с порядком строк в updated_data каждого
// завода - движок агрегации сопоставляет их позиционно.
type RowDescriptor struct {
	Parameter string `json:"parameter"`
	IsHeader  bool   `json:"is_header"`
}
