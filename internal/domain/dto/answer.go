package dto

import "github.com/ecovance/disclose/internal/domain"

type SubjectiveAnswerRequest struct {
	QuestionID    string `json:"question_id" validate:"required"`
	QuestionTitle string `json:"question_title"`
	Text          string `json:"text"`
}

type TableAnswerRequest struct {
	QuestionID    string            `json:"question_id" validate:"required"`
	QuestionTitle string            `json:"question_title"`
	Rows          []domain.TableRow `json:"rows" validate:"required,min=1"`
}

// TableAnswerPatchRequest - частичное обновление таблицы: пустые ячейки
// не затирают сохранённые значения.
type TableAnswerPatchRequest struct {
	QuestionID    string            `json:"question_id" validate:"required"`
	QuestionTitle string            `json:"question_title"`
	Rows          []domain.TableRow `json:"rows" validate:"required,min=1"`
}
