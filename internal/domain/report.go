package domain

import (
	"time"

	"github.com/bytedance/sonic"
)

type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusSubmitted ReportStatus = "submitted"
)

// FinancialYear хранится строкой вида "2023-2024".
type FinancialYear = string

type AnswersMap = map[string]QuestionAnswer

type EnvironmentReport struct {
	ID            string        `db:"id"`
	CompanyID     string        `db:"company_id"`
	PlantID       string        `db:"plant_id"`
	FinancialYear FinancialYear `db:"financial_year"`
	Answers       AnswersMap    `db:"answers"`
	Status        ReportStatus  `db:"status"`
	Version       int64         `db:"version"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

// Answer возвращает сохранённый ответ на вопрос, если он есть.
func (r *EnvironmentReport) Answer(questionID string) (QuestionAnswer, bool) {
	if r == nil || r.Answers == nil {
		return QuestionAnswer{}, false
	}
	qa, ok := r.Answers[questionID]
	return qa, ok
}

type QuestionAnswer struct {
	QuestionID    string       `json:"question_id"`
	QuestionTitle string       `json:"question_title"`
	UpdatedData   RawAnswer    `json:"updated_data"`
	LastUpdated   time.Time    `json:"last_updated"`
	AuditStatus   *AuditStatus `json:"audit_status,omitempty"`

	// Origin отличает записанный движком агрегации результат от ручного
	// ввода. Для derived ответов Baseline хранит вручную введённые строки,
	// поглощённые при пересчёте: они переносятся из прогона в прогон,
	// собственный результат прошлого пересчёта повторно не суммируется.
	Origin   AnswerOrigin `json:"origin,omitempty"`
	Baseline []TableRow   `json:"baseline,omitempty"`
}

type AnswerOrigin string

const (
	AnswerOriginManual  AnswerOrigin = ""
	AnswerOriginDerived AnswerOrigin = "derived"
)

type AuditStatus string

const (
	AuditStatusPending  AuditStatus = "pending"
	AuditStatusApproved AuditStatus = "approved"
	AuditStatusRejected AuditStatus = "rejected"
)

// RawAnswer - сырое содержимое updated_data: либо subjective объект,
// либо массив строк таблицы.
type RawAnswer []byte

func (r RawAnswer) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

func (r *RawAnswer) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

type SubjectiveAnswer struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type TableRow struct {
	CurrentYear  string `json:"current_year"`
	PreviousYear string `json:"previous_year"`
}

func NewSubjectiveRaw(text string) RawAnswer {
	raw, _ := sonic.Marshal(SubjectiveAnswer{Type: "subjective", Text: text})
	return raw
}

func NewTableRaw(rows []TableRow) RawAnswer {
	raw, _ := sonic.Marshal(rows)
	return raw
}

// DecodeSubjective пытается разобрать updated_data как subjective ответ.
func (r RawAnswer) DecodeSubjective() (*SubjectiveAnswer, bool) {
	var sub SubjectiveAnswer
	if err := sonic.Unmarshal(r, &sub); err != nil {
		return nil, false
	}
	if sub.Type != "subjective" {
		return nil, false
	}
	return &sub, true
}

// DecodeRows пытается разобрать updated_data как массив строк таблицы.
func (r RawAnswer) DecodeRows() ([]TableRow, bool) {
	var rows []TableRow
	if err := sonic.Unmarshal(r, &rows); err != nil {
		return nil, false
	}
	return rows, true
}
