package aggregation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ecovance/disclose/internal/domain"
	"github.com/ecovance/disclose/internal/pkg/constants"
)

// memStore - in-memory реализация AnswerStore и PlantDirectory для тестов.
type memStore struct {
	mu      sync.Mutex
	plants  map[string][]*domain.Plant
	reports map[string]*domain.EnvironmentReport
}

func newMemStore() *memStore {
	return &memStore{
		plants:  make(map[string][]*domain.Plant),
		reports: make(map[string]*domain.EnvironmentReport),
	}
}

func reportKey(companyID, plantID string, year domain.FinancialYear) string {
	return fmt.Sprintf("%s|%s|%s", companyID, plantID, year)
}

func (m *memStore) addPlant(companyID, plantID string, plantType domain.PlantType) *domain.Plant {
	m.mu.Lock()
	defer m.mu.Unlock()

	plant := &domain.Plant{
		ID:        plantID,
		CompanyID: companyID,
		PlantCode: plantID,
		PlantName: plantID,
		PlantType: plantType,
	}
	m.plants[companyID] = append(m.plants[companyID], plant)
	return plant
}

func (m *memStore) GetPlantByType(_ context.Context, companyID string, plantType domain.PlantType) (*domain.Plant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, plant := range m.plants[companyID] {
		if plant.PlantType == plantType {
			return plant, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (m *memStore) ListPlantsByType(_ context.Context, companyID string, plantType domain.PlantType) ([]*domain.Plant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*domain.Plant
	for _, plant := range m.plants[companyID] {
		if plant.PlantType == plantType {
			out = append(out, plant)
		}
	}
	return out, nil
}

func (m *memStore) GetReport(_ context.Context, companyID, plantID string, year domain.FinancialYear) (*domain.EnvironmentReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	report, ok := m.reports[reportKey(companyID, plantID, year)]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return report, nil
}

func (m *memStore) UpsertAnswer(_ context.Context, companyID, plantID string, year domain.FinancialYear, answer domain.QuestionAnswer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := reportKey(companyID, plantID, year)
	report, ok := m.reports[key]
	if !ok {
		report = &domain.EnvironmentReport{
			CompanyID:     companyID,
			PlantID:       plantID,
			FinancialYear: year,
			Answers:       domain.AnswersMap{},
			Status:        domain.ReportStatusDraft,
			Version:       1,
			CreatedAt:     time.Now(),
		}
		m.reports[key] = report
	}

	report.Answers[answer.QuestionID] = answer
	report.UpdatedAt = time.Now()
	return nil
}

var errTestStoreDown = fmt.Errorf("store unavailable")

// failingReportStore роняет все чтения отчётов: имитация недоступного
// хранилища в отличие от обычного "отчёта ещё нет".
type failingReportStore struct {
	*memStore
	err error
}

func (f *failingReportStore) GetReport(context.Context, string, string, domain.FinancialYear) (*domain.EnvironmentReport, error) {
	return nil, f.err
}

type stubCatalog struct {
	types map[string]domain.QuestionType
	rows  map[string][]domain.RowDescriptor
}

func (c stubCatalog) QuestionType(questionID string) domain.QuestionType {
	return c.types[questionID]
}

func (c stubCatalog) RowMetadata(questionID string) []domain.RowDescriptor {
	return c.rows[questionID]
}
