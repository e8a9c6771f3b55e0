package mocks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/le-brouillon/portal-api/internal/availability"
	"github.com/le-brouillon/portal-api/internal/calendar"
	"github.com/le-brouillon/portal-api/internal/formats"
	"github.com/le-brouillon/portal-api/internal/models"
	"github.com/le-brouillon/portal-api/internal/service"
	"github.com/le-brouillon/portal-api/internal/validation"
)

// MockFormatService is a mock implementation of FormatService
type MockFormatService struct {
	ActiveTable *formats.Table
	TableError  error
	SavedDocs   []json.RawMessage
	SaveError   error
}

func NewMockFormatService() *MockFormatService {
	return &MockFormatService{ActiveTable: formats.Default()}
}

func (m *MockFormatService) Table(ctx context.Context) (*formats.Table, error) {
	if m.TableError != nil {
		return nil, m.TableError
	}
	return m.ActiveTable, nil
}

func (m *MockFormatService) SaveOverride(ctx context.Context, doc json.RawMessage) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.SavedDocs = append(m.SavedDocs, doc)
	return nil
}

// MockIntakeService is a mock implementation of IntakeService
type MockIntakeService struct {
	Result      *models.Submission
	Errors      []validation.ValidationError
	SubmitError error
	LastDraft   *models.SubmissionDraft
	SubmitCalls int
}

func NewMockIntakeService() *MockIntakeService {
	return &MockIntakeService{}
}

func (m *MockIntakeService) Submit(ctx context.Context, draft *models.SubmissionDraft) (*models.Submission, []validation.ValidationError, error) {
	m.SubmitCalls++
	m.LastDraft = draft
	if m.SubmitError != nil {
		return nil, nil, m.SubmitError
	}
	if len(m.Errors) > 0 {
		return nil, m.Errors, nil
	}
	return m.Result, nil, nil
}

// MockScheduleService is a mock implementation of ScheduleService
type MockScheduleService struct {
	Cells            []calendar.DayCell
	MonthViewError   error
	OccupiedDates    []availability.OccupiedDate
	OccupiedError    error
	Block            *models.BlockedDate
	BlockError       error
	UnblockError     error
	SubmissionList   []*models.Submission
	SubmissionsError error
	DeleteError      error
	StatsResult      *service.ScheduleStats
	StatsError       error
	DeletedIDs       []string
	UnblockedIDs     []string
	BlockedDates     []string
}

func NewMockScheduleService() *MockScheduleService {
	return &MockScheduleService{}
}

func (m *MockScheduleService) MonthView(ctx context.Context, formatKey string, year int, month time.Month) ([]calendar.DayCell, error) {
	if m.MonthViewError != nil {
		return nil, m.MonthViewError
	}
	return m.Cells, nil
}

func (m *MockScheduleService) Occupied(ctx context.Context) ([]availability.OccupiedDate, error) {
	if m.OccupiedError != nil {
		return nil, m.OccupiedError
	}
	return m.OccupiedDates, nil
}

func (m *MockScheduleService) BlockDate(ctx context.Context, date string) (*models.BlockedDate, error) {
	if m.BlockError != nil {
		return nil, m.BlockError
	}
	m.BlockedDates = append(m.BlockedDates, date)
	return m.Block, nil
}

func (m *MockScheduleService) UnblockDate(ctx context.Context, id string) error {
	if m.UnblockError != nil {
		return m.UnblockError
	}
	m.UnblockedIDs = append(m.UnblockedIDs, id)
	return nil
}

func (m *MockScheduleService) Submissions(ctx context.Context) ([]*models.Submission, error) {
	if m.SubmissionsError != nil {
		return nil, m.SubmissionsError
	}
	return m.SubmissionList, nil
}

func (m *MockScheduleService) DeleteSubmission(ctx context.Context, id string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.DeletedIDs = append(m.DeletedIDs, id)
	return nil
}

func (m *MockScheduleService) Stats(ctx context.Context) (*service.ScheduleStats, error) {
	if m.StatsError != nil {
		return nil, m.StatsError
	}
	return m.StatsResult, nil
}
