package mocks

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/le-brouillon/portal-api/internal/models"
	"github.com/le-brouillon/portal-api/internal/repository"
)

// MockSubmissionRepository is a mock implementation of SubmissionRepository
type MockSubmissionRepository struct {
	Submissions map[string]*models.Submission
	CreateError error
	ListError   error
	CreateCalls int
}

func NewMockSubmissionRepository() *MockSubmissionRepository {
	return &MockSubmissionRepository{
		Submissions: make(map[string]*models.Submission),
	}
}

func (m *MockSubmissionRepository) Create(ctx context.Context, sub *models.Submission) error {
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Submissions[sub.ID] = sub
	return nil
}

func (m *MockSubmissionRepository) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	return m.Submissions[id], nil
}

func (m *MockSubmissionRepository) List(ctx context.Context) ([]*models.Submission, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	subs := make([]*models.Submission, 0, len(m.Submissions))
	for _, sub := range m.Submissions {
		subs = append(subs, sub)
	}
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	return subs, nil
}

func (m *MockSubmissionRepository) Delete(ctx context.Context, id string) error {
	delete(m.Submissions, id)
	return nil
}

func (m *MockSubmissionRepository) Count(ctx context.Context) (int, error) {
	return len(m.Submissions), nil
}

// MockBlockedDateRepository is a mock implementation of BlockedDateRepository
type MockBlockedDateRepository struct {
	Blocks      map[string]*models.BlockedDate
	CreateError error
	ListError   error
}

func NewMockBlockedDateRepository() *MockBlockedDateRepository {
	return &MockBlockedDateRepository{
		Blocks: make(map[string]*models.BlockedDate),
	}
}

func (m *MockBlockedDateRepository) Create(ctx context.Context, block *models.BlockedDate) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	for _, b := range m.Blocks {
		if b.Date == block.Date {
			return repository.ErrDateBlocked
		}
	}
	m.Blocks[block.ID] = block
	return nil
}

func (m *MockBlockedDateRepository) List(ctx context.Context) ([]*models.BlockedDate, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	blocks := make([]*models.BlockedDate, 0, len(m.Blocks))
	for _, b := range m.Blocks {
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].Date < blocks[j].Date
	})
	return blocks, nil
}

func (m *MockBlockedDateRepository) Delete(ctx context.Context, id string) error {
	delete(m.Blocks, id)
	return nil
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	Docs     map[string]json.RawMessage
	GetError error
	PutError error
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{
		Docs: make(map[string]json.RawMessage),
	}
}

func (m *MockSettingsRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.Docs[key], nil
}

func (m *MockSettingsRepository) Put(ctx context.Context, key string, doc json.RawMessage) error {
	if m.PutError != nil {
		return m.PutError
	}
	m.Docs[key] = doc
	return nil
}
