package services

import (
	"context"
	"sync/atomic"

	"github.com/pathlight-ai/pathlight-engine/pkg/apperrors"
	"github.com/pathlight-ai/pathlight-engine/pkg/models"
)

// mockPlanRepo is an in-memory PlanRepository. Set the error fields to force
// failures.
type mockPlanRepo struct {
	plans     map[int64]*models.LearningPlan
	nextID    int64
	createErr error
	getErr    error
}

func newMockPlanRepo() *mockPlanRepo {
	return &mockPlanRepo{plans: make(map[int64]*models.LearningPlan)}
}

func (m *mockPlanRepo) Create(ctx context.Context, plan *models.LearningPlan) error {
	if m.createErr != nil {
		return m.createErr
	}
	plan.ID = atomic.AddInt64(&m.nextID, 1)
	stored := *plan
	m.plans[plan.ID] = &stored
	return nil
}

func (m *mockPlanRepo) GetByID(ctx context.Context, id int64) (*models.LearningPlan, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	plan, ok := m.plans[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *plan
	return &copied, nil
}

func (m *mockPlanRepo) GetByProfile(ctx context.Context, profileID int64) ([]*models.LearningPlan, error) {
	var result []*models.LearningPlan
	for _, plan := range m.plans {
		if plan.ProfileID != nil && *plan.ProfileID == profileID {
			copied := *plan
			result = append(result, &copied)
		}
	}
	return result, nil
}

// mockProfileRepo is an in-memory ProfileRepository.
type mockProfileRepo struct {
	profiles  map[int64]*models.LearnerProfile
	nextID    int64
	createErr error
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[int64]*models.LearnerProfile)}
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *models.LearnerProfile) error {
	if m.createErr != nil {
		return m.createErr
	}
	profile.ID = atomic.AddInt64(&m.nextID, 1)
	stored := *profile
	m.profiles[profile.ID] = &stored
	return nil
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id int64) (*models.LearnerProfile, error) {
	profile, ok := m.profiles[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *profile
	return &copied, nil
}

// mockTextGenerator is a configurable TextGenerator. Set the function fields
// to control behavior in tests.
type mockTextGenerator struct {
	SummarizeFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	TeachFunc     func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	SummarizeCalls []string // user prompts
	TeachCalls     []string // user prompts
}

func (m *mockTextGenerator) Summarize(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.SummarizeCalls = append(m.SummarizeCalls, userPrompt)
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, systemPrompt, userPrompt)
	}
	return "summary text", nil
}

func (m *mockTextGenerator) Teach(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.TeachCalls = append(m.TeachCalls, userPrompt)
	if m.TeachFunc != nil {
		return m.TeachFunc(ctx, systemPrompt, userPrompt)
	}
	return "lesson text", nil
}

var _ TextGenerator = (*mockTextGenerator)(nil)
