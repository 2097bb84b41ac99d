package handlers

import (
	"context"

	"github.com/pathlight-ai/pathlight-engine/pkg/models"
	"github.com/pathlight-ai/pathlight-engine/pkg/services"
)

// Function-field mocks for the service interfaces the handlers depend on.

type mockProfileService struct {
	CreateFunc func(ctx context.Context, input models.ProfileInput) (*models.LearnerProfile, error)
	GetFunc    func(ctx context.Context, profileID int64) (*models.LearnerProfile, error)
}

func (m *mockProfileService) Create(ctx context.Context, input models.ProfileInput) (*models.LearnerProfile, error) {
	return m.CreateFunc(ctx, input)
}

func (m *mockProfileService) Get(ctx context.Context, profileID int64) (*models.LearnerProfile, error) {
	return m.GetFunc(ctx, profileID)
}

var _ services.ProfileService = (*mockProfileService)(nil)

type mockPlanService struct {
	CreatePlanFunc func(ctx context.Context, profileID *int64, graph *models.KnowledgeGraph) (*models.LearningPlan, error)
	GetPlanFunc    func(ctx context.Context, planID int64) (*models.LearningPlan, error)
	ListPlansFunc  func(ctx context.Context, profileID int64) ([]*models.LearningPlan, error)
}

func (m *mockPlanService) CreatePlan(ctx context.Context, profileID *int64, graph *models.KnowledgeGraph) (*models.LearningPlan, error) {
	return m.CreatePlanFunc(ctx, profileID, graph)
}

func (m *mockPlanService) GetPlan(ctx context.Context, planID int64) (*models.LearningPlan, error) {
	return m.GetPlanFunc(ctx, planID)
}

func (m *mockPlanService) ListPlans(ctx context.Context, profileID int64) ([]*models.LearningPlan, error) {
	return m.ListPlansFunc(ctx, profileID)
}

var _ services.PlanService = (*mockPlanService)(nil)

type mockLessonService struct {
	GenerateLessonFunc func(ctx context.Context, planID int64, unitID string) (*models.LessonContent, error)
}

func (m *mockLessonService) GenerateLesson(ctx context.Context, planID int64, unitID string) (*models.LessonContent, error) {
	return m.GenerateLessonFunc(ctx, planID, unitID)
}

var _ services.LessonService = (*mockLessonService)(nil)

type mockReviewService struct {
	PlanReviewFunc func(ctx context.Context, planID int64, unitID string) (*models.ReviewPlan, error)
}

func (m *mockReviewService) PlanReview(ctx context.Context, planID int64, unitID string) (*models.ReviewPlan, error) {
	return m.PlanReviewFunc(ctx, planID, unitID)
}

var _ services.ReviewService = (*mockReviewService)(nil)

type mockFeedbackAnalyzer struct {
	AnalyzeFunc func(ctx context.Context, feedback models.Feedback) (*models.FeedbackResult, error)
}

func (m *mockFeedbackAnalyzer) Analyze(ctx context.Context, feedback models.Feedback) (*models.FeedbackResult, error) {
	return m.AnalyzeFunc(ctx, feedback)
}

var _ services.FeedbackAnalyzer = (*mockFeedbackAnalyzer)(nil)
