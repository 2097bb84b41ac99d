package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/apperrors"
	"github.com/pathlight-ai/pathlight-engine/pkg/models"
	"github.com/pathlight-ai/pathlight-engine/pkg/repositories"
)

// ProfileService turns raw onboarding answers into persisted learner
// profiles. Create is deliberately create-only: it never looks up an existing
// profile before inserting. An UpdateByID operation is the seam for real
// upsert semantics later.
type ProfileService interface {
	Create(ctx context.Context, input models.ProfileInput) (*models.LearnerProfile, error)
	Get(ctx context.Context, profileID int64) (*models.LearnerProfile, error)
}

const profileSystemPrompt = "You are a learning-plan specialist. Given a learner's stage, " +
	"direction, plan, goal, and pace, write a concise summary covering their strengths, " +
	"weak spots, learning-style preferences, and likely risk points. Use structured " +
	"paragraphs that are easy to parse downstream."

type profileService struct {
	repo      repositories.ProfileRepository
	generator TextGenerator
	logger    *zap.Logger
}

// NewProfileService creates a new ProfileService.
func NewProfileService(repo repositories.ProfileRepository, generator TextGenerator, logger *zap.Logger) ProfileService {
	return &profileService{
		repo:      repo,
		generator: generator,
		logger:    logger.Named("profile"),
	}
}

var _ ProfileService = (*profileService)(nil)

// Create summarizes the onboarding answers with the summary-tier model and
// persists the result. The categorized lists stay empty at creation time: the
// summarization step does not yet parse structured lists out of the free-text
// response.
func (s *profileService) Create(ctx context.Context, input models.ProfileInput) (*models.LearnerProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	userPrompt := fmt.Sprintf(
		"Learning stage: %s\nLearning direction: %s\nLearning plan: %s\nLearning goal: %s\nLearning pace: %s\n",
		input.Stage, input.Direction, input.Plan, input.Goal, input.Pace,
	)

	summary, err := s.generator.Summarize(ctx, profileSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("summarize profile: %w", err)
	}

	profile := &models.LearnerProfile{
		Summary:     summary,
		Strengths:   []string{},
		Weaknesses:  []string{},
		Preferences: []string{},
		RiskPoints:  []string{},
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("Created learner profile", zap.Int64("profile_id", profile.ID))

	return profile, nil
}

// Get loads a profile by id.
func (s *profileService) Get(ctx context.Context, profileID int64) (*models.LearnerProfile, error) {
	return s.repo.GetByID(ctx, profileID)
}
