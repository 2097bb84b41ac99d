package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/config"
	"github.com/pathlight-ai/pathlight-engine/pkg/models"
)

// LessonService generates teaching content for a (plan, unit) pair on
// demand.
type LessonService interface {
	GenerateLesson(ctx context.Context, planID int64, unitID string) (*models.LessonContent, error)
}

const lessonSystemPrompt = "You are a teacher who excels at guided discovery. " +
	"Start with one or two questions closely tied to the topic to make the student think, " +
	"then explain the core concepts step by step, and finish with a short worked example " +
	"and three practice problems."

type lessonService struct {
	plans     PlanService
	generator TextGenerator
	budget    int
	logger    *zap.Logger
}

// NewLessonService creates a new LessonService. The introduction length
// budget comes from the lesson configuration.
func NewLessonService(plans PlanService, generator TextGenerator, cfg config.LessonConfig, logger *zap.Logger) LessonService {
	return &lessonService{
		plans:     plans,
		generator: generator,
		budget:    cfg.IntroductionBudget,
		logger:    logger.Named("lesson"),
	}
}

var _ LessonService = (*lessonService)(nil)

// GenerateLesson produces structured teaching content for one unit using the
// teaching model tier. The generated text is structured by head-truncation
// for now: the introduction is the length-bounded head, the explanation and
// single example carry the full text, and exercises stay empty until real
// section splitting lands.
func (s *lessonService) GenerateLesson(ctx context.Context, planID int64, unitID string) (*models.LessonContent, error) {
	plan, err := s.plans.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	unit := plan.UnitByID(unitID)
	if unit == nil {
		return nil, fmt.Errorf("%w: %q in plan %d", ErrUnitNotFound, unitID, planID)
	}

	userPrompt := fmt.Sprintf(
		"Course topic: %s\nCurrent chapter: %s\nDesign a short teaching session for this chapter.\n",
		plan.Topic, unit.Title,
	)

	fullText, err := s.generator.Teach(ctx, lessonSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate lesson: %w", err)
	}

	s.logger.Debug("Generated lesson",
		zap.Int64("plan_id", planID),
		zap.String("unit_id", unitID),
		zap.Int("chars", len(fullText)))

	return &models.LessonContent{
		UnitID:       unit.ID,
		Introduction: headWithEllipsis(fullText, s.budget),
		Explanation:  fullText,
		Examples:     []string{fullText},
		Exercises:    []string{},
	}, nil
}

// headWithEllipsis bounds text to maxChars characters. Text at or under the
// budget is returned unchanged; longer text keeps the head and ends with a
// "..." marker so the result is exactly maxChars characters long.
func headWithEllipsis(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars-3]) + "..."
}
