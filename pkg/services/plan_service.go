package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pathlight-ai/pathlight-engine/pkg/apperrors"
	"github.com/pathlight-ai/pathlight-engine/pkg/config"
	"github.com/pathlight-ai/pathlight-engine/pkg/models"
	"github.com/pathlight-ai/pathlight-engine/pkg/repositories"
)

// PlanService linearizes knowledge graphs into persisted learning plans.
type PlanService interface {
	// CreatePlan turns a knowledge graph into an ordered plan and persists
	// it. Every call creates a new plan row, even for identical arguments.
	CreatePlan(ctx context.Context, profileID *int64, graph *models.KnowledgeGraph) (*models.LearningPlan, error)

	// GetPlan loads a persisted plan by id.
	GetPlan(ctx context.Context, planID int64) (*models.LearningPlan, error)

	// ListPlans loads all plans bound to a profile, newest first.
	ListPlans(ctx context.Context, profileID int64) ([]*models.LearningPlan, error)
}

type planService struct {
	repo        repositories.PlanRepository
	unitMinutes int
	logger      *zap.Logger
}

// NewPlanService creates a new PlanService. Unit duration comes from the
// lesson configuration so it can be overridden per deployment.
func NewPlanService(repo repositories.PlanRepository, cfg config.LessonConfig, logger *zap.Logger) PlanService {
	return &planService{
		repo:        repo,
		unitMinutes: cfg.UnitMinutes,
		logger:      logger.Named("plan"),
	}
}

var _ PlanService = (*planService)(nil)

// CreatePlan assigns one lesson unit per knowledge point. Nodes are sorted
// topologically first, so unit order respects prerequisites regardless of the
// mapper's emission order. Persistence errors propagate uninterpreted.
func (s *planService) CreatePlan(ctx context.Context, profileID *int64, graph *models.KnowledgeGraph) (*models.LearningPlan, error) {
	if graph == nil || len(graph.Nodes) == 0 {
		return nil, fmt.Errorf("%w: knowledge graph has no nodes", apperrors.ErrInvalidInput)
	}
	if err := graph.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	ordered, err := topologicalOrder(graph.Nodes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	units := make([]models.LessonUnit, 0, len(ordered))
	for i, kp := range ordered {
		units = append(units, models.LessonUnit{
			ID:                   kp.ID,
			Title:                kp.Name,
			KnowledgePoints:      []string{kp.ID},
			EstimatedTimeMinutes: s.unitMinutes,
			Order:                i + 1,
		})
	}

	plan := &models.LearningPlan{
		ProfileID: profileID,
		Topic:     graph.Topic,
		Summary:   fmt.Sprintf("Foundation learning plan for %q with %d units.", graph.Topic, len(units)),
		Units:     units,
	}

	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info("Created learning plan",
		zap.Int64("plan_id", plan.ID),
		zap.String("topic", plan.Topic),
		zap.Int("units", len(plan.Units)))

	return plan, nil
}

// GetPlan loads a plan, mapping a missing row to ErrPlanNotFound.
func (s *planService) GetPlan(ctx context.Context, planID int64) (*models.LearningPlan, error) {
	plan, err := s.repo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// ListPlans returns the profile's plans. An unknown profile id yields an
// empty list, not an error; plan-profile binding is advisory.
func (s *planService) ListPlans(ctx context.Context, profileID int64) ([]*models.LearningPlan, error) {
	return s.repo.GetByProfile(ctx, profileID)
}

// topologicalOrder returns the nodes in prerequisite order using Kahn's
// algorithm. The scan is stable: among ready nodes, input order wins, so a
// graph already emitted in dependency order passes through unchanged.
func topologicalOrder(nodes []models.KnowledgePoint) ([]models.KnowledgePoint, error) {
	placed := make(map[string]bool, len(nodes))
	remaining := make([]models.KnowledgePoint, len(nodes))
	copy(remaining, nodes)

	ordered := make([]models.KnowledgePoint, 0, len(nodes))
	for len(remaining) > 0 {
		progressed := false
		next := remaining[:0]
		for _, kp := range remaining {
			ready := true
			for _, pre := range kp.Prerequisites {
				if !placed[pre] {
					ready = false
					break
				}
			}
			if ready {
				ordered = append(ordered, kp)
				placed[kp.ID] = true
				progressed = true
			} else {
				next = append(next, kp)
			}
		}
		if !progressed {
			return nil, fmt.Errorf("prerequisite cycle among %d knowledge points", len(next))
		}
		remaining = next
	}

	return ordered, nil
}
