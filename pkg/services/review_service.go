package services

import (
	"context"
	"fmt"

	"github.com/pathlight-ai/pathlight-engine/pkg/models"
)

// ReviewPlanner selects prior material to resurface before or alongside the
// current unit. This is the seam for a real spaced-repetition policy that
// weights recency, mastery signal, and prerequisite linkage; the baseline
// below only looks at the most recent completed unit.
type ReviewPlanner interface {
	PlanReview(current models.LessonUnit, history []models.LessonUnit) *models.ReviewPlan
}

// lastUnitReviewPlanner is the baseline policy: review exactly the
// highest-order unit in history, with a templated justification; no combined
// exercises yet.
type lastUnitReviewPlanner struct{}

// NewLastUnitReviewPlanner creates the baseline review planner.
func NewLastUnitReviewPlanner() ReviewPlanner {
	return &lastUnitReviewPlanner{}
}

var _ ReviewPlanner = (*lastUnitReviewPlanner)(nil)

// PlanReview returns an empty plan for empty history, otherwise one item
// referencing the last completed unit.
func (p *lastUnitReviewPlanner) PlanReview(current models.LessonUnit, history []models.LessonUnit) *models.ReviewPlan {
	plan := &models.ReviewPlan{
		Items:             []models.ReviewItem{},
		CombinedExercises: []string{},
	}

	if len(history) == 0 {
		return plan
	}

	last := history[0]
	for _, u := range history[1:] {
		if u.Order > last.Order {
			last = u
		}
	}

	plan.Items = append(plan.Items, models.ReviewItem{
		ReferenceUnitID: last.ID,
		Reason: fmt.Sprintf(
			"Closely linked to the current chapter %q; revisit the previous chapter %q first.",
			current.Title, last.Title,
		),
	})

	return plan
}

// ReviewService produces review plans for a (plan, unit) pair. The review
// plan is ephemeral: derived fresh from the persisted plan, never stored.
type ReviewService interface {
	PlanReview(ctx context.Context, planID int64, unitID string) (*models.ReviewPlan, error)
}

type reviewService struct {
	plans   PlanService
	planner ReviewPlanner
}

// NewReviewService creates a new ReviewService around the given policy.
func NewReviewService(plans PlanService, planner ReviewPlanner) ReviewService {
	return &reviewService{plans: plans, planner: planner}
}

var _ ReviewService = (*reviewService)(nil)

// PlanReview loads the plan, treats every unit ordered before the target as
// completed history, and delegates the selection to the planner policy.
func (s *reviewService) PlanReview(ctx context.Context, planID int64, unitID string) (*models.ReviewPlan, error) {
	plan, err := s.plans.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	unit := plan.UnitByID(unitID)
	if unit == nil {
		return nil, fmt.Errorf("%w: %q in plan %d", ErrUnitNotFound, unitID, planID)
	}

	return s.planner.PlanReview(*unit, plan.UnitsBefore(unit)), nil
}
