package services

import (
	"context"
	"fmt"

	"github.com/pathlight-ai/pathlight-engine/pkg/apperrors"
	"github.com/pathlight-ai/pathlight-engine/pkg/models"
)

// FeedbackAnalyzer derives plan adjustments and profile deltas from learner
// feedback. The intended design maps satisfaction/difficulty scores and
// preferred-change tags into concrete profile mutations consumed by the next
// planning request; the baseline below does neither and returns a fixed
// directive, which is the seam for that work.
type FeedbackAnalyzer interface {
	Analyze(ctx context.Context, feedback models.Feedback) (*models.FeedbackResult, error)
}

// templateFeedbackAnalyzer is the baseline policy: a fixed adjustment summary
// regardless of input, and no profile updates.
type templateFeedbackAnalyzer struct{}

// NewTemplateFeedbackAnalyzer creates the baseline analyzer.
func NewTemplateFeedbackAnalyzer() FeedbackAnalyzer {
	return &templateFeedbackAnalyzer{}
}

var _ FeedbackAnalyzer = (*templateFeedbackAnalyzer)(nil)

const templateAdjustmentSummary = "Based on your ratings and comments, upcoming chapters will:\n" +
	"- lower the difficulty slightly and add more concrete examples;\n" +
	"- add a short recall checkpoint before key knowledge points;\n" +
	"- shorten each session by splitting complex material into smaller parts."

// Analyze validates the feedback and returns the fixed adjustment directive.
// ProfileUpdates is always nil under this policy.
func (a *templateFeedbackAnalyzer) Analyze(ctx context.Context, feedback models.Feedback) (*models.FeedbackResult, error) {
	if err := feedback.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	return &models.FeedbackResult{
		ProfileUpdates:        nil,
		PlanAdjustmentSummary: templateAdjustmentSummary,
	}, nil
}
