package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlight-ai/pathlight-engine/pkg/apperrors"
	"github.com/pathlight-ai/pathlight-engine/pkg/models"
)

func TestTemplateFeedbackAnalyzer_FixedDirective(t *testing.T) {
	analyzer := NewTemplateFeedbackAnalyzer()

	planID := int64(3)
	inputs := []models.Feedback{
		{ProfileID: 1, Satisfaction: 5, Difficulty: 1, Comment: "great"},
		{ProfileID: 2, PlanID: &planID, UnitID: "kp_core", Satisfaction: 1, Difficulty: 5,
			Comment: "too hard", PreferredChanges: []string{"slower pace"}},
	}

	var summaries []string
	for _, fb := range inputs {
		result, err := analyzer.Analyze(context.Background(), fb)
		require.NoError(t, err)
		assert.Nil(t, result.ProfileUpdates, "baseline policy never updates the profile")
		assert.NotEmpty(t, result.PlanAdjustmentSummary)
		summaries = append(summaries, result.PlanAdjustmentSummary)
	}

	assert.Equal(t, summaries[0], summaries[1], "directive is fixed regardless of input values")
}

func TestTemplateFeedbackAnalyzer_Validation(t *testing.T) {
	analyzer := NewTemplateFeedbackAnalyzer()

	tests := []struct {
		name string
		fb   models.Feedback
	}{
		{"missing profile id", models.Feedback{Satisfaction: 3, Difficulty: 3}},
		{"satisfaction too high", models.Feedback{ProfileID: 1, Satisfaction: 6, Difficulty: 3}},
		{"difficulty too low", models.Feedback{ProfileID: 1, Satisfaction: 3, Difficulty: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyzer.Analyze(context.Background(), tt.fb)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}
