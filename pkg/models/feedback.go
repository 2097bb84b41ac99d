package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Feedback is a learner's reaction to taught material. Satisfaction and
// difficulty are 1-5 ratings.
type Feedback struct {
	ProfileID        int64    `json:"profile_id"`
	PlanID           *int64   `json:"plan_id,omitempty"`
	UnitID           string   `json:"unit_id,omitempty"`
	Satisfaction     int      `json:"satisfaction"`
	Difficulty       int      `json:"difficulty"`
	Comment          string   `json:"comment"`
	PreferredChanges []string `json:"preferred_changes"`
}

// Validate checks the required fields and rating bounds.
func (f Feedback) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ProfileID, validation.Required),
		validation.Field(&f.Satisfaction, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&f.Difficulty, validation.Required, validation.Min(1), validation.Max(5)),
	)
}

// FeedbackResult carries the derived plan adjustment and, once feedback
// analysis learns to produce them, profile mutations. ProfileUpdates is nil
// under the baseline analyzer.
type FeedbackResult struct {
	ProfileUpdates        *LearnerProfile `json:"profile_updates,omitempty"`
	PlanAdjustmentSummary string          `json:"plan_adjustment_summary"`
}
