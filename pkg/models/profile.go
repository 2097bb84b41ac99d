package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ProfileInput is the raw onboarding answers a learner submits before any
// summarization happens.
type ProfileInput struct {
	Stage     string `json:"stage"`     // e.g. high school / university / career switch
	Direction string `json:"direction"` // e.g. frontend, algorithms, physics
	Plan      string `json:"plan"`      // rough description of the intended plan
	Goal      string `json:"goal"`      // e.g. land a frontend job within six months
	Pace      string `json:"pace"`      // e.g. 2 hours per day, weekends only
}

// Validate checks that all five onboarding fields are present.
func (p ProfileInput) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Stage, validation.Required),
		validation.Field(&p.Direction, validation.Required),
		validation.Field(&p.Plan, validation.Required),
		validation.Field(&p.Goal, validation.Required),
		validation.Field(&p.Pace, validation.Required),
	)
}

// LearnerProfile is the structured long-term memory record for one learner.
// The categorized lists are left empty at creation time; only feedback
// analysis is allowed to mutate them.
type LearnerProfile struct {
	ID          int64     `json:"id"`
	Summary     string    `json:"summary"`
	Strengths   []string  `json:"strengths"`
	Weaknesses  []string  `json:"weaknesses"`
	Preferences []string  `json:"preferences"`
	RiskPoints  []string  `json:"risk_points"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
