// Package services implements the personalized-learning pipeline stages.
// Every stage is a stateless worker: all cross-request state lives in the
// persistent store, and each entry point is independently invocable.
package services

import (
	"context"
	"fmt"

	"github.com/pathlight-ai/pathlight-engine/pkg/apperrors"
)

// TextGenerator is the text-generation collaborator used by the profile and
// lesson stages. Summarize uses the light model tier; Teach uses the strong
// tier. The llm.Service implements this interface.
type TextGenerator interface {
	Summarize(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Teach(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Distinguishable not-found failures for the request surface. Both satisfy
// errors.Is(err, apperrors.ErrNotFound).
var (
	ErrPlanNotFound = fmt.Errorf("learning plan %w", apperrors.ErrNotFound)
	ErrUnitNotFound = fmt.Errorf("lesson unit %w", apperrors.ErrNotFound)
)
