package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pathlight-ai/pathlight-engine/pkg/apperrors"
	"github.com/pathlight-ai/pathlight-engine/pkg/database"
	"github.com/pathlight-ai/pathlight-engine/pkg/models"
)

// ProfileRepository provides data access for learner profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.LearnerProfile) error
	GetByID(ctx context.Context, id int64) (*models.LearnerProfile, error)
}

type profileRepository struct {
	db *database.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *database.DB) ProfileRepository {
	return &profileRepository{db: db}
}

var _ ProfileRepository = (*profileRepository)(nil)

// Create inserts a profile row and hydrates the assigned id and timestamps.
func (r *profileRepository) Create(ctx context.Context, profile *models.LearnerProfile) error {
	now := time.Now().UTC()

	query := `
		INSERT INTO learner_profiles (
			summary, strengths, weaknesses, preferences, risk_points,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		profile.Summary,
		jsonbList(profile.Strengths),
		jsonbList(profile.Weaknesses),
		jsonbList(profile.Preferences),
		jsonbList(profile.RiskPoints),
		now,
		now,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create learner profile: %w", err)
	}

	return nil
}

// GetByID loads a profile by its id.
func (r *profileRepository) GetByID(ctx context.Context, id int64) (*models.LearnerProfile, error) {
	query := `
		SELECT id, summary, strengths, weaknesses, preferences, risk_points,
		       created_at, updated_at
		FROM learner_profiles
		WHERE id = $1`

	var (
		profile models.LearnerProfile
		raw     [4][]byte
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Summary,
		&raw[0], &raw[1], &raw[2], &raw[3],
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get learner profile: %w", err)
	}

	for i, dst := range []*[]string{
		&profile.Strengths, &profile.Weaknesses, &profile.Preferences, &profile.RiskPoints,
	} {
		if err := json.Unmarshal(raw[i], dst); err != nil {
			return nil, fmt.Errorf("failed to decode profile lists: %w", err)
		}
	}

	return &profile, nil
}

// jsonbList marshals a string list for a JSONB column, normalizing nil to an
// empty array.
func jsonbList(values []string) []byte {
	if values == nil {
		values = []string{}
	}
	// Marshaling a string slice cannot fail.
	b, _ := json.Marshal(values)
	return b
}
