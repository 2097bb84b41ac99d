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

// PlanRepository provides data access for learning plans. The plan's unit
// sequence is embedded as JSONB rather than a separate relation.
type PlanRepository interface {
	Create(ctx context.Context, plan *models.LearningPlan) error
	GetByID(ctx context.Context, id int64) (*models.LearningPlan, error)
	GetByProfile(ctx context.Context, profileID int64) ([]*models.LearningPlan, error)
}

type planRepository struct {
	db *database.DB
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(db *database.DB) PlanRepository {
	return &planRepository{db: db}
}

var _ PlanRepository = (*planRepository)(nil)

// Create inserts a plan row and hydrates the assigned id and timestamps.
// Every call creates a new row; there is no deduplication by topic or
// profile.
func (r *planRepository) Create(ctx context.Context, plan *models.LearningPlan) error {
	units, err := json.Marshal(plan.Units)
	if err != nil {
		return fmt.Errorf("failed to encode plan units: %w", err)
	}

	now := time.Now().UTC()

	query := `
		INSERT INTO learning_plans (
			profile_id, topic, summary, units, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err = r.db.QueryRow(ctx, query,
		plan.ProfileID,
		plan.Topic,
		plan.Summary,
		units,
		now,
		now,
	).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create learning plan: %w", err)
	}

	return nil
}

// GetByID loads a plan, including its embedded unit sequence.
func (r *planRepository) GetByID(ctx context.Context, id int64) (*models.LearningPlan, error) {
	query := `
		SELECT id, profile_id, topic, summary, units, created_at, updated_at
		FROM learning_plans
		WHERE id = $1`

	plan, err := scanPlan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get learning plan: %w", err)
	}
	return plan, nil
}

// GetByProfile loads all plans bound to a profile, newest first.
func (r *planRepository) GetByProfile(ctx context.Context, profileID int64) ([]*models.LearningPlan, error) {
	query := `
		SELECT id, profile_id, topic, summary, units, created_at, updated_at
		FROM learning_plans
		WHERE profile_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list learning plans: %w", err)
	}
	defer rows.Close()

	var plans []*models.LearningPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan learning plan: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read learning plans: %w", err)
	}

	return plans, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*models.LearningPlan, error) {
	var (
		plan      models.LearningPlan
		rawUnits  []byte
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(
		&plan.ID,
		&plan.ProfileID,
		&plan.Topic,
		&plan.Summary,
		&rawUnits,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rawUnits, &plan.Units); err != nil {
		return nil, fmt.Errorf("failed to decode plan units: %w", err)
	}
	plan.CreatedAt = createdAt
	plan.UpdatedAt = updatedAt

	return &plan, nil
}
