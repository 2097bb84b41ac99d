package models

import "time"

// LessonUnit is one schedulable chapter in a learning plan. Order values are
// unique within a plan and define the linear traversal order.
type LessonUnit struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	KnowledgePoints      []string `json:"knowledge_points"`
	EstimatedTimeMinutes int      `json:"estimated_time_minutes"`
	Order                int      `json:"order"`
}

// LearningPlan is the persisted, ordered sequence of lesson units for a
// topic. ProfileID is an advisory reference, not ownership; a plan may exist
// without a bound profile.
type LearningPlan struct {
	ID        int64        `json:"id"`
	ProfileID *int64       `json:"profile_id,omitempty"`
	Topic     string       `json:"topic"`
	Summary   string       `json:"summary"`
	Units     []LessonUnit `json:"units"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// UnitByID returns the unit with the given id, or nil if the plan does not
// contain it.
func (p *LearningPlan) UnitByID(unitID string) *LessonUnit {
	for i := range p.Units {
		if p.Units[i].ID == unitID {
			return &p.Units[i]
		}
	}
	return nil
}

// UnitsBefore returns the units whose order is strictly below the given
// unit's order, preserving plan order. This is the completed-unit history
// used by review planning.
func (p *LearningPlan) UnitsBefore(unit *LessonUnit) []LessonUnit {
	var history []LessonUnit
	for _, u := range p.Units {
		if u.Order < unit.Order {
			history = append(history, u)
		}
	}
	return history
}
