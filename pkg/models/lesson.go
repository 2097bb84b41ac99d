package models

// LessonContent is the structured teaching content generated for one unit.
// Introduction is length-bounded; Explanation carries the full generated
// text. All fields are always non-nil.
type LessonContent struct {
	UnitID       string   `json:"unit_id"`
	Introduction string   `json:"introduction"`
	Explanation  string   `json:"explanation"`
	Examples     []string `json:"examples"`
	Exercises    []string `json:"exercises"`
}

// ReviewItem points at prior material worth resurfacing, with a
// human-readable justification. Either reference may be absent.
type ReviewItem struct {
	ReferenceUnitID  string `json:"reference_unit_id,omitempty"`
	KnowledgePointID string `json:"knowledge_point_id,omitempty"`
	Reason           string `json:"reason"`
}

// ReviewPlan is produced fresh per request and never persisted.
type ReviewPlan struct {
	Items             []ReviewItem `json:"items"`
	CombinedExercises []string     `json:"combined_exercises"`
}
