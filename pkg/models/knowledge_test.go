package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnowledgeGraph_Validate(t *testing.T) {
	valid := KnowledgeGraph{
		Topic: "t",
		Nodes: []KnowledgePoint{
			{ID: "a", Name: "A", Difficulty: 1},
			{ID: "b", Name: "B", Difficulty: 3, Prerequisites: []string{"a"}},
		},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		graph KnowledgeGraph
	}{
		{"empty id", KnowledgeGraph{Nodes: []KnowledgePoint{{Name: "A", Difficulty: 1}}}},
		{"duplicate id", KnowledgeGraph{Nodes: []KnowledgePoint{
			{ID: "a", Difficulty: 1}, {ID: "a", Difficulty: 2},
		}}},
		{"difficulty out of range", KnowledgeGraph{Nodes: []KnowledgePoint{{ID: "a", Difficulty: 6}}}},
		{"dangling prerequisite", KnowledgeGraph{Nodes: []KnowledgePoint{
			{ID: "a", Difficulty: 1, Prerequisites: []string{"ghost"}},
		}}},
		{"self cycle", KnowledgeGraph{Nodes: []KnowledgePoint{
			{ID: "a", Difficulty: 1, Prerequisites: []string{"a"}},
		}}},
		{"two-node cycle", KnowledgeGraph{Nodes: []KnowledgePoint{
			{ID: "a", Difficulty: 1, Prerequisites: []string{"b"}},
			{ID: "b", Difficulty: 1, Prerequisites: []string{"a"}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.graph.Validate())
		})
	}
}

func TestLearningPlan_UnitLookup(t *testing.T) {
	plan := LearningPlan{
		Units: []LessonUnit{
			{ID: "u1", Order: 1},
			{ID: "u2", Order: 2},
			{ID: "u3", Order: 3},
		},
	}

	assert.Nil(t, plan.UnitByID("missing"))

	unit := plan.UnitByID("u3")
	assert.NotNil(t, unit)

	history := plan.UnitsBefore(unit)
	assert.Len(t, history, 2)

	first := plan.UnitByID("u1")
	assert.Empty(t, plan.UnitsBefore(first))
}
