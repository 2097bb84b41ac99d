package services

import (
	"context"
	"fmt"

	"github.com/pathlight-ai/pathlight-engine/pkg/models"
)

// KnowledgeMapper builds the knowledge graph for a topic. Implementations
// must return a valid DAG with stable, graph-unique node ids and at least one
// root node (no prerequisites). This is the seam for replacing the template
// policy with LLM-assisted or retrieval-grounded point mining.
type KnowledgeMapper interface {
	BuildGraph(ctx context.Context, topic string) (*models.KnowledgeGraph, error)
}

// Node ids emitted by the template mapper. Stable across invocations.
const (
	pointIntro    = "kp_intro"
	pointCore     = "kp_core"
	pointAdvanced = "kp_advanced"
)

// templateKnowledgeMapper is the baseline policy: a fixed three-tier graph
// (introduction → core principles → advanced application) with the topic
// interpolated into names and descriptions. Deterministic for a given topic.
type templateKnowledgeMapper struct{}

// NewTemplateKnowledgeMapper creates the baseline mapper.
func NewTemplateKnowledgeMapper() KnowledgeMapper {
	return &templateKnowledgeMapper{}
}

var _ KnowledgeMapper = (*templateKnowledgeMapper)(nil)

// BuildGraph returns the three-tier template graph for the topic. It is a
// total function: any non-empty topic yields a graph (blank topics are the
// caller's validation problem).
func (m *templateKnowledgeMapper) BuildGraph(ctx context.Context, topic string) (*models.KnowledgeGraph, error) {
	graph := &models.KnowledgeGraph{
		Topic: topic,
		Nodes: []models.KnowledgePoint{
			{
				ID:            pointIntro,
				Name:          fmt.Sprintf("%s fundamentals", topic),
				Description:   fmt.Sprintf("Understand the core concepts of %s and the problems it solves.", topic),
				Difficulty:    1,
				Prerequisites: []string{},
			},
			{
				ID:            pointCore,
				Name:          fmt.Sprintf("%s core principles", topic),
				Description:   fmt.Sprintf("Master the central ideas and key techniques of %s.", topic),
				Difficulty:    3,
				Prerequisites: []string{pointIntro},
			},
			{
				ID:            pointAdvanced,
				Name:          fmt.Sprintf("%s advanced applications", topic),
				Description:   fmt.Sprintf("Apply %s to more complex scenarios and projects.", topic),
				Difficulty:    4,
				Prerequisites: []string{pointCore},
			},
		},
	}
	return graph, nil
}
