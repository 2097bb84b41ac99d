package models

import "fmt"

// KnowledgePoint is one atomic concept inside a knowledge graph. Difficulty
// ranks 1 (introductory) through 5. Prerequisites reference other point ids
// in the same graph.
type KnowledgePoint struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Difficulty    int      `json:"difficulty"`
	Prerequisites []string `json:"prerequisites"`
}

// KnowledgeGraph is the DAG of knowledge points for one topic. Nodes carry
// their prerequisite edges; the graph owns no other structure.
type KnowledgeGraph struct {
	Topic string           `json:"topic"`
	Nodes []KnowledgePoint `json:"nodes"`
}

// Validate checks the structural invariants every graph must satisfy:
// unique node ids, no dangling prerequisite references, difficulties within
// 1..5, and no prerequisite cycles.
func (g *KnowledgeGraph) Validate() error {
	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("knowledge point %q has empty id", n.Name)
		}
		if ids[n.ID] {
			return fmt.Errorf("duplicate knowledge point id %q", n.ID)
		}
		if n.Difficulty < 1 || n.Difficulty > 5 {
			return fmt.Errorf("knowledge point %q has difficulty %d outside 1..5", n.ID, n.Difficulty)
		}
		ids[n.ID] = true
	}
	for _, n := range g.Nodes {
		for _, pre := range n.Prerequisites {
			if !ids[pre] {
				return fmt.Errorf("knowledge point %q references unknown prerequisite %q", n.ID, pre)
			}
		}
	}
	if hasCycle(g.Nodes) {
		return fmt.Errorf("knowledge graph for %q contains a prerequisite cycle", g.Topic)
	}
	return nil
}

// hasCycle runs a three-color DFS over the prerequisite edges.
func hasCycle(nodes []KnowledgePoint) bool {
	prereqs := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		prereqs[n.ID] = n.Prerequisites
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(nodes))

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		for _, pre := range prereqs[id] {
			switch color[pre] {
			case gray:
				return true
			case white:
				if visit(pre) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}

	for _, n := range nodes {
		if color[n.ID] == white && visit(n.ID) {
			return true
		}
	}
	return false
}
