package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateKnowledgeMapper_BuildGraph(t *testing.T) {
	mapper := NewTemplateKnowledgeMapper()

	graph, err := mapper.BuildGraph(context.Background(), "线性代数")
	require.NoError(t, err)
	require.NotNil(t, graph)

	assert.Equal(t, "线性代数", graph.Topic)
	require.Len(t, graph.Nodes, 3)

	// Three-tier template: intro → core → advanced.
	assert.Equal(t, []int{1, 3, 4}, []int{
		graph.Nodes[0].Difficulty,
		graph.Nodes[1].Difficulty,
		graph.Nodes[2].Difficulty,
	})
	assert.Empty(t, graph.Nodes[0].Prerequisites)
	assert.Equal(t, []string{graph.Nodes[0].ID}, graph.Nodes[1].Prerequisites)
	assert.Equal(t, []string{graph.Nodes[1].ID}, graph.Nodes[2].Prerequisites)

	for _, node := range graph.Nodes {
		assert.True(t, strings.HasPrefix(node.Name, "线性代数"), "node name %q should start with the topic", node.Name)
		assert.Contains(t, node.Description, "线性代数")
	}
}

func TestTemplateKnowledgeMapper_GraphIsValidDAGWithRoot(t *testing.T) {
	mapper := NewTemplateKnowledgeMapper()

	for _, topic := range []string{"Go", "organic chemistry", "日本語", "x"} {
		graph, err := mapper.BuildGraph(context.Background(), topic)
		require.NoError(t, err)
		require.NoError(t, graph.Validate(), "graph for %q must be a valid DAG", topic)

		roots := 0
		for _, node := range graph.Nodes {
			if len(node.Prerequisites) == 0 {
				roots++
			}
		}
		assert.Greater(t, roots, 0, "graph for %q must have a root node", topic)
	}
}

func TestTemplateKnowledgeMapper_Deterministic(t *testing.T) {
	mapper := NewTemplateKnowledgeMapper()

	first, err := mapper.BuildGraph(context.Background(), "statistics")
	require.NoError(t, err)
	second, err := mapper.BuildGraph(context.Background(), "statistics")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
