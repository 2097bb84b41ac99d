package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubSource is a configurable Source for tests.
type stubSource struct {
	name  string
	items []map[string]any
	err   error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Search(ctx context.Context, query string) ([]map[string]any, error) {
	return s.items, s.err
}

func TestLocator_TagsEverySource(t *testing.T) {
	locator := NewLocator(zap.NewNop(), DefaultSources()...)

	groups := locator.Search(context.Background(), "线性代数")

	require.Len(t, groups, 3)
	assert.Equal(t, "web", groups[0].Source)
	assert.Equal(t, "wikipedia", groups[1].Source)
	assert.Equal(t, "arxiv", groups[2].Source)
	for _, g := range groups {
		assert.NotNil(t, g.Items)
	}
}

func TestLocator_IsolatesSourceFailure(t *testing.T) {
	locator := NewLocator(zap.NewNop(),
		stubSource{name: "web", items: []map[string]any{{"title": "hit"}}},
		stubSource{name: "wikipedia", err: errors.New("rate limited")},
		stubSource{name: "arxiv", items: []map[string]any{{"title": "paper"}}},
	)

	groups := locator.Search(context.Background(), "calculus")

	require.Len(t, groups, 3, "a failing source must not suppress the others")
	assert.Equal(t, "web", groups[0].Source)
	assert.Len(t, groups[0].Items, 1)
	assert.Equal(t, "wikipedia", groups[1].Source)
	assert.Empty(t, groups[1].Items, "failed source contributes an empty group")
	assert.Equal(t, "arxiv", groups[2].Source)
	assert.Len(t, groups[2].Items, 1)
}

func TestLocator_EmptySourceStillTagged(t *testing.T) {
	locator := NewLocator(zap.NewNop(), stubSource{name: "web"})

	groups := locator.Search(context.Background(), "topic")

	require.Len(t, groups, 1)
	assert.Equal(t, "web", groups[0].Source)
	assert.NotNil(t, groups[0].Items)
	assert.Empty(t, groups[0].Items)
}

func TestTranscriptFetcher_Placeholder(t *testing.T) {
	text, err := TranscriptFetcher{}.Fetch(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Contains(t, text, "abc123")
	assert.Contains(t, text, "[placeholder]")
}
