package search

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Group is one source's tagged result set.
type Group struct {
	Source string           `json:"source"`
	Items  []map[string]any `json:"items"`
}

// Locator fans a query out across all configured sources and merges the
// tagged results. A failing source never takes down the whole request: its
// group comes back with an empty item list and the failure is logged.
type Locator struct {
	sources []Source
	logger  *zap.Logger
}

// NewLocator creates a locator over the given sources.
func NewLocator(logger *zap.Logger, sources ...Source) *Locator {
	return &Locator{
		sources: sources,
		logger:  logger.Named("search"),
	}
}

// DefaultSources returns the baseline source set.
func DefaultSources() []Source {
	return []Source{WebSource{}, EncyclopediaSource{}, PaperSource{}}
}

// Search queries every source concurrently and returns one group per source,
// in the order the sources were configured.
func (l *Locator) Search(ctx context.Context, query string) []Group {
	groups := make([]Group, len(l.sources))

	var g errgroup.Group
	for i, src := range l.sources {
		g.Go(func() error {
			items, err := src.Search(ctx, query)
			if err != nil {
				l.logger.Warn("Retrieval source failed",
					zap.String("source", src.Name()),
					zap.String("query", query),
					zap.Error(err))
				items = nil
			}
			if items == nil {
				items = []map[string]any{}
			}
			groups[i] = Group{Source: src.Name(), Items: items}
			return nil
		})
	}
	// Source errors are isolated above; Wait never returns one.
	_ = g.Wait()

	return groups
}
