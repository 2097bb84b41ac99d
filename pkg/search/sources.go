// Package search provides retrieval of learning resources from external
// sources. Sources are pluggable; the implementations here are placeholders
// that keep the pipeline exercisable until real integrations (web search,
// encyclopedia, paper index, video transcripts) are wired in.
package search

import (
	"context"
	"fmt"
)

// Source is one external retrieval backend. Result records are
// source-specific, so items are returned as loosely-typed maps.
type Source interface {
	// Name returns the tag used to group this source's results.
	Name() string

	// Search retrieves resources matching the query.
	Search(ctx context.Context, query string) ([]map[string]any, error)
}

// WebSource retrieves web search results (title/url/snippet records).
type WebSource struct{}

// Name implements Source.
func (WebSource) Name() string { return "web" }

// Search implements Source.
func (WebSource) Search(ctx context.Context, query string) ([]map[string]any, error) {
	return []map[string]any{
		{
			"title":   "Example search result",
			"url":     "https://example.com",
			"snippet": fmt.Sprintf("Placeholder web result about %q.", query),
		},
	}, nil
}

// EncyclopediaSource retrieves encyclopedia summaries (title/summary records).
type EncyclopediaSource struct{}

// Name implements Source.
func (EncyclopediaSource) Name() string { return "wikipedia" }

// Search implements Source.
func (EncyclopediaSource) Search(ctx context.Context, query string) ([]map[string]any, error) {
	return []map[string]any{
		{
			"title":   query,
			"summary": fmt.Sprintf("Placeholder encyclopedia summary for %q.", query),
		},
	}, nil
}

// PaperSource retrieves paper-index entries (title/link/summary records).
type PaperSource struct{}

// Name implements Source.
func (PaperSource) Name() string { return "arxiv" }

// Search implements Source.
func (PaperSource) Search(ctx context.Context, query string) ([]map[string]any, error) {
	return []map[string]any{
		{
			"title":   fmt.Sprintf("Papers about %s", query),
			"link":    "https://arxiv.org/abs/0000.00000",
			"summary": "Placeholder paper abstract.",
		},
	}, nil
}

// TranscriptFetcher retrieves the transcript text for an externally hosted
// video. Placeholder implementation until a transcript API is wired in.
type TranscriptFetcher struct{}

// Fetch returns the transcript for the given video identifier.
func (TranscriptFetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	return fmt.Sprintf("[placeholder] transcript for video %s", videoID), nil
}
