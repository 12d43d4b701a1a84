package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/ankoehn/ai-content-writer/errors"
	"github.com/ankoehn/ai-content-writer/history"
	"github.com/ankoehn/ai-content-writer/llm"
	"github.com/ankoehn/ai-content-writer/logger"
	"github.com/ankoehn/ai-content-writer/models"
	"github.com/ankoehn/ai-content-writer/search"
	"github.com/ankoehn/ai-content-writer/templates"
)

// Generator orchestrates one content request: a single search, a fan-out of
// three concurrent completions, and an all-or-nothing append to the history
// store.
type Generator struct {
	engine search.Engine
	llm    llm.Client
	store  *history.Store
}

// New wires a generator from its three collaborators.
func New(engine search.Engine, client llm.Client, store *history.Store) *Generator {
	return &Generator{engine: engine, llm: client, store: store}
}

// Generate runs the full pipeline for one request. Any collaborator failure
// aborts the whole request and leaves the history untouched; there is no
// retry at this layer.
func (g *Generator) Generate(ctx context.Context, req models.GenerationRequest) (*models.ContentRecord, error) {
	if req.Campaign == "" || req.ContentSubject == "" || req.TargetAudience == "" {
		return nil, apperrors.NewValidation("campaign, content_subject and target_audience are all required")
	}

	logger.Log.Infof("generating content for subject %q, campaign %q", req.ContentSubject, req.Campaign)

	findings, err := g.engine.Search(ctx, req.ContentSubject)
	if err != nil {
		return nil, apperrors.NewSearch(err)
	}
	article := ComposeFindings(findings)

	// All three agents share the same composed search text and audience;
	// they differ only in their prompt spec. The plain errgroup waits for
	// every task even after the first failure, so in-flight siblings are
	// never cancelled.
	outputs := make([]string, len(models.AllKinds()))
	var eg errgroup.Group
	for i, kind := range models.AllKinds() {
		eg.Go(func() error {
			spec := templates.Resolve(kind)
			user := templates.Render(spec, article, req.TargetAudience)
			text, err := g.llm.Complete(ctx, spec.SystemMessage, user)
			if err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			if text == "" {
				// An empty completion counts as failure, same as an error.
				return fmt.Errorf("%s: empty completion", kind)
			}
			outputs[i] = text
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, apperrors.NewGeneration(err)
	}

	now := time.Now()
	record := models.ContentRecord{
		ID:             models.NewContentID(now),
		Timestamp:      now.Format(models.TimestampLayout),
		Campaign:       req.Campaign,
		ContentSubject: req.ContentSubject,
		TargetAudience: req.TargetAudience,
	}
	for i, kind := range models.AllKinds() {
		record.SetContent(kind, outputs[i])
	}

	// Persistence happens inside generate itself; there is no separate
	// commit step.
	if _, err := g.store.Append(record); err != nil {
		return nil, err
	}

	logger.Log.Infof("content generation completed for %q (id=%s)", req.ContentSubject, record.ID)
	return &record, nil
}

// ComposeFindings flattens search findings into the single text block shared
// by all three agents. No per-kind filtering happens here.
func ComposeFindings(findings []models.SearchResult) string {
	var b strings.Builder
	for i, f := range findings {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if f.Title != "" {
			b.WriteString("Title: ")
			b.WriteString(f.Title)
			b.WriteString("\n")
		}
		b.WriteString(f.Content)
	}
	return b.String()
}
