package generation

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vibenest/vibenest-backend/internal/domain"
)

// CompletionClient is the slice of the completion service the orchestrator
// needs. The production implementation lives in infrastructure/gemini; tests
// inject a fake.
type CompletionClient interface {
	// AnalyzeImage sends a prompt plus one image reference and returns the
	// raw completion text.
	AnalyzeImage(ctx context.Context, imageURL, prompt string) (string, error)
	// GenerateText sends a text-only prompt and returns the raw completion.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// AnalyzeRequest describes one content-generation run for a listing upload.
type AnalyzeRequest struct {
	ImageURLs       []string
	GenerateContent bool
	Metadata        *ListingMetadata
}

// Orchestrator turns listing photos into a visual-analysis record and,
// when requested, synthesized marketing copy. It holds no state between
// invocations. Every external failure resolves to deterministic fallback
// content; the only hard error is an empty image list.
type Orchestrator struct {
	client CompletionClient
}

func NewOrchestrator(client CompletionClient) *Orchestrator {
	return &Orchestrator{client: client}
}

// AnalyzeImages analyzes every image concurrently, aggregates the ratings
// and optionally synthesizes title/description/highlights. The returned
// ImageAnalyses slice matches the input order and always has exactly one
// entry per input URL, no matter how many individual calls failed.
func (o *Orchestrator) AnalyzeImages(ctx context.Context, req *AnalyzeRequest) (*domain.VisualAnalysis, error) {
	if req == nil || len(req.ImageURLs) == 0 {
		return nil, fmt.Errorf("%w: no images to analyze", domain.ErrNoImages)
	}

	analyses := make([]domain.ImageAnalysis, len(req.ImageURLs))

	// Each image gets its own failure boundary: a failed call substitutes
	// the neutral fallback record instead of aborting the batch.
	var g errgroup.Group
	for i, url := range req.ImageURLs {
		g.Go(func() error {
			analyses[i] = o.analyzeOne(ctx, url, req.GenerateContent)
			return nil
		})
	}
	_ = g.Wait()

	result := &domain.VisualAnalysis{
		Ratings:       aggregateRatings(analyses),
		ImageAnalyses: analyses,
	}

	// Synthesis consumes the aggregate, so it runs strictly after the
	// per-image analyses have all finished.
	if req.GenerateContent {
		result.GeneratedContent = o.synthesize(ctx, analyses, result.Ratings, req.Metadata)
	}

	return result, nil
}

// analyzeOne makes exactly one attempt at analyzing a single image.
func (o *Orchestrator) analyzeOne(ctx context.Context, imageURL string, detailed bool) domain.ImageAnalysis {
	text, err := o.client.AnalyzeImage(ctx, imageURL, buildImagePrompt(detailed))
	if err != nil {
		fmt.Printf("[generation] image analysis failed (%s): %v\n", imageURL, err)
		return fallbackImageAnalysis()
	}

	parsed, err := parseStructuredResponse(text)
	if err != nil {
		fmt.Printf("[generation] unparsable image analysis (%s): %v\n", imageURL, err)
		return fallbackImageAnalysis()
	}

	ratings := make(map[string]int, len(characteristics))
	for _, c := range characteristics {
		if v, ok := parsedInt(parsed, c); ok {
			ratings[c] = v
		}
	}

	return domain.ImageAnalysis{
		Ratings:     ratings,
		Description: parsedString(parsed, "description"),
		Observation: parsedString(parsed, "observation"),
	}
}

// aggregateRatings averages each characteristic across all images, rounding
// to the nearest integer. A characteristic the model skipped on a given
// image counts as the neutral 5.
func aggregateRatings(analyses []domain.ImageAnalysis) map[string]int {
	agg := make(map[string]int, len(characteristics))
	for _, c := range characteristics {
		sum := 0
		for _, a := range analyses {
			v, ok := a.Ratings[c]
			if !ok {
				v = neutralRating
			}
			sum += v
		}
		agg[c] = int(math.Round(float64(sum) / float64(len(analyses))))
	}
	return agg
}

// synthesize makes one attempt at generating marketing copy from the
// completed analyses. Any failure resolves to the template fallback.
func (o *Orchestrator) synthesize(ctx context.Context, analyses []domain.ImageAnalysis, ratings map[string]int, meta *ListingMetadata) *domain.GeneratedContent {
	var observations strings.Builder
	for _, a := range analyses {
		obs := a.Observation
		if obs == "" {
			obs = a.Description
		}
		if obs == "" {
			continue
		}
		observations.WriteString(obs)
		observations.WriteString("\n")
	}

	text, err := o.client.GenerateText(ctx, buildContentPrompt(observations.String(), ratings, meta))
	if err != nil {
		fmt.Printf("[generation] content synthesis failed: %v\n", err)
		return fallbackContent(meta)
	}

	parsed, err := parseStructuredResponse(text)
	if err != nil {
		fmt.Printf("[generation] unparsable content synthesis: %v\n", err)
		return fallbackContent(meta)
	}

	title := parsedString(parsed, "title")
	description := parsedString(parsed, "description")
	highlights := parsedStringSlice(parsed, "highlights")
	if title == "" || description == "" || len(highlights) == 0 {
		fmt.Printf("[generation] incomplete content synthesis, using fallback\n")
		return fallbackContent(meta)
	}

	return &domain.GeneratedContent{
		Title:       title,
		Description: description,
		Highlights:  highlights,
	}
}
