package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/studydesk/internal/logger"
	"github.com/sbilibin2017/studydesk/internal/models"
	"github.com/sbilibin2017/studydesk/internal/repositories"
)

//go:generate mockgen -source=generation.go -destination=mock_generation.go -package=services

// Generation defaults.
const (
	DefaultSummaryWords  = 500
	DefaultQuizQuestions = 5
	DefaultFlashcards    = 10
	DefaultStudyDays     = 7
)

// ErrGenerationFailed is returned when the provider cannot produce a text result.
var ErrGenerationFailed = errors.New("generation failed")

// Provider sends a prompt to a generative text model.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerationCache stores provider responses by key.
type GenerationCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Generator renders task prompts, calls the provider and parses its output.
type Generator struct {
	provider Provider
	cache    GenerationCache
}

// NewGenerator creates a Generator. cache may be nil.
func NewGenerator(provider Provider, cache GenerationCache) *Generator {
	return &Generator{provider: provider, cache: cache}
}

// Summarize returns a summary of at most maxWords words.
func (g *Generator) Summarize(ctx context.Context, text string, maxWords int) (string, error) {
	if maxWords <= 0 {
		maxWords = DefaultSummaryWords
	}
	prompt := fmt.Sprintf("Please provide a concise summary (max %d words) of the following text:\n\n%s", maxWords, text)
	return g.text(ctx, "summary", prompt)
}

// GenerateQuiz asks for numQuestions multiple choice questions. Items that
// are not shaped as four options with an in-range answer are dropped; any
// failure yields an empty slice.
func (g *Generator) GenerateQuiz(ctx context.Context, text string, numQuestions int) []models.Question {
	if numQuestions <= 0 {
		numQuestions = DefaultQuizQuestions
	}
	prompt := fmt.Sprintf("Generate exactly %d multiple choice quiz questions from the following material. "+
		"Return as JSON array with keys: question, options (list of 4), correct_answer (0-3):\n\n%s", numQuestions, text)

	raw, err := g.call(ctx, "quiz", prompt)
	if err != nil {
		return []models.Question{}
	}

	parsed := ParseJSONArray[models.Question](raw)
	if !parsed.OK {
		logger.Log.Warnw("unparseable quiz response", "response_len", len(raw))
		return []models.Question{}
	}

	questions := make([]models.Question, 0, len(parsed.Value))
	for _, q := range parsed.Value {
		if q.Valid() {
			questions = append(questions, q)
		}
	}
	return questions
}

// GenerateFlashcards asks for numCards front/back pairs. Cards with an empty
// side are dropped; any failure yields an empty slice.
func (g *Generator) GenerateFlashcards(ctx context.Context, text string, numCards int) []models.Flashcard {
	if numCards <= 0 {
		numCards = DefaultFlashcards
	}
	prompt := fmt.Sprintf("Generate %d key concept flashcards from this material. Return as JSON array with keys: front, back:\n\n%s", numCards, text)

	raw, err := g.call(ctx, "flashcards", prompt)
	if err != nil {
		return []models.Flashcard{}
	}

	parsed := ParseJSONArray[models.Flashcard](raw)
	if !parsed.OK {
		logger.Log.Warnw("unparseable flashcards response", "response_len", len(raw))
		return []models.Flashcard{}
	}

	cards := make([]models.Flashcard, 0, len(parsed.Value))
	for _, c := range parsed.Value {
		if strings.TrimSpace(c.Front) != "" && strings.TrimSpace(c.Back) != "" {
			cards = append(cards, c)
		}
	}
	return cards
}

// GenerateStudyPlan returns a day-by-day plan.
func (g *Generator) GenerateStudyPlan(ctx context.Context, text string, days int) (string, error) {
	if days <= 0 {
		days = DefaultStudyDays
	}
	prompt := fmt.Sprintf("Create a %d-day study plan for this material with daily goals:\n\n%s", days, text)
	return g.text(ctx, "study_plan", prompt)
}

// ExplainConcept explains concept in simple terms. background is appended
// as context only when non-empty.
func (g *Generator) ExplainConcept(ctx context.Context, concept, background string) (string, error) {
	prompt := "Explain the following concept in simple terms: " + concept
	if background != "" {
		prompt += "\nContext: " + background
	}
	return g.text(ctx, "explanation", prompt)
}

func (g *Generator) text(ctx context.Context, task, prompt string) (string, error) {
	out, err := g.call(ctx, task, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrGenerationFailed, task)
	}
	return out, nil
}

// call invokes the provider, serving and filling the cache when configured.
// Cache errors only cost a provider round trip.
func (g *Generator) call(ctx context.Context, task, prompt string) (string, error) {
	key := cacheKey(task, prompt)

	if g.cache != nil {
		cached, err := g.cache.Get(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("generation cache read failed", "task", task, "error", err)
		}
	}

	out, err := g.provider.Generate(ctx, prompt)
	if err != nil {
		logger.Log.Errorw("provider call failed", "task", task, "error", err)
		return "", err
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, key, out); err != nil {
			logger.Log.Warnw("generation cache write failed", "task", task, "error", err)
		}
	}

	return out, nil
}

func cacheKey(task, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "generation:" + task + ":" + hex.EncodeToString(sum[:])
}
