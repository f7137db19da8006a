package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/models"
)

//go:generate mockgen -source=study.go -destination=mock_study.go -package=services

// StudyGenerator produces free-text and flashcard study aids.
type StudyGenerator interface {
	Summarize(ctx context.Context, text string, maxWords int) (string, error)
	GenerateFlashcards(ctx context.Context, text string, numCards int) []models.Flashcard
	GenerateStudyPlan(ctx context.Context, text string, days int) (string, error)
	ExplainConcept(ctx context.Context, concept, background string) (string, error)
}

// StudyService derives study aids from owned materials.
type StudyService struct {
	texts     TextLoader
	generator StudyGenerator
}

func NewStudyService(texts TextLoader, generator StudyGenerator) *StudyService {
	return &StudyService{texts: texts, generator: generator}
}

// Summary returns the material summary or ErrGenerationFailed.
func (s *StudyService) Summary(ctx context.Context, ownerID, materialID uuid.UUID) (string, error) {
	_, text, err := s.texts.LoadText(ctx, materialID, ownerID)
	if err != nil {
		return "", err
	}
	return s.generator.Summarize(ctx, text, DefaultSummaryWords)
}

// Flashcards returns up to numCards flashcards, possibly none.
func (s *StudyService) Flashcards(ctx context.Context, ownerID, materialID uuid.UUID, numCards int) ([]models.Flashcard, error) {
	_, text, err := s.texts.LoadText(ctx, materialID, ownerID)
	if err != nil {
		return nil, err
	}
	return s.generator.GenerateFlashcards(ctx, text, numCards), nil
}

// StudyPlan returns a plan over days or ErrGenerationFailed.
func (s *StudyService) StudyPlan(ctx context.Context, ownerID, materialID uuid.UUID, days int) (string, error) {
	_, text, err := s.texts.LoadText(ctx, materialID, ownerID)
	if err != nil {
		return "", err
	}
	return s.generator.GenerateStudyPlan(ctx, text, days)
}

// ExplainConcept returns an explanation or ErrGenerationFailed.
func (s *StudyService) ExplainConcept(ctx context.Context, concept, background string) (string, error) {
	return s.generator.ExplainConcept(ctx, concept, background)
}
