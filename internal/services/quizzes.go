package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/logger"
	"github.com/sbilibin2017/studydesk/internal/models"
)

//go:generate mockgen -source=quizzes.go -destination=mock_quizzes.go -package=services

var (
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
)

// TextLoader returns an owned material with its extracted text.
type TextLoader interface {
	LoadText(ctx context.Context, materialID, ownerID uuid.UUID) (*models.MaterialDB, string, error)
}

// QuizGenerator produces quiz questions from text.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, text string, numQuestions int) []models.Question
}

// QuizRepository stores and reads quizzes.
type QuizRepository interface {
	Save(ctx context.Context, quiz *models.QuizDB) error
	GetByIDAndUserID(ctx context.Context, quizID, userID uuid.UUID) (*models.QuizDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.QuizDB, error)
}

// SubmissionRepository stores and reads quiz attempts.
type SubmissionRepository interface {
	Save(ctx context.Context, submission *models.SubmissionDB) error
	ListByQuizID(ctx context.Context, quizID uuid.UUID) ([]models.SubmissionDB, error)
}

// QuizService generates, stores and scores quizzes.
type QuizService struct {
	texts       TextLoader
	generator   QuizGenerator
	quizzes     QuizRepository
	submissions SubmissionRepository
	publisher   Publisher
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	texts TextLoader,
	generator QuizGenerator,
	quizzes QuizRepository,
	submissions SubmissionRepository,
	publisher Publisher,
) *QuizService {
	return &QuizService{
		texts:       texts,
		generator:   generator,
		quizzes:     quizzes,
		submissions: submissions,
		publisher:   publisher,
	}
}

// Generate builds a quiz from the material's text. A quiz is persisted only
// when the provider yields at least one usable question; otherwise the
// returned quiz has a nil id and no questions.
func (s *QuizService) Generate(ctx context.Context, ownerID, materialID uuid.UUID, numQuestions int) (*models.QuizDB, error) {
	material, text, err := s.texts.LoadText(ctx, materialID, ownerID)
	if err != nil {
		return nil, err
	}

	questions := s.generator.GenerateQuiz(ctx, text, numQuestions)

	now := time.Now().UTC()
	quiz := &models.QuizDB{
		UserID:     ownerID,
		MaterialID: material.MaterialID,
		Title:      material.Title + " Quiz",
		Questions:  questions,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if len(questions) == 0 {
		logger.Log.Warnw("provider returned no usable questions", "material_id", materialID)
		return quiz, nil
	}

	quiz.QuizID = uuid.New()
	if err := s.quizzes.Save(ctx, quiz); err != nil {
		logger.Log.Errorw("failed to save quiz", "material_id", materialID, "error", err)
		return nil, err
	}

	s.publisher.Publish(ctx, ownerID, quiz.QuizID, models.OperationQuizGenerated)

	return quiz, nil
}

// Get returns an owned quiz.
func (s *QuizService) Get(ctx context.Context, ownerID, quizID uuid.UUID) (*models.QuizDB, error) {
	quiz, err := s.quizzes.GetByIDAndUserID(ctx, quizID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get quiz", "quiz_id", quizID, "error", err)
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	return quiz, nil
}

// List returns the owner's quizzes.
func (s *QuizService) List(ctx context.Context, ownerID uuid.UUID) ([]models.QuizDB, error) {
	quizzes, err := s.quizzes.ListByUserID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list quizzes", "user_id", ownerID, "error", err)
		return nil, err
	}
	return quizzes, nil
}

// ListSubmissions returns the attempts at an owned quiz, oldest first.
func (s *QuizService) ListSubmissions(ctx context.Context, ownerID, quizID uuid.UUID) ([]models.SubmissionDB, error) {
	quiz, err := s.Get(ctx, ownerID, quizID)
	if err != nil {
		return nil, err
	}

	submissions, err := s.submissions.ListByQuizID(ctx, quiz.QuizID)
	if err != nil {
		logger.Log.Errorw("failed to list submissions", "quiz_id", quizID, "error", err)
		return nil, err
	}
	return submissions, nil
}

// Submit scores answers against the quiz and records the attempt. It returns
// the stored submission and the number of correct answers.
func (s *QuizService) Submit(ctx context.Context, ownerID, quizID uuid.UUID, answers []int) (*models.SubmissionDB, int, error) {
	quiz, err := s.Get(ctx, ownerID, quizID)
	if err != nil {
		return nil, 0, err
	}

	if len(answers) != len(quiz.Questions) {
		return nil, 0, ErrAnswerCountMismatch
	}

	correct := Score(quiz.Questions, answers)

	submission := &models.SubmissionDB{
		SubmissionID: uuid.New(),
		QuizID:       quiz.QuizID,
		UserID:       ownerID,
		Answers:      answers,
		Score:        float64(correct) / float64(len(quiz.Questions)) * 100,
		SubmittedAt:  time.Now().UTC(),
	}

	if err := s.submissions.Save(ctx, submission); err != nil {
		logger.Log.Errorw("failed to save submission", "quiz_id", quizID, "error", err)
		return nil, 0, err
	}

	s.publisher.Publish(ctx, ownerID, submission.SubmissionID, models.OperationQuizSubmitted)

	return submission, correct, nil
}

// Score counts the answers matching the correct option of each question.
func Score(questions []models.Question, answers []int) int {
	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	return correct
}
