// Package router assembles repositories, services and handlers into the
// HTTP API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/studydesk/internal/handlers"
	"github.com/sbilibin2017/studydesk/internal/jwt"
	"github.com/sbilibin2017/studydesk/internal/logger"
	"github.com/sbilibin2017/studydesk/internal/middlewares"
	"github.com/sbilibin2017/studydesk/internal/repositories"
	"github.com/sbilibin2017/studydesk/internal/services"

	_ "github.com/sbilibin2017/studydesk/docs"
)

// Deps are the infrastructure collaborators the API is built from.
type Deps struct {
	DB        *sqlx.DB
	Tokens    *jwt.JWT
	Storage   services.ArtifactStorage
	Provider  services.Provider
	Cache     services.GenerationCache // nil disables caching
	Publisher services.Publisher       // nil disables events
}

// Options tune the HTTP surface.
type Options struct {
	MaxUploadSize int64
	CORSOrigins   []string
	SwaggerURL    string
}

// New returns the root handler serving /api and /swagger.
func New(deps Deps, opts Options) http.Handler {
	publisher := deps.Publisher
	if publisher == nil {
		publisher = services.NewEventPublisher(nil)
	}

	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(deps.DB)
	userWriteRepo := repositories.NewUserWriteRepository(deps.DB, txGetter)
	materialReadRepo := repositories.NewMaterialReadRepository(deps.DB)
	materialWriteRepo := repositories.NewMaterialWriteRepository(deps.DB, txGetter)
	quizRepo := repositories.NewQuizRepository(deps.DB, txGetter)
	submissionRepo := repositories.NewSubmissionRepository(deps.DB, txGetter)
	progressRepo := repositories.NewProgressRepository(deps.DB, txGetter)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, deps.Tokens)
	materialService := services.NewMaterialService(materialReadRepo, materialWriteRepo, deps.Storage, publisher, opts.MaxUploadSize)
	generator := services.NewGenerator(deps.Provider, deps.Cache)
	quizService := services.NewQuizService(materialService, generator, quizRepo, submissionRepo, publisher)
	studyService := services.NewStudyService(materialService, generator)
	progressService := services.NewProgressService(materialReadRepo, progressRepo)
	accountService := services.NewAccountService(materialReadRepo, deps.Storage, userWriteRepo, publisher)

	authMiddleware := middlewares.AuthMiddleware(deps.Tokens, authService)
	txMiddleware := middlewares.TxMiddleware(deps.DB)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.CORSMiddleware(opts.CORSOrigins))

		// Public routes
		r.Get("/health", handlers.NewHealthHandler())
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/auth/refresh", handlers.NewRefreshHandler(deps.Tokens, authService))

			r.Post("/materials/upload", handlers.NewUploadHandler(materialService, opts.MaxUploadSize))
			r.Get("/materials", handlers.NewListMaterialsHandler(materialService))
			r.Get("/materials/{id}", handlers.NewGetMaterialHandler(materialService))
			r.With(txMiddleware).Delete("/materials/{id}", handlers.NewDeleteMaterialHandler(materialService))

			r.Post("/quiz/generate", handlers.NewGenerateQuizHandler(quizService))
			r.Get("/quizzes", handlers.NewListQuizzesHandler(quizService))
			r.Get("/quizzes/{id}", handlers.NewGetQuizHandler(quizService))
			r.Post("/quizzes/{id}/submit", handlers.NewSubmitQuizHandler(quizService))
			r.Get("/quizzes/{id}/submissions", handlers.NewListSubmissionsHandler(quizService))

			r.Post("/summary/generate", handlers.NewSummaryHandler(studyService))
			r.Post("/flashcards/generate", handlers.NewFlashcardsHandler(studyService))
			r.Post("/study-plan/generate", handlers.NewStudyPlanHandler(studyService))
			r.Post("/concepts/explain", handlers.NewExplainConceptHandler(studyService))

			r.Put("/progress/{material_id}", handlers.NewUpdateProgressHandler(progressService))
			r.Get("/progress", handlers.NewListProgressHandler(progressService))

			r.With(txMiddleware).Delete("/account", handlers.NewDeleteAccountHandler(accountService))
		})
	})

	swaggerURL := opts.SwaggerURL
	if swaggerURL == "" {
		swaggerURL = "/swagger/doc.json"
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
