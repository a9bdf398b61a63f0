package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/skillsync/backend/internal/api/handler"
	"github.com/skillsync/backend/internal/api/middleware"
	"github.com/skillsync/backend/internal/chat"
	"github.com/skillsync/backend/internal/config"
	"github.com/skillsync/backend/internal/repository/postgres"
	"github.com/skillsync/backend/internal/repository/redis"
	"github.com/skillsync/backend/internal/security"
	"github.com/skillsync/backend/internal/service"
)

// NewRouter wires repositories, services and handlers into the HTTP router
func NewRouter(cfg *config.Config, db *postgres.DB, redisClient *redis.Client) http.Handler {
	validate := validator.New()
	jwtManager := security.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)

	// repositories
	userRepo := postgres.NewUserRepository(db)
	skillRepo := postgres.NewSkillRepository(db)
	oppRepo := postgres.NewOpportunityRepository(db)
	mentorshipRepo := postgres.NewMentorshipRepository(db)
	userSkillRepo := postgres.NewUserSkillRepository(db)
	oppSkillRepo := postgres.NewOpportunitySkillRepository(db)
	messageRepo := postgres.NewChatMessageRepository(db)

	matchCache := redis.NewMatchCache(redisClient, cfg.Match.CacheTTL)
	rateLimiter := redis.NewRateLimiter(redisClient, cfg.Security.RateLimit.RequestsPerMinute, cfg.Security.RateLimit.Burst)

	// services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	skillService := service.NewSkillService(skillRepo)
	oppService := service.NewOpportunityService(oppRepo, userRepo)
	mentorshipService := service.NewMentorshipService(mentorshipRepo, userRepo)
	assignmentService := service.NewAssignmentService(userRepo, skillRepo, oppRepo, userSkillRepo, oppSkillRepo, matchCache)
	matchService := service.NewMatchService(userRepo, skillRepo, userSkillRepo, matchCache)

	// chat core, shared by every websocket session
	registry := chat.NewRegistry()
	chatRouter := chat.NewRouter(registry, messageRepo)

	// handlers
	authHandler := handler.NewAuthHandler(authService, validate)
	userHandler := handler.NewUserHandler(userService, assignmentService, validate)
	skillHandler := handler.NewSkillHandler(skillService, validate)
	oppHandler := handler.NewOpportunityHandler(oppService, assignmentService, validate)
	mentorshipHandler := handler.NewMentorshipHandler(mentorshipService, validate)
	matchHandler := handler.NewMatchHandler(matchService)
	chatHandler := handler.NewChatHandler(registry, chatRouter, cfg.Chat)
	healthHandler := handler.NewHealthHandler(db)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		r.Group(func(r chi.Router) {
			// RateLimit follows Auth so requests are keyed by username
			// rather than remote address.
			r.Use(middleware.Auth(jwtManager))
			r.Use(middleware.RateLimit(rateLimiter))

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/{username}", userHandler.Get)
				r.Patch("/{username}", userHandler.Update)
				r.Delete("/{username}", userHandler.Delete)

				r.Post("/{username}/skills", userHandler.AssignSkills)
				r.Get("/{username}/skills", userHandler.ListSkills)
				r.Delete("/{username}/skills/{skill}", userHandler.RemoveSkill)
			})

			r.Route("/skills", func(r chi.Router) {
				r.Post("/", skillHandler.Create)
				r.Get("/", skillHandler.List)
				r.Get("/{name}", skillHandler.Get)
				r.Patch("/{name}", skillHandler.Update)
				r.Delete("/{name}", skillHandler.Delete)
			})

			r.Route("/opportunities", func(r chi.Router) {
				r.Post("/", oppHandler.Create)
				r.Get("/", oppHandler.List)
				r.Get("/{id}", oppHandler.Get)
				r.Patch("/{id}", oppHandler.Update)
				r.Delete("/{id}", oppHandler.Delete)

				r.Post("/{id}/skills", oppHandler.AssignSkills)
				r.Get("/{id}/skills", oppHandler.ListSkills)
				r.Delete("/{id}/skills/{skill}", oppHandler.RemoveSkill)
			})

			r.Route("/mentorships", func(r chi.Router) {
				r.Post("/", mentorshipHandler.Create)
				r.Get("/", mentorshipHandler.List)
				r.Get("/{id}", mentorshipHandler.Get)
				r.Delete("/{id}", mentorshipHandler.Delete)
			})

			r.Get("/matches/{username}", matchHandler.Match)
			r.Get("/chat/online", chatHandler.Online)
		})
	})

	// Browser websocket clients cannot set an Authorization header, so the
	// socket endpoint sits outside the auth group and trusts the path param.
	r.Get("/ws/{username}", chatHandler.Serve)

	return r
}
