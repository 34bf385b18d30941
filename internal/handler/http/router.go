package http

import (
	"log/slog"
	"os"

	"github.com/facilops/facil-backend-go/internal/handler/http/middleware"
	"github.com/facilops/facil-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	postHandler PostHandler,
	rosterHandler RosterHandler,
	staffHandler StaffHandler,
	webhookHandler WebhookHandler,
	streamHandler StreamHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "facil-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// HR platform callbacks authenticate with their own credentials,
		// not a user token.
		r.Route("/webhooks", func(r chi.Router) {
			r.Post("/payroll", webhookHandler.PayrollWebhook)
			r.Post("/timeclock", webhookHandler.TimeclockWebhook)
		})

		// The SSE stream authenticates with a short-lived query token.
		r.Get("/posts/{id}/occupancy/stream", streamHandler.StreamOccupancy)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/stream-token", streamHandler.GetStreamToken)

			r.Route("/posts", func(r chi.Router) {
				r.Get("/", postHandler.List)
				r.Post("/", postHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", postHandler.Get)
					r.Put("/", postHandler.Update)
					r.Get("/occupancy", postHandler.GetOccupancy)

					r.Route("/schedule", func(r chi.Router) {
						r.Post("/", rosterHandler.GenerateSchedule)
						r.Get("/", rosterHandler.GetSchedule)
						r.Delete("/", rosterHandler.ClearSchedule)
					})

					r.Post("/presence", rosterHandler.ConfirmPresence)
					r.Post("/vacancy", rosterHandler.MarkVacant)
					r.Get("/calendar", rosterHandler.GetCalendar)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Delete("/", postHandler.Delete)
					})
				})
			})

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", staffHandler.List)
				r.Post("/", staffHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", staffHandler.Get)
					r.Put("/", staffHandler.Update)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Delete("/", staffHandler.Delete)
					})
				})
			})
		})
	})
	return r
}
