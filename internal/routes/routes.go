package routes

import (
	"github.com/AnshRaj112/neurosphere-backend/internal/config"
	"github.com/AnshRaj112/neurosphere-backend/internal/handlers"
	"github.com/AnshRaj112/neurosphere-backend/internal/middleware"
	"github.com/AnshRaj112/neurosphere-backend/internal/notify"
	"github.com/AnshRaj112/neurosphere-backend/internal/services"
	"github.com/AnshRaj112/neurosphere-backend/pkg/clientip"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Deps is everything the router needs from main.
type Deps struct {
	Config   *config.Config
	Services *services.Services
	// Hub serves websocket subscribers; Notifier is where handlers publish
	// and may be a Redis bridge in front of Hub.
	Hub      *notify.Hub
	Notifier notify.Notifier
	Storage  string
	ClientIP clientip.Func
	Logger   *zap.Logger
	// Intn overrides the prompt random source.
	Intn func(int) int
}

// NewRouter builds the middleware chain and registers every route.
func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(d.Logger, d.ClientIP))
	r.Use(middleware.CORS(d.Config.AllowedOrigins))

	// Production: headers, host check, per-IP and demo-login limits.
	// Elsewhere only demo-login creation is limited.
	if d.Config.IsProduction() {
		for _, mw := range middleware.ProductionSecurity(d.Config.AllowedHost, d.ClientIP) {
			r.Use(mw)
		}
	} else {
		r.Use(middleware.SecurityHeaders)
		r.Use(middleware.DemoLoginRateLimit(d.ClientIP))
	}

	SetupRoutes(r, d)
	return r
}

func SetupRoutes(r chi.Router, d Deps) {
	log := d.Logger.Named("http")
	svc := d.Services

	r.Get("/health", handlers.Health(d.Storage))

	// Demo session
	r.Post("/api/session/demo", handlers.StartDemo(svc.Sessions, log))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(svc.Sessions, log))

		r.Get("/api/session", handlers.GetSession(svc.Sessions, log))
		r.Delete("/api/session", handlers.EndSession(svc.Sessions, log))

		// Journal
		r.Get("/api/journal/entries", handlers.GetEntries(svc.Journal, log))
		r.Post("/api/journal/entries", handlers.CreateEntry(svc.Journal, log))
		r.Delete("/api/journal/entries/{id}", handlers.DeleteEntry(svc.Journal, log))

		// Editor
		r.Post("/api/editor/mount", handlers.MountEditor(svc.Editors, log))
		r.Get("/api/editor", handlers.GetEditor(svc.Editors, log))
		r.Delete("/api/editor", handlers.UnmountEditor(svc.Editors))
		r.Put("/api/editor/state", handlers.UpdateEditor(svc.Editors, log))
		r.Post("/api/editor/tags", handlers.AddEditorTag(svc.Editors, log))
		r.Delete("/api/editor/tags/{tag}", handlers.RemoveEditorTag(svc.Editors, log))
		r.Post("/api/editor/insight", handlers.RequestInsight(svc.Editors, log))
		r.Get("/api/editor/insight", handlers.GetInsight(svc.Editors, log))
		r.Delete("/api/editor/insight", handlers.HideInsight(svc.Editors, log))

		// Mood
		r.Get("/api/mood/checks", handlers.ListMoodChecks(svc.Mood, log))
		r.Post("/api/mood/checks", handlers.CreateMoodCheck(svc.Mood, log))
		r.Post("/api/mood/quick", handlers.QuickMood(svc.Mood, log))
		r.Get("/api/mood/prefill", handlers.MoodPrefill(svc.Mood, log))

		// Prompts
		r.Get("/api/prompts/random", handlers.RandomPrompt(d.Notifier, d.Intn))
		r.Post("/api/prompts/select", handlers.SelectPrompt(svc.Handoff, d.Notifier, log))

		// Settings
		r.Get("/api/settings/appearance", handlers.GetAppearance(svc.Settings, log))
		r.Put("/api/settings/appearance", handlers.SetAppearance(svc.Settings, log))

		// Notification stream
		r.Get("/ws/events", handlers.EventsWebSocket(d.Hub, d.Logger))
	})
}
