package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/jarvis-assistant/jarvisd/internal/assistant"
	"github.com/jarvis-assistant/jarvisd/internal/memory"
	"github.com/jarvis-assistant/jarvisd/internal/store"
)

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(
	db *store.DB,
	kv *store.KV,
	mem *memory.Service,
	asst *assistant.Service,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	healthH := NewHealthHandler(db, kv)
	chatH := NewChatHandler(mem, asst)
	stateH := NewStateHandler(mem, asst)
	storageH := NewStorageHandler(kv, mem)

	r.Get("/health", healthH.Health)

	r.Post("/chat", chatH.Turn)
	r.Route("/chats", func(r chi.Router) {
		r.Get("/", chatH.List)
		r.Post("/", chatH.Create)
		r.Get("/active", chatH.Active)
		r.Post("/{id}/activate", chatH.Activate)
		r.Delete("/{id}", chatH.Delete)
	})

	r.Get("/relationship", stateH.Relationship)
	r.Get("/streak", stateH.Streak)
	r.Get("/profile", stateH.Profile)
	r.Patch("/profile", stateH.UpdateProfile)
	r.Get("/preferences", stateH.Preferences)
	r.Patch("/preferences", stateH.UpdatePreferences)
	r.Post("/tools/{id}/click", stateH.ToolClick)
	r.Patch("/tools/{id}", stateH.UpdateToolPref)
	r.Get("/greeting", stateH.Greeting)
	r.Get("/suggestion", stateH.Suggestion)

	r.Route("/storage", func(r chi.Router) {
		r.Get("/status", storageH.Status)
		r.Post("/clean", storageH.Clean)
	})
	r.Get("/export", storageH.Export)
	r.Delete("/data", storageH.Wipe)

	return r
}
