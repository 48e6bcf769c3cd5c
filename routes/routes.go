package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/btdosparca/league-system/handlers"
	"github.com/btdosparca/league-system/middleware"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Player     *handlers.PlayerHandler
	Match      *handlers.MatchHandler
	Ranking    *handlers.RankingHandler
	Import     *handlers.ImportHandler
	Suggestion *handlers.SuggestionHandler
	Dashboard  *handlers.DashboardHandler
	WebSocket  *handlers.WebSocketHandler
}

// SetupRoutes wires the HTTP surface. Reads are public, mutations
// require a valid token.
func SetupRoutes(h Handlers, jwtSecret string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticated := middleware.Authenticate(jwtSecret)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
	})

	r.Route("/players", func(r chi.Router) {
		r.Get("/", h.Player.List)
		r.Get("/{playerID}", h.Player.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/", h.Player.Create)
			r.Put("/{playerID}", h.Player.Update)
			r.Delete("/{playerID}", h.Player.Delete)
			r.Post("/{playerID}/avatar", h.Player.UploadAvatar)
		})
	})

	r.Route("/matches", func(r chi.Router) {
		r.Get("/", h.Match.List)
		r.Get("/{matchID}", h.Match.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/", h.Match.RecordDay)
			r.Delete("/{matchID}", h.Match.Delete)
		})
	})

	r.Route("/rankings", func(r chi.Router) {
		r.Get("/individual", h.Ranking.Individual)
		r.Get("/doubles", h.Ranking.Doubles)
		r.Get("/players/{playerID}", h.Ranking.PlayerStats)
	})

	r.With(authenticated).Post("/import/history", h.Import.ImportHistory)
	r.With(authenticated).Post("/suggestions/teams", h.Suggestion.SuggestTeams)

	r.Get("/dashboard", h.Dashboard.GetStats)
	r.Get("/ws/{collection}", h.WebSocket.Subscribe)

	return r
}
