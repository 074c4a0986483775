package http

import (
	"net/http"

	"playbracket/internal/bracket"
	"playbracket/internal/config"
	"playbracket/internal/metrics"
	"playbracket/internal/notifier"
	"playbracket/internal/pubsub"
	"playbracket/internal/standings"
)

func NewServer(store bracket.BracketStore, standingsSvc *standings.Service, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Standings:      standingsSvc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.PlayersHandler(), paramsMiddleware))
	s.Router.Handle("/players/delete", Chain(s.DeletePlayerHandler(), paramsMiddleware))
	s.Router.Handle("/players/sports", Chain(s.PlayerSportsHandler(), paramsMiddleware))
	s.Router.Handle("/sports", Chain(s.SportsHandler(), paramsMiddleware))
	s.Router.Handle("/sports/add-player", Chain(s.AddPlayerToSportHandler(), paramsMiddleware))
	s.Router.Handle("/sports/players", Chain(s.SportPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/leagues", Chain(s.LeaguesHandler(), paramsMiddleware))
	s.Router.Handle("/leagues/delete", Chain(s.DeleteLeagueHandler(), paramsMiddleware))
	s.Router.Handle("/leagues/players", Chain(s.LeaguePlayersHandler(), paramsMiddleware))
	s.Router.Handle("/leagues/add-admin", Chain(s.AddLeagueAdminHandler(), paramsMiddleware))
	s.Router.Handle("/events", Chain(s.EventsHandler(), paramsMiddleware))
	s.Router.Handle("/events/delete", Chain(s.DeleteEventHandler(), paramsMiddleware))
	s.Router.Handle("/events/ranking", Chain(s.EventRankingHandler(), paramsMiddleware))
	s.Router.Handle("/events/notify-ranking", Chain(s.NotifyRankingHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.MatchesHandler(), paramsMiddleware))
	s.Router.Handle("/matches/delete", Chain(s.DeleteMatchHandler(), paramsMiddleware))
	s.Router.Handle("/stats/player", Chain(s.PlayerStatsHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
