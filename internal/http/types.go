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

type Server struct {
	Store          bracket.BracketStore
	Standings      *standings.Service
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
