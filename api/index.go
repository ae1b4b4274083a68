package handler

import (
	"net/http"
	"sync"

	"playcourt/config"
	"playcourt/di"
	"playcourt/shared/logger"
	"playcourt/shared/timezone"
	transport "playcourt/transport/http"
	"playcourt/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	server  *transport.HTTP
	initErr error
	once    sync.Once
)

func initialize() {
	logger.InitLogger()

	cfg := config.Get()
	if initErr = cfg.Validate(); initErr != nil {
		return
	}

	logger.UseJSONOutput(cfg)
	logger.SetLogLevel(cfg)
	timezone.Init(cfg.App.Timezone)

	server, initErr = di.InitializeService()
}

// Handler is the serverless entry point. The service graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(initialize)

	if initErr != nil {
		log.Error().Err(initErr).Msg("failed to initialize service")
		response.WithError(w, initErr)

		return
	}

	server.ServeHTTP(w, r)
}
