package main

import (
	"os"

	"github.com/nourhanadel/pharma-admin-BE/api"
	"github.com/nourhanadel/pharma-admin-BE/internal/event"
	"github.com/nourhanadel/pharma-admin-BE/internal/gateway"
	"github.com/nourhanadel/pharma-admin-BE/internal/util"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"github.com/rs/zerolog/log"
)

//	@title			Pharmacy Admin Console API
//	@version		1.0.0
//	@description	Backend for the pharmacy admin console: notification feed, order editing, resource panels.

//	@host		localhost:8080
//	@BasePath	/v1
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	log.Info().Msg("configurations loaded successfully ✅")

	// Create the remote API client
	restyClient := resty.New()
	restyClient.SetTimeout(config.RequestTimeout)
	defer restyClient.Close()

	gw := gateway.New(restyClient, config.RemoteAPIBaseURL)
	log.Info().Str("base_url", config.RemoteAPIBaseURL).Msg("remote API gateway created successfully ✅")

	// Event stream for the badge, notices and order state
	eventSender := event.NewSSEServer()
	go eventSender.Run()

	runHTTPServer(&config, gw, eventSender)
}

func runHTTPServer(config *util.Config, gw *gateway.Gateway, eventSender event.EventSender) {
	server, err := api.NewServer(gw, config, eventSender)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	err = server.Start(config.HTTPServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
