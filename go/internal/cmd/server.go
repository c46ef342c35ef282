package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mcdev12/sportsfed/go/internal/api"
)

func setupServer(config *Config, services *Services) *http.Server {
	handler := api.NewHandler(services.Federation)
	router := api.NewRouter(handler, api.RouterConfig{
		CORSOrigins:    config.Server.CORSOrigins,
		RequestTimeout: config.Server.RequestTimeout,
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", config.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
