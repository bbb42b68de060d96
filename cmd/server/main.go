package main

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"quizdesk/internal/config"
	"quizdesk/internal/container"
	"quizdesk/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:    c.UserContainer.Handler,
		ContentHandler: c.ContentContainer.Handler,
		ResultHandler:  c.ResultContainer.Handler,
		WebHandler:     c.WebHandler,
	})

	addr := config.Env("HTTP_ADDR", ":8080")
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logrus.WithField("addr", addr).Info("starting quizdesk server")
	if err := server.ListenAndServe(); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
