package main

import (
	"log/slog"
	baseHttp "net/http"

	_ "github.com/lib/pq"

	"github.com/ImRehmankhan/nextcodehub/metal/kernel"
	"github.com/ImRehmankhan/nextcodehub/pkg/endpoint"
	"github.com/ImRehmankhan/nextcodehub/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic(err)
	}

	if app, err = kernel.MakeApp(secrets, validate); err != nil {
		panic(err)
	}
}

func main() {
	defer app.CloseDB()
	defer app.CloseLogs()
	defer app.StopBackups()

	app.Boot()

	if err := app.GetDB().Ping(); err != nil {
		slog.Warn("database ping failed", "error", err)
	}

	secrets := app.GetEnv()
	addr := secrets.Network.GetHostURL()

	handler := endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
		Mux:          app.GetMux(),
		IsProduction: secrets.App.IsProduction(),
		DevHost:      secrets.App.URL,
		Wrap:         app.GetSentry().Handler.Handle,
	})

	server := &baseHttp.Server{
		Addr:    addr,
		Handler: handler,
	}

	if err := endpoint.RunServer(addr, server); err != nil {
		slog.Error("server terminated", "error", err)
		panic("Error running server: " + err.Error())
	}
}
