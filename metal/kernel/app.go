package kernel

import (
	"fmt"
	baseHttp "net/http"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/metal/env"
	"github.com/ImRehmankhan/nextcodehub/pkg/auth"
	"github.com/ImRehmankhan/nextcodehub/pkg/llogs"
	"github.com/ImRehmankhan/nextcodehub/pkg/middleware"
	"github.com/ImRehmankhan/nextcodehub/pkg/portal"
)

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
	backups   *BackupRunner
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	sessions, err := auth.MakeSessionHandler(
		[]byte(env.App.MasterKey),
		env.App.GetSessionTTL(),
	)

	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create a session handler: %w", err)
	}

	db := MakeDbConnection(env)

	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		db:        db,
		backups:   MakeBackups(env),
	}

	router := Router{
		Env: env,
		Db:  db,
		Mux: baseHttp.NewServeMux(),
		Pipeline: middleware.Pipeline{
			Env:      env,
			Sessions: sessions,
		},
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	router.Auth()
	router.Posts()
	router.Categories()
	router.Tags()
	router.Comments()
	router.Likes()
	router.Blog()

	a.backups.Start()
}

func (a *App) SetRouter(router Router) {
	a.router = &router
}

func (a *App) GetMux() *baseHttp.ServeMux {
	return a.router.Mux
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetDB() *database.Connection {
	return a.db
}

func (a *App) GetSentry() *portal.Sentry {
	return a.sentry
}

func (a *App) CloseDB() {
	if a.db != nil {
		a.db.Close()
	}
}

func (a *App) CloseLogs() {
	if a.logs != nil {
		a.logs.Close()
	}
}

func (a *App) StopBackups() {
	if a.backups != nil {
		a.backups.Stop()
	}
}
