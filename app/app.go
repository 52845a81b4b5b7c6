package app

import (
	"database/sql"

	"github.com/go-chi/jwtauth"
	"github.com/thomashuynhqn/Survey-API/config"
)

type App struct {
	*sql.DB
	config.Config
	TokenAuth *jwtauth.JWTAuth
}

func New(db *sql.DB, cfg config.Config) App {
	return App{
		DB:        db,
		Config:    cfg,
		TokenAuth: jwtauth.New("HS256", []byte(cfg.TokenSecret), nil),
	}
}
