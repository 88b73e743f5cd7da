package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	_ "github.com/otakudev/anicat/docs"
	"github.com/otakudev/anicat/internal/app"
)

//	@title			Anicat API
//	@version		1.0
//	@description	Anime and character catalog with JWT bearer authentication.

//	@host		localhost:4040
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and a JWT.

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := app.LoadConfig()

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
