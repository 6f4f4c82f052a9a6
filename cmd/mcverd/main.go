package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nyaadanbou/minecraft-versions/pkg/api"
	"github.com/Nyaadanbou/minecraft-versions/pkg/config"
)

func main() {
	cfg, err := config.Load(os.Getenv(config.EnvConfig))
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.Serve(ctx, cfg); err != nil {
		stop()
		log.Fatal(err)
	}
}
