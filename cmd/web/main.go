package main

import (
	"context"
	"flag"
	"log"

	"github.com/ozyalhan/ozyblog/internal/server"
	"github.com/ozyalhan/ozyblog/internal/server/config"
)

func main() {

	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
