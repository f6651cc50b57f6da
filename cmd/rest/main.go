package main

import (
	"context"
	"log"

	"github.com/raflyryhnsyh/sea-catering/internal/bootstrap"
	"github.com/raflyryhnsyh/sea-catering/internal/config"
	"github.com/raflyryhnsyh/sea-catering/internal/server"
	"github.com/raflyryhnsyh/sea-catering/internal/tracer"
	"github.com/raflyryhnsyh/sea-catering/pkg/database"
)

func main() {
	cfg := config.Load()

	shutdownTracer := tracer.InitTracer(cfg.Otel)
	defer shutdownTracer(context.Background())

	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	if err := container.StartWorkers(context.Background()); err != nil {
		log.Panicf("Unable to start notification worker: %v", err)
	}

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
