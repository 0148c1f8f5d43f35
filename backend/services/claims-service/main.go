package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ya-m-i/agri-fabric/backend/pkg/common"
	"github.com/Ya-m-i/agri-fabric/backend/pkg/fabricclient"
	"github.com/Ya-m-i/agri-fabric/backend/services/claims-service/store"
)

func main() {
	cfg := common.LoadConfig()

	// Per-organization connection failures are non-fatal: those
	// organizations are served from the in-memory store instead.
	registry := fabricclient.ConnectAll(cfg)

	svc := NewService(cfg.Orgs, registry, store.New())

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: svc.Routes(),
	}

	go func() {
		log.Printf("Claims service running on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	registry.CloseAll()
}
