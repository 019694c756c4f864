package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mcheros/storefront/internal/catalog"
	"github.com/mcheros/storefront/internal/config"
	"github.com/mcheros/storefront/internal/httpx"
	kafkax "github.com/mcheros/storefront/internal/kafka"
	"github.com/mcheros/storefront/internal/mongox"
	"github.com/mcheros/storefront/internal/orders"
	"github.com/mcheros/storefront/internal/pages"
	"github.com/mcheros/storefront/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Document store
	client, err := mongox.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.DatabaseName)

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderCreated, 1024)
	prod.Start(ctx)

	// Repos & handlers
	router := httpx.NewRouter()
	oh := &httpx.OrdersHandler{
		Repo:     &orders.Repo{DB: db},
		Producer: prod,
		Cache:    redisx.Cache{R: rdb},
		Service:  cfg.ServiceName,
	}
	oh.Register(router)
	ch := &httpx.CatalogHandler{Repo: &catalog.Repo{DB: db}}
	ch.Register(router)
	ph := &httpx.PagesHandler{Repo: &pages.Repo{DB: db}}
	ph.Register(router)
	dh := &httpx.DiagHandler{Client: client, DB: db}
	dh.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	cancel()          // stop producer loop
	prod.WaitClosed() // flush remaining events
}
