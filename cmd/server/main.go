// Posts API server. Serves /api/posts backed by either the in-memory store
// (default) or Postgres (-store=postgres -dsn=...).
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mathildeew/posts-api/internal/api"
	"github.com/mathildeew/posts-api/internal/db"
	"github.com/mathildeew/posts-api/internal/store"
)

func main() {
	var addr string
	var backend string
	var dsn string
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&backend, "store", "memory", "store backend: memory | postgres")
	flag.StringVar(&dsn, "dsn", "", "postgres dsn (required for -store=postgres)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var st store.Store
	switch backend {
	case "memory":
		st = store.NewMemoryStore()
	case "postgres":
		if dsn == "" {
			log.Fatalf("-dsn is required for -store=postgres")
		}
		pool, err := db.NewPool(ctx, dsn)
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		pg, err := store.NewPostgresStore(ctx, pool)
		if err != nil {
			log.Fatalf("init postgres store: %v", err)
		}
		st = pg
	default:
		log.Fatalf("unknown store: %s", backend)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: api.NewRouter(st),
	}

	go func() {
		log.Printf("listening on %s (store=%s)", addr, backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
