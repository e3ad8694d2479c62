package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creatorlitebackend/internal/config"
	"creatorlitebackend/internal/llm"
	"creatorlitebackend/internal/niche"
	transporthttp "creatorlitebackend/internal/transport/http"
	"creatorlitebackend/internal/youtube"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	rates := niche.DefaultRateTable()
	if cfg.RateTablePath != "" {
		rates, err = niche.LoadRateTable(cfg.RateTablePath)
		if err != nil {
			log.Fatalf("load rate table: %v", err)
		}
		log.Printf("rate table loaded from %s", cfg.RateTablePath)
	}

	var provider niche.SearchProvider
	if cfg.YouTubeAPIKey != "" {
		provider = youtube.NewClient(cfg.YouTubeAPIKey)
	} else {
		log.Printf("YOUTUBE_API_KEY not set, reports will carry no videos")
	}

	pipeline, err := niche.NewPipeline(rates, provider)
	if err != nil {
		log.Fatalf("init pipeline: %v", err)
	}

	advisor := niche.AdvisoryGenerator{
		Model:       cfg.OpenAIModel,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
	}
	if cfg.OpenAIAPIKey != "" {
		advisor.Client = llm.NewClient(cfg.OpenAIAPIKey)
		log.Printf("advisory generation enabled with model %s", cfg.OpenAIModel)
	}

	server := transporthttp.NewServer(pipeline, advisor, cfg)

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      withLogging(withCORS(server.Routes())),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Creator Lite API listening on %s", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("signal received: %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

// Middleware: request logging
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)

		if r.Method == http.MethodOptions {
			log.Printf("[CORS preflight] %s %s %s", r.Method, r.URL.Path, duration)
		} else {
			log.Printf("%s %s %s", r.Method, r.URL.Path, duration)
		}
	})
}

// Middleware: allow the frontend to call the API from another origin
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
