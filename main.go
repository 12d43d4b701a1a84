package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/ankoehn/ai-content-writer/api/router"
	"github.com/ankoehn/ai-content-writer/config"
	"github.com/ankoehn/ai-content-writer/generator"
	"github.com/ankoehn/ai-content-writer/history"
	"github.com/ankoehn/ai-content-writer/llm"
	"github.com/ankoehn/ai-content-writer/logger"
	"github.com/ankoehn/ai-content-writer/search"
	"github.com/ankoehn/ai-content-writer/services"
)

// @title           AI Content Writer API
// @version         1.0
// @description     Generate blog, LinkedIn and X content from a campaign brief and browse the history
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	// Missing required configuration is the only condition that aborts the
	// process; every later failure is per-request.
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	client, err := llm.New(cfg.LLM)
	if err != nil {
		log.Fatal(err)
	}
	store := history.NewStore(cfg.History.File)
	engine := search.NewTavilyEngine(cfg.Tavily)
	gen := generator.New(engine, client, store)
	svc := services.NewContentService(gen, store)

	r := router.New(svc)
	handler := cors.Default().Handler(r)

	logger.Log.Infof("ai-content-writer listening on %s (provider=%s model=%s)",
		cfg.Server.ListenAddr, cfg.LLM.Provider, cfg.LLM.Model)
	if err := http.ListenAndServe(cfg.Server.ListenAddr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
