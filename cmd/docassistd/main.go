package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iqm-labs/docassist/config"
	"github.com/iqm-labs/docassist/internal/assistant"
	"github.com/iqm-labs/docassist/internal/catalog"
	"github.com/iqm-labs/docassist/internal/docsearch"
	"github.com/iqm-labs/docassist/internal/llm"
	"github.com/iqm-labs/docassist/internal/server"
)

func main() {
	root := &cobra.Command{Use: "docassistd"}
	root.AddCommand(serveCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCMD() *cobra.Command {
	var cfgPath string
	var addr string

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the documentation assistant HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)
			if addr != "" {
				cfg.Server.Address = addr
			}

			logger := log.New(log.Writer(), "[DOCASSIST] ", log.LstdFlags)
			cfg.Print(logger)

			// Degraded mode is fine: chat requests will carry the failure
			// in their payload until the backend comes up.
			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := llm.Ping(pingCtx, cfg.LLM.ServerURL); err != nil {
				logger.Printf("llama-server unreachable, starting in fallback mode: %v", err)
			}
			cancel()

			cat := catalog.New()
			logger.Printf("endpoint catalog loaded: %d endpoints, %d categories", cat.Len(), len(cat.Categories()))

			search := docsearch.New(
				cfg.Search.AppID, cfg.Search.APIKey, cfg.Search.IndexName,
				docsearch.WithTimeout(cfg.Search.Timeout),
			)

			gen := llm.NewClient(cfg.LLM.ServerURL, cfg.LLM.Model, cfg.LLM.Timeout)
			asst := assistant.New(cat, search, gen, cfg.LLM.Model, llm.GenParams{
				MaxTokens:   cfg.LLM.MaxTokens,
				Temperature: cfg.LLM.Temperature,
				TopP:        cfg.LLM.TopP,
			})

			return server.Run(cfg, asst, search)
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	serve.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	return serve
}
