package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/rogerwa11/portfolio/internal/config"
	"github.com/rogerwa11/portfolio/internal/content"
	"github.com/rogerwa11/portfolio/internal/kv"
	"github.com/rogerwa11/portfolio/internal/portfolio"
	"github.com/rogerwa11/portfolio/internal/session"
	"github.com/rogerwa11/portfolio/internal/web"
)

var (
	portFlag  string
	storeFlag string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio HTTP server",
	RunE:  runServe,
}

func init() {
	addServeFlags(serveCmd)
}

func addServeFlags(c *cobra.Command) {
	c.Flags().StringVarP(&portFlag, "port", "p", "", "listen port (overrides PORT)")
	c.Flags().StringVar(&storeFlag, "store", "", "theme store backend: memory, sqlite or redis (overrides STORE_BACKEND)")
}

// loadConfig reads env config and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if portFlag != "" {
		cfg.Server.Port = portFlag
	}
	if storeFlag != "" {
		cfg.Store.Backend = storeFlag
	}
	if contentPath != "" {
		cfg.App.ContentPath = contentPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	c, err := content.Load(cfg.App.ContentPath)
	if err != nil {
		return err
	}

	store, err := kv.Open(context.Background(), kv.Options{
		Backend:       cfg.Store.Backend,
		SQLitePath:    cfg.Store.SQLitePath,
		RedisAddr:     cfg.Store.RedisAddr,
		RedisPassword: cfg.Store.RedisPassword,
		RedisDB:       cfg.Store.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("open theme store: %w", err)
	}
	defer store.Close()

	srv := web.NewServer(web.Options{
		Content:       c,
		Store:         store,
		Registry:      session.NewRegistry(time.Duration(cfg.Session.TTLHours)*time.Hour, session.DefaultCleanupInterval),
		Acknowledger:  portfolio.LogAcknowledger{},
		StaticDir:     cfg.App.StaticDir,
		CORSOrigins:   cfg.Server.CORSOrigins,
		SecureCookies: cfg.Session.Secure,
		ServiceName:   "portfolio",
		Version:       version,
	})

	log.Printf("Serving %d projects with %s theme store on :%s", c.Catalog().Len(), cfg.Store.Backend, cfg.Server.Port)
	if err := srv.Engine().Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}
