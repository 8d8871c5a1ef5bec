package main

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmertens/daybrief/internal/brief"
	"github.com/jmertens/daybrief/internal/config"
	"github.com/jmertens/daybrief/internal/feeds"
	"github.com/jmertens/daybrief/internal/health"
	"github.com/jmertens/daybrief/internal/interests"
	"github.com/jmertens/daybrief/internal/logging"
	"github.com/jmertens/daybrief/internal/openai"
	"github.com/jmertens/daybrief/internal/prompt"
	"github.com/jmertens/daybrief/internal/web"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	promptMgr, err := prompt.NewManager(cfg.PromptFile)
	if err != nil {
		log.Fatalf("Failed to load prompt manifest: %v", err)
	}

	store := interests.NewStore(cfg.InterestsFile)
	feedClient := feeds.NewClient(feeds.DefaultCatalog(), cfg.FeedTimeout)
	generator := openai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIMaxTokens, cfg.BriefTimeout, cfg.OpenAIStub)
	briefSvc := brief.NewService(store, feedClient, promptMgr, generator, logger, cfg.FeedItemLimit, cfg.BriefTimeout)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	tmpl := template.Must(template.ParseFS(web.Templates, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		log.Fatalf("Failed to mount static assets: %v", err)
	}
	router.StaticFS("/static", http.FS(staticFS))

	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})
	router.GET("/interests", func(c *gin.Context) {
		c.HTML(http.StatusOK, "interests.html", nil)
	})
	router.GET("/health", gin.WrapF(health.Handler))

	api := router.Group("/api")
	{
		api.GET("/daily-brief", brief.GetDailyBriefHandler(briefSvc))
		api.GET("/interests", interests.GetHandler(store, logger))
		api.POST("/interests", interests.SaveHandler(store, logger))
	}

	srv := &http.Server{
		Addr:        fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// Brief assembly calls OpenAI synchronously, so writes must
		// outlast the generation timeout.
		WriteTimeout: cfg.BriefTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", "addr", srv.Addr, "env", cfg.Env, "stub_mode", cfg.OpenAIStub)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err.Error())
	}

	logger.Info("Server stopped")
}
