package main

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/spf13/cobra"

	apihttp "github.com/artem13815/resumeparser/api/http"
	"github.com/artem13815/resumeparser/api/http/handlers"
	"github.com/artem13815/resumeparser/api/http/views"
	_ "github.com/artem13815/resumeparser/docs"
	"github.com/artem13815/resumeparser/pkg/config"
	"github.com/artem13815/resumeparser/pkg/health"
	healthpg "github.com/artem13815/resumeparser/pkg/health/checkers"
	"github.com/artem13815/resumeparser/pkg/logger"
)

// maxFilesPerRequest bounds the request body together with MAX_UPLOAD_MB.
const maxFilesPerRequest = 20

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI and JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := config.Load()
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}
		log := logger.New(serviceName, cfg.Environment, cfg.LogLevel)

		a, err := newApp(ctx, cfg, log, true)
		if err != nil {
			return err
		}
		defer a.Close()

		app := fiber.New(fiber.Config{
			AppName:               serviceName,
			Views:                 html.NewFileSystem(http.FS(views.FS), ".html"),
			BodyLimit:             int(cfg.MaxUploadBytes()) * maxFilesPerRequest,
			DisableStartupMessage: true,
		})
		app.Use(recover.New())
		app.Use(apihttp.RequestLogger(log))

		// Health service: compose checkers
		var checkers []health.Checker
		if a.pool != nil {
			checkers = append(checkers, healthpg.NewPostgresChecker(a.pool))
		}

		apihttp.Register(app, apihttp.Handlers{
			Health:  handlers.NewHealthHandler(health.NewService(checkers...)),
			Parse:   handlers.NewParseHandler(a.svc, log, cfg.MaxUploadBytes()),
			Batches: handlers.NewBatchesHandler(a.repo),
			Web:     handlers.NewWebHandler(a.svc, log, cfg.MaxUploadBytes()),
		})

		go func() {
			<-ctx.Done()
			if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
				log.Error().Err(err).Msg("shutdown")
			}
		}()

		log.Info().Str("port", cfg.Port).Msg("HTTP server listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("server stopped")
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Listen port (default $PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}
