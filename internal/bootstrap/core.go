package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/gofiber/fiber/v3"
	fiberrecover "github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/fx"

	"github.com/parsewell/excel-gateway/internal/config"
)

func coreOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.MustLoad,
			newLogger,
			newFiberApp,
		),
		fx.Invoke(
			registerServer,
		),
	)
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func newFiberApp() *fiber.App {
	mainApp := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	mainApp.Use(fiberrecover.New())

	mainApp.Get("/healthz", func(fctx fiber.Ctx) error {
		return fctx.SendString("ok")
	})

	return mainApp
}

// errorHandler turns unhandled errors into {"error": ...} bodies. Anything
// without an explicit status code is a 500.
func errorHandler(fctx fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	return fctx.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func registerServer(lc fx.Lifecycle, mainApp *fiber.App, cfg *config.Config, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := mainApp.Listen(cfg.Server.Addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
					log.Error("http server stopped", "error", err)
				}
			}()
			log.Info("http server started", "addr", cfg.Server.Addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return mainApp.ShutdownWithContext(ctx)
		},
	})
}
