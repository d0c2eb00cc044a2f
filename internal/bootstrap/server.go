package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	app "github.com/mohammadpnp/prospect-import/internal/application/prospect"
	"github.com/mohammadpnp/prospect-import/internal/config"
	"github.com/mohammadpnp/prospect-import/internal/infrastructure/repository"
	httpecho "github.com/mohammadpnp/prospect-import/internal/interfaces/http/echo"
	"gorm.io/gorm"
)

func NewHTTPServer(db *gorm.DB, pool *pgxpool.Pool, cfg config.Config) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit(cfg.BodyLimit))

	fileRepo := repository.NewProspectFileRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	prospectRepo := repository.NewProspectRepository(pool)

	upload := app.NewUploadProspectsFile(fileRepo, app.UploadLimits{
		MaxBytes: cfg.MaxUploadBytes,
		MaxRows:  cfg.MaxUploadRows,
	})
	runImport := app.NewImportProspects(fileRepo, prospectRepo, progressRepo, app.ImportConfig{
		Workers: cfg.ImportWorkers,
		Timeout: cfg.ImportTimeout,
	})
	getProgress := app.NewGetImportProgress(fileRepo, progressRepo)
	listProspects := app.NewListProspects(prospectRepo)

	fileHandler := httpecho.NewFileHandler(upload, runImport, getProgress)
	prospectHandler := httpecho.NewProspectHandler(listProspects)

	httpecho.RegisterRoutes(server, fileHandler, prospectHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
