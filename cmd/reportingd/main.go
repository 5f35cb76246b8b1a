package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/lcacollect/reporting-backend/internal/config"
	"github.com/lcacollect/reporting-backend/internal/export/lcabyg"
	"github.com/lcacollect/reporting-backend/internal/infrastructure/providers"
	"github.com/lcacollect/reporting-backend/internal/infrastructure/repository"
	"github.com/lcacollect/reporting-backend/internal/present/rest"
	"github.com/lcacollect/reporting-backend/internal/present/rest/middleware"
	"github.com/lcacollect/reporting-backend/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	db, err := providers.NewDatabase(conf.Server)
	if err != nil {
		panic("failed to connect database")
	}
	if err := providers.MigrateDatabase(db); err != nil {
		panic("failed to migrate database")
	}

	rdb := providers.NewRedis(conf.Server)
	mc := providers.NewMemcache(conf.Server)
	blobs := providers.NewBlobStore(conf.Server)
	router := providers.NewRouterGateway(conf.Service, mc)

	versioningRepo := repository.NewVersioningRepository(db)
	schemaRepo := repository.NewSchemaRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	tagRepo := repository.NewTagRepository(db)
	typeCodeRepo := repository.NewTypeCodeRepository(db)
	sourceRepo := repository.NewSourceRepository(db)
	exportCache := repository.NewExportCache(rdb)

	schemaUC := usecase.NewSchemaUsecase(schemaRepo, templateRepo, versioningRepo)
	templateUC := usecase.NewTemplateUsecase(templateRepo)
	categoryUC := usecase.NewCategoryUsecase(schemaRepo, versioningRepo)
	elementUC := usecase.NewElementUsecase(schemaRepo, versioningRepo)
	taskUC := usecase.NewTaskUsecase(schemaRepo, versioningRepo)
	commitUC := usecase.NewCommitUsecase(versioningRepo, tagRepo)
	typeCodeUC := usecase.NewTypeCodeUsecase(typeCodeRepo)
	sourceUC := usecase.NewSourceUsecase(sourceRepo, blobs)
	exportUC := usecase.NewExportUsecase(versioningRepo, schemaRepo, router, router, exportCache, lcabyg.NewResolvers())

	handler := rest.NewHandler(
		schemaUC,
		templateUC,
		categoryUC,
		elementUC,
		taskUC,
		commitUC,
		typeCodeUC,
		sourceUC,
		exportUC,
	)
	auth := middleware.NewAuthMiddleware()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	if conf.Server.EnableTrace {
		cleanup, err := setupTraceProvider(conf.Server.TraceEndpoint, conf.Service.Name)
		if err != nil {
			slog.Error("failed to set up trace provider", slog.String("error", err.Error()))
		} else {
			defer cleanup()
			e.Use(otelecho.Middleware(conf.Service.Name))
		}
	}
	e.Use(auth.IdentifyIdentity)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, echo.Map{"status": "ok"})
	})
	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}

func setupTraceProvider(endpoint string, serviceName string) (func(), error) {
	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)
	otel.SetTracerProvider(tracerProvider)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error("failed to shut down trace provider", slog.String("error", err.Error()))
		}
	}
	return cleanup, nil
}
