package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/perdash/internal/api/controller"
	"github.com/ougirez/perdash/internal/pkg/logger"
	"github.com/ougirez/perdash/internal/pkg/metrics"
	"github.com/ougirez/perdash/internal/pkg/store"
	"github.com/ougirez/perdash/internal/service/pipeline"
)

type APIService struct {
	router          *echo.Echo
	pipelineService *pipeline.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(st store.Store, pipelineService *pipeline.Service, m *metrics.Metrics, allowOrigins []string) (*APIService, error) {
	svc := &APIService{router: echo.New(), pipelineService: pipelineService}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.INFO)
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = jsonSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{echo.GET, echo.POST},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	cntrl := controller.NewController(st, pipelineService)

	svc.router.GET("/metrics", echo.WrapHandler(m.Handler()))

	api := svc.router.Group("/api/v1")

	datasets := api.Group("/datasets")
	datasets.GET("", cntrl.ListDatasets)
	datasets.GET("/:name", cntrl.GetDataset)
	datasets.POST("/refresh", cntrl.RefreshDatasets, svc.AdminMiddleware)

	countries := api.Group("/countries")
	countries.GET("/:name/history", cntrl.GetCountryHistory)

	return svc, nil
}
