package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/perdash/internal/pkg/constants"
	"github.com/ougirez/perdash/internal/pkg/store"
)

// servedDatasets are the derived files exposed by name, without ".json".
var servedDatasets = map[string]string{
	"map-data":                  constants.DatasetMapData,
	"component-descriptions":    constants.DatasetComponentDescriptions,
	"per-assessments-processed": constants.DatasetAssessmentsProcessed,
	"per-dashboard-data":        constants.DatasetDashboard,
	"last-update":               constants.DatasetLastUpdate,
}

func (c *Controller) ListDatasets(ctx echo.Context) error {
	infos, err := c.store.List(ctx.Request().Context(), "")
	if err != nil {
		return err
	}

	type response struct {
		Datasets []store.Info `json:"datasets"`
	}

	return ctx.JSON(http.StatusOK, response{Datasets: infos})
}

func (c *Controller) GetDataset(ctx echo.Context) error {
	name := strings.TrimSuffix(ctx.Param("name"), ".json")
	key, ok := servedDatasets[name]
	if !ok {
		return fmt.Errorf("dataset %q: %w", name, constants.ErrNotFound)
	}

	info, body, err := c.store.Get(ctx.Request().Context(), key)
	if err != nil {
		return err
	}
	defer func() {
		_ = body.Close()
	}()

	if !info.LastModified.IsZero() {
		ctx.Response().Header().Set(echo.HeaderLastModified, info.LastModified.UTC().Format(http.TimeFormat))
	}

	return ctx.Stream(http.StatusOK, constants.JSONContentType, body)
}
