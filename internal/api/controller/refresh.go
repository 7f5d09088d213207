package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type refreshRequest struct {
	SkipFetch bool `json:"skip_fetch"`
}

func (c *Controller) RefreshDatasets(ctx echo.Context) error {
	var req refreshRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	res, err := c.pipelineService.Run(ctx.Request().Context(), req.SkipFetch)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}
