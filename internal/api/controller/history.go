package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/perdash/internal/domain/dto"
	"github.com/ougirez/perdash/internal/pkg/codec"
	"github.com/ougirez/perdash/internal/pkg/constants"
	"github.com/ougirez/perdash/internal/pkg/store"
)

const dateLayout = "2006-01-02"

type countryHistoryResponse struct {
	Country     string                    `json:"country"`
	Assessments []dto.CountryHistoryEntry `json:"assessments"`
}

func (c *Controller) GetCountryHistory(ctx echo.Context) error {
	name, err := url.PathUnescape(ctx.Param("name"))
	if err != nil {
		return fmt.Errorf("%w: %v", constants.ErrBadRequest, err)
	}

	from := ctx.QueryParams().Get("from")
	if from != "" {
		if _, err := time.Parse(dateLayout, from); err != nil {
			return fmt.Errorf("%w: from must be YYYY-MM-DD", constants.ErrBadRequest)
		}
	}

	b, err := store.ReadAll(ctx.Request().Context(), c.store, constants.DatasetDashboard)
	if err != nil {
		return err
	}

	var dashboard dto.Dashboard
	if err := codec.Unmarshal(b, &dashboard); err != nil {
		return fmt.Errorf("decode %s: %w", constants.DatasetDashboard, err)
	}

	entries, ok := dashboard.CountryAssessments[name]
	if !ok {
		return fmt.Errorf("country %q: %w", name, constants.ErrNotFound)
	}

	return ctx.JSON(http.StatusOK, countryHistoryResponse{
		Country:     name,
		Assessments: filterFrom(entries, from),
	})
}

// filterFrom keeps entries dated on or after from. Dates are ISO strings, so
// comparing the date prefix is enough; undated entries are dropped.
func filterFrom(entries []dto.CountryHistoryEntry, from string) []dto.CountryHistoryEntry {
	if from == "" {
		return entries
	}

	res := make([]dto.CountryHistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Date == nil {
			continue
		}
		date := *e.Date
		if len(date) > len(dateLayout) {
			date = date[:len(dateLayout)]
		}
		if date >= from {
			res = append(res, e)
		}
	}

	return res
}
