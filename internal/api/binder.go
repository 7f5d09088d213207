package api

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/perdash/internal/pkg/codec"
	"github.com/ougirez/perdash/internal/pkg/constants"
)

type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validator: validator.New()}
}

func (v *Validator) Validate(i any) error {
	if err := v.validator.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", constants.ErrBadRequest, err)
	}

	return nil
}

// Binder reports every binding failure as a bad request.
type Binder struct {
	binder *echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{binder: &echo.DefaultBinder{}}
}

func (b *Binder) Bind(i any, c echo.Context) error {
	if err := b.binder.Bind(i, c); err != nil {
		return fmt.Errorf("%w: %v", constants.ErrBadRequest, err)
	}

	return nil
}

type jsonSerializer struct{}

// Serialize always indents, matching the dataset files.
func (jsonSerializer) Serialize(c echo.Context, i any, _ string) error {
	return codec.Encode(c.Response(), i)
}

func (jsonSerializer) Deserialize(c echo.Context, i any) error {
	if err := codec.Decode(c.Request().Body, i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	return nil
}
