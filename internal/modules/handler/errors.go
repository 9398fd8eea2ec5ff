package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suggestbox/suggestbox/internal/middleware"
	"github.com/suggestbox/suggestbox/internal/modules/model"
	"github.com/suggestbox/suggestbox/internal/modules/serializer"
	"github.com/suggestbox/suggestbox/internal/modules/service"
)

// respondErr maps service error kinds to HTTP statuses.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidKey), errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(err.Error()))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(err.Error()))
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), nil))
	default:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}

func callerToken(c *gin.Context) (*model.Token, bool) {
	t, ok := c.MustGet(middleware.TokenKey).(*model.Token)
	if !ok {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", errors.New("token not found")))
	}
	return t, ok
}
