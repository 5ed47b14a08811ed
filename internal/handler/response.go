package handler

import (
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/Raeus1901/wine-bot/internal/domain"
	"github.com/Raeus1901/wine-bot/internal/handler/dto"
)

// ErrorResponse maps a domain error onto the flat {"error": ...} body the
// chat clients expect, without leaking internals.
func ErrorResponse(c *app.RequestContext, err error) {
	message := "internal server error"
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		message = domainErr.UserMessage()
	}

	switch {
	case domain.IsInvalidInput(err):
		c.JSON(consts.StatusBadRequest, dto.ErrorResponse{Error: message})
	case domain.IsNotFound(err):
		c.JSON(consts.StatusNotFound, dto.ErrorResponse{Error: message})
	default:
		c.JSON(consts.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// BadRequestResponse returns a 400 with the given message.
func BadRequestResponse(c *app.RequestContext, message string) {
	c.JSON(consts.StatusBadRequest, dto.ErrorResponse{Error: message})
}
