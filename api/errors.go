package api

import (
	"errors"
	"strconv"

	"templo/logger"
	"templo/service"

	"github.com/gin-gonic/gin"
)

// RespondError maps service errors onto the response envelope. Storage
// failures are logged and their details hidden in release mode.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Error())
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrDuplicatePayment),
		errors.Is(err, service.ErrEmailDisabled):
		BadRequest(c, err.Error())
	default:
		log.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err)
		InternalError(c, SafeErrorMessage(err, "erro interno ao processar a requisição"))
	}
}

// bindingError request body or query could not be bound
func bindingError(c *gin.Context, err error) {
	BadRequest(c, "parâmetros inválidos: "+err.Error())
}

// parseID reads the :id path parameter; writes a 400 and returns false when malformed
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, "ID inválido")
		return 0, false
	}
	return uint(id), true
}
