package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON error envelope. StatusCode stays out of the body.
type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *Err) Error() string {
	return e.Message
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	zap.L().Info("wrong credentials", zap.Error(err))

	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    "wrong credentials",
	}
}

func ErrUnauthorized(message string) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Message:    err.Error(),
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("%v with %v (%v) is not found", resource, key, value),
	}
}

// ErrInternalServerError logs the cause and hides it from the caller.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal server error",
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
