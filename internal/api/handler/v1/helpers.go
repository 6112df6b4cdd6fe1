package v1

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusfest/fest-api/internal/api/middleware"
	"github.com/campusfest/fest-api/internal/domain"
)

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %v (%v)", name, raw)
	}

	return uint(v), nil
}

// sessionParticipantID returns the numeric participant ID of the caller,
// or 0 and false when the caller is not a logged-in participant.
func sessionParticipantID(ctx *gin.Context) (uint, bool) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok || session.Role != domain.RoleParticipant {
		return 0, false
	}

	id, err := strconv.ParseUint(session.Subject, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint(id), true
}
