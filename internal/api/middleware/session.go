package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/campusfest/fest-api/internal/domain"
)

const sessionKey = "session"

// Session is the authenticated identity attached to a request. Subject is
// the student ID for committee members and the numeric participant ID,
// rendered as a string, for participants.
type Session struct {
	Subject string
	Role    domain.Role
}

func setSession(ctx *gin.Context, session Session) {
	ctx.Set(sessionKey, session)
}

// SessionFromContext returns the session set by VerifyJWT. The second return
// is false for anonymous requests.
func SessionFromContext(ctx *gin.Context) (Session, bool) {
	v, ok := ctx.Get(sessionKey)
	if !ok {
		return Session{}, false
	}

	session, ok := v.(Session)

	return session, ok
}
