package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusfest/fest-api/internal/api/handler/v1/response"
	"github.com/campusfest/fest-api/internal/pkg/jwthelper"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token and attaches the
// session to the gin context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, respErr := a.parseAuthorizationHeader(ctx)
		if respErr != nil {
			response.RenderErr(ctx, respErr)
			return
		}

		setSession(ctx, Session{
			Subject: claims.UserID,
			Role:    claims.Role,
		})

		ctx.Next()
	}
}

// VerifyJWTOptional attaches a session when a valid bearer token is present
// and lets anonymous requests through untouched. A present but invalid token
// is still rejected.
func (a *Authenticator) VerifyJWTOptional() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetHeader("Authorization") == "" {
			ctx.Next()
			return
		}

		claims, respErr := a.parseAuthorizationHeader(ctx)
		if respErr != nil {
			response.RenderErr(ctx, respErr)
			return
		}

		setSession(ctx, Session{
			Subject: claims.UserID,
			Role:    claims.Role,
		})

		ctx.Next()
	}
}

func (a *Authenticator) parseAuthorizationHeader(ctx *gin.Context) (*jwthelper.Claims, *response.Err) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return nil, response.ErrUnauthorized("authorization header is missing")
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, response.ErrUnauthorized("authorization header is not a bearer token")
	}

	claims, err := jwthelper.ParseToken(a.signingKey, token)
	if err != nil {
		return nil, response.ErrUnauthorized("invalid or expired token")
	}

	return claims, nil
}
