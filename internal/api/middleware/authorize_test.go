package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusfest/fest-api/internal/authz"
	"github.com/campusfest/fest-api/internal/domain"
	"github.com/campusfest/fest-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func newProtectedRouter(resource authz.Resource, action authz.Action) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	auth := NewAuthenticator(testSigningKey)
	router.GET("/probe", auth.VerifyJWTOptional(), Authorize(resource, action), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	return router
}

func bearerFor(t *testing.T, userID string, role domain.Role) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), userID, role, "test")
	require.NoError(t, err)

	return "Bearer " + token
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		resource authz.Resource
		action   authz.Action
		role     domain.Role
		want     int
	}{
		{"anonymous reads events", authz.ResourceEvents, authz.ActionRead, domain.RoleAnonymous, http.StatusOK},
		{"anonymous denied on budget", authz.ResourceBudget, authz.ActionRead, domain.RoleAnonymous, http.StatusUnauthorized},
		{"member denied venue delete", authz.ResourceVenues, authz.ActionDelete, domain.RoleMember, http.StatusForbidden},
		{"superadmin deletes venues", authz.ResourceVenues, authz.ActionDelete, domain.RoleSuperAdmin, http.StatusOK},
		{"participant denied dashboard", authz.ResourceDashboard, authz.ActionRead, domain.RoleParticipant, http.StatusForbidden},
		{"head deletes events", authz.ResourceEvents, authz.ActionDelete, domain.RoleHead, http.StatusOK},
		{"co-head denied event delete", authz.ResourceEvents, authz.ActionDelete, domain.RoleCoHead, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newProtectedRouter(tt.resource, tt.action)

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.role != domain.RoleAnonymous {
				req.Header.Set("Authorization", bearerFor(t, "S1", tt.role))
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestVerifyJWT(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	auth := NewAuthenticator(testSigningKey)
	router.GET("/probe", auth.VerifyJWT(), func(ctx *gin.Context) {
		session, ok := SessionFromContext(ctx)
		require.True(t, ok)
		ctx.String(http.StatusOK, session.Subject)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte("another-key"), "S1", domain.RoleHead, "test")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token attaches the session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", bearerFor(t, "S42", domain.RoleMember))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "S42", rec.Body.String())
	})
}
