package auth_test

import (
	"chat-relay/auth"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/mocks"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(verifier *mocks.MockTokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", auth.Interceptor(verifier), func(c *gin.Context) {
		userID, ok := auth.CurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, string(userID))
	})
	return r
}

func TestInterceptor(t *testing.T) {
	t.Run("should fail when token is missing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		verifier := mocks.NewMockTokenVerifier(ctrl)

		rec := httptest.NewRecorder()
		newRouter(verifier).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

		req.Equal(http.StatusUnauthorized, rec.Code)
		req.Contains(rec.Body.String(), errors.ErrMissingToken.Error())
	})

	t.Run("should fail with invalid token", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		verifier := mocks.NewMockTokenVerifier(ctrl)
		verifier.EXPECT().Verify("garbage").Return(domain.Identity{}, errors.ErrInvalidToken)

		r := httptest.NewRequest(http.MethodGet, "/me", nil)
		r.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		newRouter(verifier).ServeHTTP(rec, r)

		req.Equal(http.StatusUnauthorized, rec.Code)
	})

	t.Run("should inject the user from a query token", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		verifier := mocks.NewMockTokenVerifier(ctrl)
		verifier.EXPECT().Verify("good").Return(domain.Identity{UserID: "alice"}, nil)

		rec := httptest.NewRecorder()
		newRouter(verifier).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me?token=good", nil))

		req.Equal(http.StatusOK, rec.Code)
		req.Equal("alice", rec.Body.String())
	})
}

func TestBearerToken(t *testing.T) {
	req := require.New(t)

	r := httptest.NewRequest(http.MethodGet, "/ws?token=from-query", nil)
	req.Equal("from-query", auth.BearerToken(r))

	// The header wins over the query parameter
	r.Header.Set("Authorization", "Bearer from-header")
	req.Equal("from-header", auth.BearerToken(r))

	// A non bearer scheme is ignored
	r = httptest.NewRequest(http.MethodGet, "/ws", nil)
	r.Header.Set("Authorization", "Basic abc")
	req.Empty(auth.BearerToken(r))
}
