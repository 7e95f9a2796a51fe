package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrm-api/internal/api/middleware"
	"hrm-api/internal/auth"
	"hrm-api/internal/models"
	"hrm-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	adminSession = &auth.Session{UserID: 1, Email: "admin@example.com", Role: models.RoleAdmin, Name: "Admin", TokenID: "t-admin"}
	hrSession    = &auth.Session{UserID: 2, Email: "hr@example.com", Role: models.RoleHR, Name: "HR", TokenID: "t-hr"}
)

// newRouter returns a test engine that authenticates every request as session
// when it is non-nil.
func newRouter(session *auth.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if session != nil {
		r.Use(func(c *gin.Context) {
			middleware.SetSession(c, session)
			c.Next()
		})
	}
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func ptr[T any](v T) *T { return &v }
