package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budget_portal/internal/infrastructure/config"
	"budget_portal/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: 8080, GinMode: gin.TestMode},
		Store:   config.StoreConfig{Backend: config.StoreBackendMemory},
		Auth:    config.AuthConfig{JWTSecret: "test-secret", SessionTTL: time.Hour},
		Logging: config.LoggingConfig{Level: "error"},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, err := NewRouter(context.Background(), testConfig(), logger.NewNop(), bcrypt.MinCost)
	require.NoError(t, err)
	return r
}

func call(t *testing.T, r http.Handler, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func login(t *testing.T, r http.Handler, userID, credential string) string {
	t.Helper()
	code, body := call(t, r, http.MethodPost, "/v1/auth/login", "", map[string]string{"user_id": userID, "credential": credential})
	require.Equal(t, http.StatusOK, code, body)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)
	code, body := call(t, r, http.MethodGet, "/v1/ping", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pong", body["message"])
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/v1/estimations", "/v1/line-items", "/v1/auth/session"} {
		code, body := call(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, code, path)
		assert.Equal(t, "UNAUTHORIZED", body["code"], path)
	}
}

func TestRouter_ApprovalFlow(t *testing.T) {
	r := newTestRouter(t)

	verifier := login(t, r, "verifier001", "verifier123")
	code, body := call(t, r, http.MethodPost, "/v1/estimations/est-0002/actions", verifier, map[string]string{"action": "submit"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "under_approval", body["status"])
	assert.Equal(t, "approver", body["current_level"])

	creator := login(t, r, "creator001", "creator123")
	code, body = call(t, r, http.MethodPost, "/v1/estimations/est-0003/actions", creator, map[string]string{"action": "approve"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "NOT_PERMITTED", body["code"])

	approver := login(t, r, "approver001", "approver123")
	code, body = call(t, r, http.MethodPost, "/v1/estimations/est-0003/actions", approver, map[string]string{"action": "approve"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "approved", body["status"])

	code, body = call(t, r, http.MethodPost, "/v1/estimations/est-0003/actions", approver, map[string]string{"action": "approve"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "INVALID_TRANSITION", body["code"])
}

func TestRouter_LogoutRevokesToken(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "creator001", "creator123")

	code, body := call(t, r, http.MethodGet, "/v1/auth/session", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "/dashboard/creator", body["landing_route"])

	code, _ = call(t, r, http.MethodPost, "/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, code)

	code, _ = call(t, r, http.MethodGet, "/v1/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRouter_SwitchRole(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "ddo002", "ddo12345")

	code, body := call(t, r, http.MethodPut, "/v1/auth/session/role", token, map[string]string{"role": "verifier"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "/budget/verification", body["landing_route"])

	code, body = call(t, r, http.MethodPut, "/v1/auth/session/role", token, map[string]string{"role": "approver"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "NOT_PERMITTED", body["code"])
}

func TestRouter_DraftOnMovedBatchConflicts(t *testing.T) {
	r := newTestRouter(t)
	creator := login(t, r, "creator001", "creator123")

	draft := map[string]string{
		"line_item_id":         "bli-2054-13",
		"actual_previous_year": "1.00",
		"budget_current_year":  "1.00",
		"revised_estimate":     "1.00",
		"proposed_estimate":    "1.00",
	}
	code, body := call(t, r, http.MethodPost, "/v1/estimations", creator, draft)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "INVALID_TRANSITION", body["code"])

	verifier := login(t, r, "verifier001", "verifier123")
	code, body = call(t, r, http.MethodPost, "/v1/estimations/est-0002/actions", verifier, map[string]string{"action": "submit"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "under_approval", body["status"])
}
