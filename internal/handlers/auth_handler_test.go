package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scorequest/user/internal/models"
	"scorequest/user/internal/testhelpers"
	"scorequest/user/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newAuthHandler(repo *testhelpers.MemoryRepo) *AuthHandler {
	return NewAuthHandler(repo, testSecret, 0, zap.NewNop())
}

func postLogin(handler *AuthHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.LoginHandler(rec, req)
	return rec
}

func TestLoginHandler_Success(t *testing.T) {
	repo := testhelpers.NewMemoryRepo()
	user := testhelpers.SeedUser(t, repo, "alice_01", "Secret123", models.RoleUser, 5)
	handler := newAuthHandler(repo)

	rec := postLogin(handler, `{"username":"alice_01","password":"Secret123"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp models.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected non-empty token")
	}
	if resp.Message != "Login successful" {
		t.Fatalf("expected 'Login successful', got %q", resp.Message)
	}
	if resp.User.Username != "alice_01" || resp.User.ID != user.ID.Hex() || resp.User.Points != 5 {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}

	claims := &utils.TokenClaims{}
	if _, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}); err != nil {
		t.Fatalf("failed to parse issued token: %v", err)
	}
	if claims.Username != "alice_01" || claims.ID != user.ID.Hex() {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

// Unknown username and wrong password must be indistinguishable, or the
// endpoint becomes a username oracle.
func TestLoginHandler_EnumerationResistance(t *testing.T) {
	repo := testhelpers.NewMemoryRepo()
	testhelpers.SeedUser(t, repo, "alice_01", "Secret123", models.RoleUser, 0)
	handler := newAuthHandler(repo)

	wrongPassword := postLogin(handler, `{"username":"alice_01","password":"WrongPass1"}`)
	unknownUser := postLogin(handler, `{"username":"nobody_99","password":"Secret123"}`)

	if wrongPassword.Code != http.StatusForbidden || unknownUser.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for both, got %d and %d", wrongPassword.Code, unknownUser.Code)
	}
	if wrongPassword.Body.String() != unknownUser.Body.String() {
		t.Fatalf("expected identical error bodies, got %q vs %q",
			wrongPassword.Body.String(), unknownUser.Body.String())
	}
}

func TestLoginHandler_InvalidPayload(t *testing.T) {
	handler := newAuthHandler(testhelpers.NewMemoryRepo())

	rec := postLogin(handler, "{not json")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLoginHandler_StorageFailure(t *testing.T) {
	repo := &mockUserRepo{
		getByUsernameFn: func(string) (*models.User, error) {
			return nil, errors.New("connection reset")
		},
	}
	handler := NewAuthHandler(repo, testSecret, 0, zap.NewNop())

	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"username":"alice_01","password":"x"}`))
	rec := httptest.NewRecorder()
	handler.LoginHandler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != "connection reset" {
		t.Fatalf("expected original message preserved, got %q", resp.Message)
	}
}
