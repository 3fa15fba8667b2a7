package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scorequest/user/internal/models"
)

func TestJSONWritesPayload(t *testing.T) {
	rec := httptest.NewRecorder()

	payload := map[string]any{"foo": "bar"}
	JSON(rec, http.StatusCreated, payload)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %s", ct)
	}

	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if decoded["foo"] != "bar" {
		t.Fatalf("expected payload value 'bar', got %v", decoded["foo"])
	}
}

func TestJSONSkipsNilPayload(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusAccepted, nil)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d", http.StatusAccepted, rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestJSONErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	JSONError(rec, http.StatusNotFound, "User not found")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != "User not found" {
		t.Fatalf("expected message 'User not found', got %q", resp.Message)
	}
	if resp.Stack != "" {
		t.Fatalf("expected no stack on client errors, got %q", resp.Stack)
	}
}

func TestJSONInternalErrorStack(t *testing.T) {
	t.Run("includes stack outside production", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		rec := httptest.NewRecorder()

		JSONInternalError(rec, "boom")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", rec.Code)
		}
		var resp models.ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if resp.Message != "boom" {
			t.Fatalf("expected message 'boom', got %q", resp.Message)
		}
		if resp.Stack == "" {
			t.Fatal("expected stack to be present outside production")
		}
	})

	t.Run("hides stack in production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		rec := httptest.NewRecorder()

		JSONInternalError(rec, "boom")

		var resp models.ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if resp.Stack != "" {
			t.Fatal("expected no stack in production mode")
		}
	})
}
