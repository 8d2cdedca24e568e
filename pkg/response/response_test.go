package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"apply-tracker/pkg/response"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestOK(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.OK(c, map[string]string{"hello": "world"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("expected error_code 0, got %d", resp.ErrorCode)
	}
	if resp.Message != response.MessageSuccess {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.Error(c, errors.New("boom"), nil)
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != "boom" {
		t.Errorf("expected error message passthrough, got %q", resp.Message)
	}
}

func TestInternalError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		response.InternalError(c, errors.New("secret detail"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != response.DefaultErrorMessage {
		t.Errorf("internal error must not leak details, got %q", resp.Message)
	}
}
