package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func record(fn func(c *gin.Context)) map[string]any {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	body["_code"] = float64(w.Code)
	return body
}

func TestRespondOK(t *testing.T) {
	body := record(func(c *gin.Context) {
		RespondOK(c, http.StatusCreated, "Zone added", gin.H{"id": "z-1"})
	})

	if body["_code"] != float64(http.StatusCreated) || body["status_code"] != float64(http.StatusCreated) {
		t.Fatalf("expected 201 in header and body, got %v", body)
	}
	if body["status"] != StatusSuccess {
		t.Fatalf("expected success status, got %v", body["status"])
	}
	if _, ok := body["errors"]; ok {
		t.Fatalf("expected no errors field, got %v", body["errors"])
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantDetails bool
	}{
		{"with cause", errors.New("plan not found"), true},
		{"without cause", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := record(func(c *gin.Context) {
				RespondError(c, http.StatusNotFound, "No open session", tt.err)
			})

			if body["status"] != StatusError || body["message"] != "No open session" {
				t.Fatalf("unexpected envelope %v", body)
			}
			details, ok := body["errors"]
			if ok != tt.wantDetails {
				t.Fatalf("expected details present=%v, got %v", tt.wantDetails, body)
			}
			if ok && details != "plan not found" {
				t.Fatalf("expected cause as details, got %v", details)
			}
		})
	}
}
