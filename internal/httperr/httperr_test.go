package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(err error, url string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	for k, v := range header {
		c.Request.Header.Set(k, v)
	}
	Respond(c, err)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) HTTPError {
	t.Helper()
	var body HTTPError
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func TestRespondBusinessStatus(t *testing.T) {
	cases := map[string]int{
		"slot_taken":       http.StatusConflict,
		"worker_not_found": http.StatusNotFound,
		"day_mismatch":     http.StatusBadRequest,
	}
	for code, want := range cases {
		w := respond(fmt.Errorf("wrapped: %w", ErrBusiness(code)), "/", nil)
		if w.Code != want {
			t.Errorf("%s: expected %d, got %d", code, want, w.Code)
		}
		if body := decode(t, w); body.Code != code {
			t.Errorf("expected code %s, got %s", code, body.Code)
		}
	}
}

func TestRespondLocalizes(t *testing.T) {
	w := respond(ErrBusiness("slot_taken"), "/", nil)
	if body := decode(t, w); body.Message != "Ez az időpont már foglalt." {
		t.Fatalf("expected hungarian message, got %q", body.Message)
	}

	w = respond(ErrBusiness("slot_taken"), "/?lang=en", nil)
	if body := decode(t, w); body.Message != "This time is already booked." {
		t.Fatalf("expected english message, got %q", body.Message)
	}

	w = respond(ErrBusiness("slot_taken"), "/", map[string]string{"Accept-Language": "en-US"})
	if body := decode(t, w); body.Message != "This time is already booked." {
		t.Fatalf("expected english message from header, got %q", body.Message)
	}
}

func TestRespondInternal(t *testing.T) {
	w := respond(errors.New("boom"), "/", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body := decode(t, w); body.Code != "internal_error" {
		t.Fatalf("expected internal_error, got %s", body.Code)
	}
}

func TestIsConflict(t *testing.T) {
	if !IsConflict(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})) {
		t.Fatalf("unique violation must be a conflict")
	}
	if !IsConflict(&pgconn.PgError{Code: "23P01"}) {
		t.Fatalf("exclusion violation must be a conflict")
	}
	if IsConflict(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation is not a conflict")
	}
	if IsConflict(errors.New("other")) {
		t.Fatalf("plain errors are not conflicts")
	}
}
