package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type fakeAuditReader struct {
	got audit.Filter
}

func (f *fakeAuditReader) List(_ context.Context, filter audit.Filter) ([]models.AuditLog, int64, error) {
	f.got = filter
	return []models.AuditLog{{ID: 1, StoreID: filter.StoreID, Action: "appointment_booked"}}, 1, nil
}

func TestAuditLogsFilters(t *testing.T) {
	repo := newFakeDirectory()
	store := models.Store{Name: "Szalon", Slug: "szalon", Timezone: "Europe/Budapest"}
	if err := repo.CreateStore(context.Background(), &store); err != nil {
		t.Fatalf("seed: %v", err)
	}

	reader := &fakeAuditReader{}
	h := NewAuditLogsHandler(reader, repo)

	r := gin.New()
	r.GET("/stores/:storeId/audit-logs", h.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/stores/"+itoa(store.ID)+"/audit-logs?action=appointment_booked&from=2026-10-01&to=2026-10-31&limit=500", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list: %d %s", w.Code, w.Body.String())
	}

	f := reader.got
	if f.StoreID != store.ID || f.Action != "appointment_booked" || f.Limit != audit.DefaultLimit || f.Page != 1 {
		t.Fatalf("unexpected filter %+v", f)
	}
	if f.From.Format("2006-01-02 15:04") != "2026-10-01 00:00" || f.To.Format("2006-01-02") != "2026-11-01" {
		t.Fatalf("unexpected range %s .. %s", f.From, f.To)
	}
	if f.From.Location().String() != "Europe/Budapest" {
		t.Fatalf("range must be in the store timezone, got %s", f.From.Location())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stores/"+itoa(store.ID)+"/audit-logs?from=yesterday", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad date: expected 400, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stores/999/audit-logs", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown store: expected 404, got %d", w.Code)
	}
}
