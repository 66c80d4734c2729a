package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type storeGetter interface {
	GetStore(ctx context.Context, storeID uint) (*models.Store, error)
}

type AuditLogsHandler struct {
	reader audit.Reader
	stores storeGetter
}

func NewAuditLogsHandler(reader audit.Reader, stores storeGetter) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader, stores: stores}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	storeID, ok := uintParam(c, "storeId")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	store, err := h.stores.GetStore(ctx, storeID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultLimit)))

	f := audit.Filter{
		StoreID: storeID,
		Action:  c.Query("action"),
		Entity:  c.Query("entity"),
		Page:    page,
		Limit:   limit,
	}.Normalize()

	// --------------------------------------------------
	// Date filters are whole days in the store's timezone
	// --------------------------------------------------
	if from := c.Query("from"); from != "" {
		d, err := timezone.ParseDate(store.Timezone, from)
		if err != nil {
			httperr.BadRequest(c, "invalid_date")
			return
		}
		f.From = d
	}
	if to := c.Query("to"); to != "" {
		d, err := timezone.ParseDate(store.Timezone, to)
		if err != nil {
			httperr.BadRequest(c, "invalid_date")
			return
		}
		f.To = d.AddDate(0, 0, 1)
	}

	logs, total, err := h.reader.List(ctx, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
		"logs":  logs,
	})
}
