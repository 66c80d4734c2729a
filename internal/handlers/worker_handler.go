package handlers

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type WorkerHandler struct {
	repo  directory.Repository
	cache cache.Cache
	audit *audit.Dispatcher
	log   *slog.Logger
}

func NewWorkerHandler(
	repo directory.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *WorkerHandler {
	return &WorkerHandler{repo: repo, cache: c, audit: audit, log: log}
}

type CreateWorkerRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Title string `json:"title" binding:"max=100"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type UpdateWorkerRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=100"`
	Title  *string `json:"title" binding:"omitempty,max=100"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Active *bool   `json:"active"`
}

// List returns the store's workers ordered by name. Inactive workers are
// only included with include_inactive=true.
func (h *WorkerHandler) List(c *gin.Context) {
	storeID, ok := uintParam(c, "storeId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.repo.GetStore(ctx, storeID); err != nil {
		httperr.Respond(c, err)
		return
	}

	workers, err := h.repo.ListWorkers(ctx, storeID, boolQuery(c, "include_inactive"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	directory.SortWorkers(workers)

	httpresp.List(c, workers)
}

func (h *WorkerHandler) Create(c *gin.Context) {
	storeID, ok := uintParam(c, "storeId")
	if !ok {
		return
	}

	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.repo.GetStore(ctx, storeID); err != nil {
		httperr.Respond(c, err)
		return
	}

	phone, email, err := directory.CheckContact(req.Phone, req.Email)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	worker := models.Worker{
		StoreID: storeID,
		Name:    strings.TrimSpace(req.Name),
		Title:   strings.TrimSpace(req.Title),
		Phone:   phone,
		Email:   email,
		Active:  true,
	}
	if err := h.repo.CreateWorker(ctx, &worker); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.changed(c, &worker, "worker_created")
	httpresp.Created(c, worker)
}

func (h *WorkerHandler) Get(c *gin.Context) {
	workerID, ok := uintParam(c, "workerId")
	if !ok {
		return
	}

	worker, err := h.repo.GetWorker(c.Request.Context(), workerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, worker)
}

func (h *WorkerHandler) Update(c *gin.Context) {
	workerID, ok := uintParam(c, "workerId")
	if !ok {
		return
	}

	var req UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	ctx := c.Request.Context()
	worker, err := h.repo.GetWorker(ctx, workerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if req.Name != nil {
		worker.Name = strings.TrimSpace(*req.Name)
	}
	if req.Title != nil {
		worker.Title = strings.TrimSpace(*req.Title)
	}
	if req.Active != nil {
		worker.Active = *req.Active
	}

	phone, email := worker.Phone, worker.Email
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Email != nil {
		email = *req.Email
	}
	if worker.Phone, worker.Email, err = directory.CheckContact(phone, email); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.repo.UpdateWorker(ctx, worker); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.changed(c, worker, "worker_updated")
	httpresp.OK(c, worker)
}

// changed drops the cached store, which embeds its active workers, and
// records the audit event.
func (h *WorkerHandler) changed(c *gin.Context, worker *models.Worker, action string) {
	if err := h.cache.Delete(c.Request.Context(), cache.StoreKey(worker.StoreID)); err != nil {
		h.log.Warn("store cache invalidation failed", "store_id", worker.StoreID, "err", err)
	}
	if store, err := h.repo.GetStore(c.Request.Context(), worker.StoreID); err == nil {
		if err := h.cache.Delete(c.Request.Context(), cache.StoreSlugKey(store.Slug)); err != nil {
			h.log.Warn("store cache invalidation failed", "store_id", worker.StoreID, "err", err)
		}
	}

	h.audit.Dispatch(audit.Event{
		StoreID:  worker.StoreID,
		Action:   action,
		Entity:   "worker",
		EntityID: &worker.ID,
	})
}
