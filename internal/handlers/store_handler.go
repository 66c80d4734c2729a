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
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type StoreHandler struct {
	repo  directory.Repository
	cache cache.Cache
	audit *audit.Dispatcher
	log   *slog.Logger
}

func NewStoreHandler(
	repo directory.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *StoreHandler {
	return &StoreHandler{repo: repo, cache: c, audit: audit, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateStoreRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Slug        string `json:"slug" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"max=500"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address" binding:"max=255"`
	City        string `json:"city" binding:"max=100"`
	Timezone    string `json:"timezone"`
}

// UpdateStoreRequest is partial: nil fields are left unchanged.
type UpdateStoreRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address" binding:"omitempty,max=255"`
	City        *string `json:"city" binding:"omitempty,max=100"`
	Timezone    *string `json:"timezone"`
}

// ======================================================
// CREATE
// ======================================================

func (h *StoreHandler) Create(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	store := models.Store{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Address:     strings.TrimSpace(req.Address),
		City:        strings.TrimSpace(req.City),
		Timezone:    req.Timezone,
	}

	if err := applyStoreRules(&store, req.Slug, req.Phone, req.Email); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.repo.CreateStore(c.Request.Context(), &store); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		StoreID:  store.ID,
		Action:   "store_created",
		Entity:   "store",
		EntityID: &store.ID,
	})

	httpresp.Created(c, store)
}

// ======================================================
// UPDATE
// ======================================================

func (h *StoreHandler) Update(c *gin.Context) {
	storeID, ok := uintParam(c, "storeId")
	if !ok {
		return
	}

	var req UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	ctx := c.Request.Context()

	store, err := h.repo.GetStore(ctx, storeID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	oldSlug := store.Slug

	if req.Name != nil {
		store.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		store.Description = strings.TrimSpace(*req.Description)
	}
	if req.Address != nil {
		store.Address = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		store.City = strings.TrimSpace(*req.City)
	}
	if req.Timezone != nil {
		store.Timezone = *req.Timezone
	}

	slug, phone, email := store.Slug, store.Phone, store.Email
	if req.Slug != nil {
		slug = *req.Slug
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Email != nil {
		email = *req.Email
	}

	if err := applyStoreRules(store, slug, phone, email); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.repo.UpdateStore(ctx, store); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.invalidate(c, store.ID, oldSlug, store.Slug)

	h.audit.Dispatch(audit.Event{
		StoreID:  store.ID,
		Action:   "store_updated",
		Entity:   "store",
		EntityID: &store.ID,
	})

	httpresp.OK(c, store)
}

// ======================================================
// READ
// ======================================================

func (h *StoreHandler) Get(c *gin.Context) {
	storeID, ok := uintParam(c, "storeId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	key := cache.StoreKey(storeID)

	var store models.Store
	if hit, err := h.cache.Get(ctx, key, &store); err != nil {
		h.log.Warn("store cache read failed", "key", key, "err", err)
	} else if hit {
		httpresp.OK(c, store)
		return
	}

	found, err := h.repo.GetStore(ctx, storeID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.remember(c, key, found)

	httpresp.OK(c, found)
}

func (h *StoreHandler) GetBySlug(c *gin.Context) {
	slug := strings.ToLower(c.Param("slug"))
	if !validators.IsSlug(slug) {
		httperr.NotFound(c, "store_not_found")
		return
	}

	ctx := c.Request.Context()
	key := cache.StoreSlugKey(slug)

	var store models.Store
	if hit, err := h.cache.Get(ctx, key, &store); err != nil {
		h.log.Warn("store cache read failed", "key", key, "err", err)
	} else if hit {
		httpresp.OK(c, store)
		return
	}

	found, err := h.repo.GetStoreBySlug(ctx, slug)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.remember(c, key, found)

	httpresp.OK(c, found)
}

func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.repo.ListStores(c.Request.Context(), directory.StoreFilter{
		Query: c.Query("query"),
		City:  c.Query("city"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, stores)
}

// ======================================================
// HELPERS
// ======================================================

// applyStoreRules validates and normalizes slug, contact and timezone.
// An empty slug is derived from the name.
func applyStoreRules(store *models.Store, slug, phone, email string) error {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		slug = directory.Slugify(store.Name)
	}
	if !validators.IsSlug(slug) {
		return httperr.ErrBusiness("invalid_slug")
	}
	store.Slug = slug

	p, e, err := directory.CheckContact(phone, email)
	if err != nil {
		return err
	}
	store.Phone, store.Email = p, e

	if store.Timezone == "" {
		store.Timezone = timezone.Location("").String()
	}
	if !timezone.IsValid(store.Timezone) {
		return httperr.ErrBusiness("invalid_timezone")
	}
	return nil
}

func (h *StoreHandler) remember(c *gin.Context, key string, store *models.Store) {
	if err := h.cache.Set(c.Request.Context(), key, store); err != nil {
		h.log.Warn("store cache write failed", "key", key, "err", err)
	}
}

func (h *StoreHandler) invalidate(c *gin.Context, storeID uint, slugs ...string) {
	keys := []string{cache.StoreKey(storeID)}
	for _, s := range slugs {
		keys = append(keys, cache.StoreSlugKey(s))
	}
	if err := h.cache.Delete(c.Request.Context(), keys...); err != nil {
		h.log.Warn("store cache invalidation failed", "store_id", storeID, "err", err)
	}
}
