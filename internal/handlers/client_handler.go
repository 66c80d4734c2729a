package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ClientHandler struct {
	repo directory.Repository
}

func NewClientHandler(repo directory.Repository) *ClientHandler {
	return &ClientHandler{repo: repo}
}

type RegisterClientRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email *string `json:"email" binding:"omitempty,min=1"`
	Phone *string `json:"phone"`
}

// ======================================================
// REGISTER
// ======================================================

func (h *ClientHandler) Register(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	phone, email, err := directory.CheckContact(req.Phone, req.Email)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	client := models.Client{
		Name:  strings.TrimSpace(req.Name),
		Email: email,
		Phone: phone,
	}
	if err := h.repo.CreateClient(c.Request.Context(), &client); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, client)
}

// ======================================================
// PROFILE
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	clientID, ok := uintParam(c, "clientId")
	if !ok {
		return
	}

	client, err := h.repo.GetClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	clientID, ok := uintParam(c, "clientId")
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	ctx := c.Request.Context()
	client, err := h.repo.GetClient(ctx, clientID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if req.Name != nil {
		client.Name = strings.TrimSpace(*req.Name)
	}

	phone, email := client.Phone, client.Email
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Email != nil {
		email = *req.Email
	}
	if client.Phone, client.Email, err = directory.CheckContact(phone, email); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.repo.UpdateClient(ctx, client); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, client)
}
