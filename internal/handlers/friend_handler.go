package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type FriendHandler struct {
	repo directory.Repository
}

func NewFriendHandler(repo directory.Repository) *FriendHandler {
	return &FriendHandler{repo: repo}
}

// AddFriendRequest identifies the friend by id or by email.
type AddFriendRequest struct {
	FriendID uint   `json:"friend_id"`
	Email    string `json:"email"`
}

func (h *FriendHandler) List(c *gin.Context) {
	clientID, ok := uintParam(c, "clientId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.repo.GetClient(ctx, clientID); err != nil {
		httperr.Respond(c, err)
		return
	}

	friends, err := h.repo.ListFriends(ctx, clientID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, friends)
}

func (h *FriendHandler) Add(c *gin.Context) {
	clientID, ok := uintParam(c, "clientId")
	if !ok {
		return
	}

	var req AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}
	if req.FriendID == 0 && req.Email == "" {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.repo.GetClient(ctx, clientID); err != nil {
		httperr.Respond(c, err)
		return
	}

	friendID := req.FriendID
	if friendID == 0 {
		if !validators.IsEmail(req.Email) {
			httperr.BadRequest(c, "invalid_email")
			return
		}
		friend, err := h.repo.GetClientByEmail(ctx, validators.NormalizeEmail(req.Email))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		friendID = friend.ID
	}

	if err := directory.CheckFriend(clientID, friendID); err != nil {
		httperr.Respond(c, err)
		return
	}

	friend, err := h.repo.GetClient(ctx, friendID)
	if err != nil {
		if httperr.IsBusiness(err, "client_not_found") {
			httperr.NotFound(c, "friend_not_found")
			return
		}
		httperr.Respond(c, err)
		return
	}

	already, err := h.repo.IsFriend(ctx, clientID, friendID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if already {
		httperr.Conflict(c, "already_friends")
		return
	}

	if err := h.repo.AddFriendship(ctx, clientID, friendID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, friend)
}

func (h *FriendHandler) Remove(c *gin.Context) {
	clientID, ok := uintParam(c, "clientId")
	if !ok {
		return
	}
	friendID, ok := uintParam(c, "friendId")
	if !ok {
		return
	}

	if err := h.repo.RemoveFriendship(c.Request.Context(), clientID, friendID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
