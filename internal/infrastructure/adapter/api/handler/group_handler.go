package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/domain/port/usecase"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/dto"
)

// GroupHandler handles shopping group, membership and cart endpoints
type GroupHandler struct {
	groupUseCase usecase.GroupUseCase
	logger       coreport.Logger
}

// NewGroupHandler creates a new group handler instance
func NewGroupHandler(groupUseCase usecase.GroupUseCase, logger coreport.Logger) *GroupHandler {
	return &GroupHandler{
		groupUseCase: groupUseCase,
		logger:       logger,
	}
}

// CreateGroup handles POST /groups
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	group, err := h.groupUseCase.CreateGroup(c.Request.Context(), p, req.Name, req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewGroupResponse(group))
}

// ListGroups handles GET /groups
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupUseCase.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGroupList(groups))
}

// GetGroup handles GET /groups/:groupId
func (h *GroupHandler) GetGroup(c *gin.Context) {
	groupID, ok := idParam(c, "groupId", domainerr.ErrInvalidGroupID)
	if !ok {
		return
	}

	group, err := h.groupUseCase.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGroupResponse(group))
}

// JoinGroup handles POST /groups/:groupId/join
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	groupID, ok := idParam(c, "groupId", domainerr.ErrInvalidGroupID)
	if !ok {
		return
	}

	membership, err := h.groupUseCase.JoinGroup(c.Request.Context(), p, groupID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewMemberResponse(membership))
}

// JoinByRoomCode handles POST /groups/join
func (h *GroupHandler) JoinByRoomCode(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.JoinByRoomCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	group, err := h.groupUseCase.JoinGroupByRoomCode(c.Request.Context(), p, req.RoomCode)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGroupResponse(group))
}

// CloseGroup handles POST /groups/:groupId/close
func (h *GroupHandler) CloseGroup(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	groupID, ok := idParam(c, "groupId", domainerr.ErrInvalidGroupID)
	if !ok {
		return
	}

	group, err := h.groupUseCase.CloseGroup(c.Request.Context(), p, groupID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGroupResponse(group))
}

// ListMembers handles GET /groups/:groupId/members
func (h *GroupHandler) ListMembers(c *gin.Context) {
	groupID, ok := idParam(c, "groupId", domainerr.ErrInvalidGroupID)
	if !ok {
		return
	}

	members, err := h.groupUseCase.ListMembers(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMemberList(members))
}

// AddCartItem handles POST /groups/:groupId/cart
func (h *GroupHandler) AddCartItem(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	groupID, ok := idParam(c, "groupId", domainerr.ErrInvalidGroupID)
	if !ok {
		return
	}

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, h.logger, err)
		return
	}

	item, err := h.groupUseCase.AddCartItem(c.Request.Context(), p, groupID, usecase.AddCartItemRequest{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCartItemResponse(item))
}

// GetAggregateCart handles GET /groups/:groupId/cart
func (h *GroupHandler) GetAggregateCart(c *gin.Context) {
	groupID, ok := idParam(c, "groupId", domainerr.ErrInvalidGroupID)
	if !ok {
		return
	}

	cart, err := h.groupUseCase.GetAggregateCart(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAggregateCartResponse(cart))
}

// ListCartItems handles GET /groups/:groupId/cart/items
func (h *GroupHandler) ListCartItems(c *gin.Context) {
	groupID, ok := idParam(c, "groupId", domainerr.ErrInvalidGroupID)
	if !ok {
		return
	}

	items, err := h.groupUseCase.ListCartItems(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCartItemList(items))
}
