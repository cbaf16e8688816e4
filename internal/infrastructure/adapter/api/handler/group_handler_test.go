package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	"github.com/vyronamart/group-ledger/internal/domain/port/usecase"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/api/dto"
	coremocks "github.com/vyronamart/group-ledger/mocks/port/core"
	mockusecase "github.com/vyronamart/group-ledger/mocks/port/usecase"
)

func groupRouter(t *testing.T, p *entity.Principal) (*mockusecase.MockGroupUseCase, *mockusecase.MockPaymentUseCase, func(method, path string, body any) *httptest.ResponseRecorder) {
	t.Helper()
	groups := new(mockusecase.MockGroupUseCase)
	payments := new(mockusecase.MockPaymentUseCase)
	log := coremocks.NewMockLogger(t).AllowAll()
	h := NewGroupHandler(groups, log)
	ph := NewPaymentHandler(payments, log)

	router := newTestRouter(p)
	router.POST("/groups", h.CreateGroup)
	router.GET("/groups", h.ListGroups)
	router.POST("/groups/join", h.JoinByRoomCode)
	router.GET("/groups/:groupId", h.GetGroup)
	router.POST("/groups/:groupId/join", h.JoinGroup)
	router.POST("/groups/:groupId/close", h.CloseGroup)
	router.GET("/groups/:groupId/members", h.ListMembers)
	router.POST("/groups/:groupId/cart", h.AddCartItem)
	router.GET("/groups/:groupId/cart", h.GetAggregateCart)
	router.GET("/groups/:groupId/cart/items", h.ListCartItems)
	router.POST("/groups/:groupId/payment-intents", ph.GenerateIntent)

	return groups, payments, func(method, path string, body any) *httptest.ResponseRecorder {
		return perform(router, method, path, body)
	}
}

func sampleGroup() *entity.ShoppingGroup {
	return &entity.ShoppingGroup{
		ID:          5,
		Name:        "Diwali Sweets",
		CreatorID:   caller.UserID,
		Active:      true,
		RoomCode:    "AB12CD",
		MemberCount: 1,
		CreatedAt:   time.Date(2025, 10, 17, 9, 0, 0, 0, time.UTC),
	}
}

func TestGroupHandlerCreateGroup(t *testing.T) {
	t.Run("creates with the caller as creator", func(t *testing.T) {
		// Arrange
		groups, _, do := groupRouter(t, &caller)
		groups.On("CreateGroup", mock.Anything, caller, "Diwali Sweets", "bulk order").Return(sampleGroup(), nil)

		// Act
		rec := do(http.MethodPost, "/groups", map[string]string{"name": "Diwali Sweets", "description": "bulk order"})

		// Assert
		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decode[dto.GroupResponse](t, rec)
		assert.Equal(t, "AB12CD", body.RoomCode)
		assert.Equal(t, int64(1), body.MemberCount)
		assert.True(t, body.Active)
	})

	t.Run("blank name from the service is 400", func(t *testing.T) {
		groups, _, do := groupRouter(t, &caller)
		groups.On("CreateGroup", mock.Anything, caller, "   ", "").Return(nil, errs.ErrInvalidGroupName)

		rec := do(http.MethodPost, "/groups", map[string]string{"name": "   "})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidGroupName, decodeError(t, rec).Code)
	})

	t.Run("missing name fails binding", func(t *testing.T) {
		groups, _, do := groupRouter(t, &caller)

		rec := do(http.MethodPost, "/groups", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		groups.AssertNotCalled(t, "CreateGroup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGroupHandlerJoin(t *testing.T) {
	t.Run("second join is a conflict", func(t *testing.T) {
		groups, _, do := groupRouter(t, &caller)
		groups.On("JoinGroup", mock.Anything, caller, uint64(5)).Return(nil, errs.ErrAlreadyMember)

		rec := do(http.MethodPost, "/groups/5/join", nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, errs.CodeAlreadyMember, decodeError(t, rec).Code)
	})

	t.Run("inactive group is 404", func(t *testing.T) {
		groups, _, do := groupRouter(t, &caller)
		groups.On("JoinGroup", mock.Anything, caller, uint64(9)).Return(nil, errs.ErrGroupNotFound)

		rec := do(http.MethodPost, "/groups/9/join", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("joins", func(t *testing.T) {
		groups, _, do := groupRouter(t, &caller)
		groups.On("JoinGroup", mock.Anything, caller, uint64(5)).Return(&entity.GroupMembership{
			GroupID: 5, UserID: caller.UserID, Role: entity.RoleMember,
		}, nil)

		rec := do(http.MethodPost, "/groups/5/join", nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "member", decode[dto.MemberResponse](t, rec).Role)
	})

	t.Run("bad group id", func(t *testing.T) {
		_, _, do := groupRouter(t, &caller)

		for _, path := range []string{"/groups/abc/join", "/groups/0/join"} {
			rec := do(http.MethodPost, path, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		}
	})

	t.Run("by room code", func(t *testing.T) {
		groups, _, do := groupRouter(t, &caller)
		groups.On("JoinGroupByRoomCode", mock.Anything, caller, "ab12cd").Return(sampleGroup(), nil)

		rec := do(http.MethodPost, "/groups/join", map[string]string{"roomCode": "ab12cd"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uint64(5), decode[dto.GroupResponse](t, rec).ID)
	})

	t.Run("malformed room code fails binding", func(t *testing.T) {
		groups, _, do := groupRouter(t, &caller)

		rec := do(http.MethodPost, "/groups/join", map[string]string{"roomCode": "AB-1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		groups.AssertNotCalled(t, "JoinGroupByRoomCode", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGroupHandlerReads(t *testing.T) {
	t.Run("list keeps stored room codes", func(t *testing.T) {
		groups, _, do := groupRouter(t, nil)
		second := sampleGroup()
		second.ID, second.RoomCode, second.MemberCount = 6, "ZZ9X01", 3
		groups.On("ListGroups", mock.Anything).Return([]*entity.ShoppingGroup{sampleGroup(), second}, nil)

		rec := do(http.MethodGet, "/groups", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[[]dto.GroupResponse](t, rec)
		require.Len(t, list, 2)
		assert.Equal(t, "AB12CD", list[0].RoomCode)
		assert.Equal(t, int64(3), list[1].MemberCount)
	})

	t.Run("members", func(t *testing.T) {
		groups, _, do := groupRouter(t, nil)
		groups.On("ListMembers", mock.Anything, uint64(5)).Return([]*entity.GroupMembership{
			{GroupID: 5, UserID: 7, UserName: "Asha", Role: entity.RoleCreator},
		}, nil)

		rec := do(http.MethodGet, "/groups/5/members", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Asha", decode[[]dto.MemberResponse](t, rec)[0].UserName)
	})

	t.Run("aggregate cart", func(t *testing.T) {
		groups, _, do := groupRouter(t, nil)
		groups.On("GetAggregateCart", mock.Anything, uint64(5)).
			Return(&entity.AggregateCart{GroupID: 5, Total: 28550, ItemCount: 2, Quantity: 3}, nil)

		rec := do(http.MethodGet, "/groups/5/cart", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode[dto.AggregateCartResponse](t, rec)
		assert.Equal(t, int64(28550), body.Total)
		assert.Equal(t, "₹285.50", body.Formatted)
	})

	t.Run("missing group", func(t *testing.T) {
		groups, _, do := groupRouter(t, nil)
		groups.On("GetGroup", mock.Anything, uint64(77)).Return(nil, errs.ErrGroupNotFound)

		rec := do(http.MethodGet, "/groups/77", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, errs.CodeGroupNotFound, decodeError(t, rec).Code)
	})
}

func TestGroupHandlerCloseAndCart(t *testing.T) {
	t.Run("only the creator may close", func(t *testing.T) {
		groups, _, do := groupRouter(t, &caller)
		groups.On("CloseGroup", mock.Anything, caller, uint64(5)).Return(nil, errs.ErrNotGroupCreator)

		rec := do(http.MethodPost, "/groups/5/close", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("adds a cart item", func(t *testing.T) {
		groups, _, do := groupRouter(t, &caller)
		groups.On("AddCartItem", mock.Anything, caller, uint64(5), usecase.AddCartItemRequest{
			ProductID: "sku-1", Name: "Kaju Katli", Price: 12000, Quantity: 2,
		}).Return(&entity.CartItem{ID: 1, GroupID: 5, UserID: 7, Name: "Kaju Katli", Price: 12000, Quantity: 2}, nil)

		rec := do(http.MethodPost, "/groups/5/cart", map[string]any{
			"productId": "sku-1", "name": "Kaju Katli", "price": 12000, "quantity": 2,
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int64(24000), decode[dto.CartItemResponse](t, rec).Subtotal)
	})

	t.Run("zero quantity fails binding", func(t *testing.T) {
		_, _, do := groupRouter(t, &caller)

		rec := do(http.MethodPost, "/groups/5/cart", map[string]any{"name": "Kaju Katli", "price": 100, "quantity": 0})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("lists cart lines", func(t *testing.T) {
		groups, _, do := groupRouter(t, &caller)
		groups.On("ListCartItems", mock.Anything, uint64(5)).Return([]*entity.CartItem{
			{ID: 1, GroupID: 5, UserID: 7, Name: "Kaju Katli", Price: 12000, Quantity: 2},
			{ID: 2, GroupID: 5, UserID: 8, Name: "Soan Papdi", Price: 4550, Quantity: 1},
		}, nil)

		rec := do(http.MethodGet, "/groups/5/cart/items", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		items := decode[[]dto.CartItemResponse](t, rec)
		require.Len(t, items, 2)
		assert.Equal(t, int64(24000), items[0].Subtotal)
		assert.Equal(t, uint64(8), items[1].UserID)
	})

	t.Run("cart lines of an unknown group", func(t *testing.T) {
		groups, _, do := groupRouter(t, &caller)
		groups.On("ListCartItems", mock.Anything, uint64(99)).Return(nil, errs.ErrGroupNotFound)

		rec := do(http.MethodGet, "/groups/99/cart/items", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("oversized lines fail binding", func(t *testing.T) {
		groups, _, do := groupRouter(t, &caller)

		for _, body := range []map[string]any{
			{"name": "Kaju Katli", "price": int64(9223372036854775807), "quantity": 2},
			{"name": "Kaju Katli", "price": entity.MaxCartItemPrice + 1, "quantity": 1},
			{"name": "Kaju Katli", "price": 100, "quantity": entity.MaxCartItemQuantity + 1},
		} {
			rec := do(http.MethodPost, "/groups/5/cart", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, errs.CodeValidation, decodeError(t, rec).Code)
		}
		groups.AssertNotCalled(t, "AddCartItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPaymentHandlerGenerateIntent(t *testing.T) {
	t.Run("returns the intent", func(t *testing.T) {
		// Arrange
		_, payments, do := groupRouter(t, &caller)
		expires := time.Date(2025, 10, 18, 9, 0, 0, 0, time.UTC)
		payments.On("GenerateIntent", mock.Anything, usecase.GenerateIntentRequest{
			GroupID: 5, ItemID: 11, UserID: caller.UserID, Amount: 250,
		}).Return(&entity.PaymentIntent{
			ReferenceID: "VM5-11-7-1760691600000",
			Amount:      250,
			Currency:    "INR",
			URI:         "upi://pay?am=250&cu=INR",
			Artifact:    "data:image/png;base64,iVBORw0KGgo=",
			ExpiresAt:   expires,
		}, nil)

		// Act
		rec := do(http.MethodPost, "/groups/5/payment-intents", map[string]any{"itemId": 11, "amount": 250})

		// Assert
		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decode[dto.PaymentIntentResponse](t, rec)
		assert.Equal(t, "VM5-11-7-1760691600000", body.ReferenceID)
		assert.Contains(t, body.URI, "am=250")
		assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", body.QRCode)
		assert.Equal(t, expires, body.ExpiresAt)
	})

	t.Run("non positive amount is 400", func(t *testing.T) {
		_, payments, do := groupRouter(t, &caller)
		payments.On("GenerateIntent", mock.Anything, mock.Anything).Return(nil, errs.ErrInvalidAmount)

		rec := do(http.MethodPost, "/groups/5/payment-intents", map[string]any{"itemId": 11, "amount": 0})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidAmount, decodeError(t, rec).Code)
	})

	t.Run("render failure is 502", func(t *testing.T) {
		_, payments, do := groupRouter(t, &caller)
		payments.On("GenerateIntent", mock.Anything, mock.Anything).
			Return(nil, errs.NewExternalServiceError("qr", "render", assert.AnError))

		rec := do(http.MethodPost, "/groups/5/payment-intents", map[string]any{"itemId": 11, "amount": 250})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, errs.CodeExternalService, decodeError(t, rec).Code)
	})
}
