package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renthub/internal/common"
	"renthub/internal/services"
)

// MembershipHandlers exposes the landlord's own membership/trial status.
type MembershipHandlers struct {
	subscriptionService services.SubscriptionService
}

func NewMembershipHandlers(subscriptionService services.SubscriptionService) *MembershipHandlers {
	return &MembershipHandlers{subscriptionService: subscriptionService}
}

// GetStatus handles GET /v1/membership
func (h *MembershipHandlers) GetStatus(c echo.Context) error {
	ctx := c.Request().Context()

	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.RespondError(c, common.ErrUnauthorized)
	}

	status, err := h.subscriptionService.MembershipStatus(ctx, landlordID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, status)
}

// RecordPayment handles POST /v1/membership/pay
func (h *MembershipHandlers) RecordPayment(c echo.Context) error {
	ctx := c.Request().Context()

	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.RespondError(c, common.ErrUnauthorized)
	}

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	subscription, err := h.subscriptionService.RecordPayment(ctx, landlordID, req.Amount)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"subscription": subscription,
	})
}
