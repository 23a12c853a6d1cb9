package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renthub/internal/common"
	"renthub/internal/services"
)

// InvitationHandlers handles the invitation-token lifecycle endpoints.
type InvitationHandlers struct {
	invitationService services.InvitationService
}

func NewInvitationHandlers(invitationService services.InvitationService) *InvitationHandlers {
	return &InvitationHandlers{invitationService: invitationService}
}

// Regenerate handles POST /v1/units/:id/invite. The caller must be the
// landlord owning the unit's property; anything else is a 404.
func (h *InvitationHandlers) Regenerate(c echo.Context) error {
	ctx := c.Request().Context()

	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.RespondError(c, common.ErrUnauthorized)
	}

	unitID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	token, err := h.invitationService.Regenerate(ctx, landlordID, unitID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"invitation_token": token,
	})
}

// Resolve handles GET /v1/invite/:token. Public: an invitation link is
// opened before the claimant has an account.
func (h *InvitationHandlers) Resolve(c echo.Context) error {
	unit, err := h.invitationService.Resolve(c.Request().Context(), c.Param("token"))
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"unit": unit,
	})
}

// Assignments handles GET /v1/units/assignments, listing the units the
// authenticated tenant is linked to.
func (h *InvitationHandlers) Assignments(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.RespondError(c, common.ErrUnauthorized)
	}

	links, err := h.invitationService.Assignments(ctx, tenantID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"assignments": links,
	})
}

// Claim handles POST /v1/invite/:token/claim
func (h *InvitationHandlers) Claim(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.RespondError(c, common.ErrUnauthorized)
	}

	link, err := h.invitationService.Claim(ctx, tenantID, c.Param("token"))
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"link": link,
	})
}
