package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/wayfarer-app/wayfarer/app/logic/v1"
	"github.com/wayfarer-app/wayfarer/app/response"
	"github.com/wayfarer-app/wayfarer/pkg/utils"
)

// GetSharingOverview serves the owner dashboard: config, direct shares and
// live engagement stats in one payload.
func (s *HttpSrv) GetSharingOverview(c *gin.Context) {
	tripID, _ := c.Params.Get("tripid")

	res, err := v1.NewSharingLogic(c, s.Core).GetSharingOverview(tripID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, res)
}

func (s *HttpSrv) UpdateSharingSettings(c *gin.Context) {
	tripID, _ := c.Params.Get("tripid")

	var req v1.UpdateSharingSettingsRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	cfg, err := v1.NewSharingLogic(c, s.Core).UpdateSettings(tripID, req)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, cfg)
}

func (s *HttpSrv) ShareTripWithUser(c *gin.Context) {
	tripID, _ := c.Params.Get("tripid")

	var req v1.ShareWithUserRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	share, err := v1.NewSharingLogic(c, s.Core).ShareWithUser(tripID, req)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, share)
}

type ClaimSharesResponse struct {
	Claimed int64 `json:"claimed"`
}

// ClaimShares binds pending email invites to the authenticated account.
func (s *HttpSrv) ClaimShares(c *gin.Context) {
	claimed, err := v1.NewSharingLogic(c, s.Core).ClaimShares()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, ClaimSharesResponse{Claimed: claimed})
}
