package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/wayfarer-app/wayfarer/app/logic/v1"
	"github.com/wayfarer-app/wayfarer/app/response"
	"github.com/wayfarer-app/wayfarer/pkg/utils"
)

func viewerFingerprint(c *gin.Context) string {
	return utils.AnonymousFingerprint(c.ClientIP(), c.Request.UserAgent())
}

// GetSharedTripByToken is the public share-link path, anonymous allowed.
func (s *HttpSrv) GetSharedTripByToken(c *gin.Context) {
	token, _ := c.Params.Get("token")

	res, err := v1.NewTripLogic(c, s.Core).ViewByToken(token, viewerFingerprint(c))
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, res)
}

// GetTrip is the id-addressed view for authenticated users, typically
// direct-share recipients. A share token may ride along as a query param.
func (s *HttpSrv) GetTrip(c *gin.Context) {
	tripID, _ := c.Params.Get("tripid")

	res, err := v1.NewTripLogic(c, s.Core).ViewTrip(tripID, c.Query("token"), viewerFingerprint(c))
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, res)
}

type CloneTripResponse struct {
	TripID string `json:"trip_id"`
}

func (s *HttpSrv) CloneTrip(c *gin.Context) {
	tripID, _ := c.Params.Get("tripid")

	newTripID, err := v1.NewCloneLogic(c, s.Core).CloneTrip(tripID, c.Query("token"))
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, CloneTripResponse{TripID: newTripID})
}
