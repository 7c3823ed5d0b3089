package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	v1 "github.com/wayfarer-app/wayfarer/app/logic/v1"
	"github.com/wayfarer-app/wayfarer/app/response"
	"github.com/wayfarer-app/wayfarer/pkg/utils"
)

type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
}

func (s *HttpSrv) LikeSharedTrip(c *gin.Context) {
	token, _ := c.Params.Get("token")

	liked, err := v1.NewEngagementLogic(c, s.Core).ToggleLike(token)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, ToggleLikeResponse{Liked: liked})
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateCommentResponse struct {
	CommentID string `json:"comment_id"`
}

func (s *HttpSrv) CommentSharedTrip(c *gin.Context) {
	token, _ := c.Params.Get("token")

	var req CreateCommentRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	commentID, err := v1.NewEngagementLogic(c, s.Core).AddComment(token, req.Content)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, CreateCommentResponse{CommentID: strconv.FormatInt(commentID, 10)})
}

func (s *HttpSrv) ListSharedTripComments(c *gin.Context) {
	token, _ := c.Params.Get("token")

	page, _ := strconv.ParseUint(c.DefaultQuery("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseUint(c.DefaultQuery("pagesize", "20"), 10, 64)

	list, err := v1.NewEngagementLogic(c, s.Core).ListComments(token, page, pageSize)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, list)
}
