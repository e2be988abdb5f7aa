package controllers

import (
	"strconv"

	"github.com/IshuIsSleepy/KhanaKhalo/pkg/resp"
	"github.com/IshuIsSleepy/KhanaKhalo/services"
	"github.com/IshuIsSleepy/KhanaKhalo/utils"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Service: s}
}

// POST /reviews/
func (rc *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.Service.Create(uid, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"review": review})
}

// GET /vendor/:id/reviews/
func (rc *ReviewController) ListForVendor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid vendor id")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	reviews, err := rc.Service.ListForVendor(uint(id), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"reviews": reviews})
}
