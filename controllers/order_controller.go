package controllers

import (
	"strconv"

	"github.com/IshuIsSleepy/KhanaKhalo/entity"
	"github.com/IshuIsSleepy/KhanaKhalo/pkg/resp"
	"github.com/IshuIsSleepy/KhanaKhalo/services"
	"github.com/IshuIsSleepy/KhanaKhalo/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// POST /create-order/
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Create(uid, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp.Created(c, gin.H{"order_id": out.OrderID, "code": out.Code, "total": out.Total})
}

// GET /my-orders/
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := oc.Service.ListForUser(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": items})
}

// GET /orders/:id/ — detail, own orders only.
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	detail, err := oc.Service.DetailForUser(uid, uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": detail})
}

// GET /vendor-dashboard/ — incoming orders of the caller's vendor.
func (oc *OrderController) Dashboard(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var status *entity.OrderStatus
	if s := c.Query("status"); s != "" {
		parsed, ok := entity.ParseOrderStatus(s)
		if !ok {
			resp.BadRequest(c, "unknown order status")
			return
		}
		status = &parsed
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	orders, err := oc.Service.DashboardForOwner(uid, status, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// POST /update-order/:id/
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Service.UpdateStatus(uid, uint(id), body.Status); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{})
}
