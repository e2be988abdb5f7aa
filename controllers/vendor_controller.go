package controllers

import (
	"strconv"

	"github.com/IshuIsSleepy/KhanaKhalo/pkg/resp"
	"github.com/IshuIsSleepy/KhanaKhalo/services"
	"github.com/IshuIsSleepy/KhanaKhalo/utils"
	"github.com/gin-gonic/gin"
)

type VendorController struct {
	Service *services.VendorService
}

func NewVendorController(s *services.VendorService) *VendorController {
	return &VendorController{Service: s}
}

// GET / — vendors of the caller's university.
func (ctl *VendorController) Home(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	uni, vendors, err := ctl.Service.HomeForUser(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"university": gin.H{"id": uni.ID, "name": uni.Name},
		"vendors":    vendors,
	})
}

// GET /vendor/:id/ — a vendor's menu.
func (ctl *VendorController) Menu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid vendor id")
		return
	}

	vendor, items, err := ctl.Service.Menu(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"vendor": gin.H{
			"id":          vendor.ID,
			"name":        vendor.Name,
			"location":    vendor.Location,
			"crowdStatus": vendor.CrowdStatus(),
			"avgRating":   vendor.AvgRating,
		},
		"items": items,
	})
}

// POST /my-vendor/menu/ — owner adds a menu item.
func (ctl *VendorController) CreateMenuItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Name == "" || req.Price <= 0 {
		resp.BadRequest(c, "name and a positive price are required")
		return
	}

	item, err := ctl.Service.CreateMenuItem(uid, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"item": item})
}

// PATCH /my-vendor/menu/:id/ — owner edits price/availability/options.
func (ctl *VendorController) UpdateMenuItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	var body struct {
		Name             *string  `json:"name"`
		ShortDescription *string  `json:"shortDescription"`
		Price            *float64 `json:"price"`
		IsAvailable      *bool    `json:"isAvailable"`
		IsVegetarian     *bool    `json:"isVegetarian"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.ShortDescription != nil {
		updates["short_description"] = *body.ShortDescription
	}
	if body.Price != nil {
		if *body.Price <= 0 {
			resp.BadRequest(c, "price must be positive")
			return
		}
		updates["price"] = *body.Price
	}
	if body.IsAvailable != nil {
		updates["is_available"] = *body.IsAvailable
	}
	if body.IsVegetarian != nil {
		updates["is_vegetarian"] = *body.IsVegetarian
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	item, err := ctl.Service.UpdateMenuItem(uid, uint(id), updates)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"item": item})
}
