package controllers

import (
	"net/http"

	"github.com/IshuIsSleepy/KhanaKhalo/pkg/resp"
	"github.com/IshuIsSleepy/KhanaKhalo/services"
	"github.com/IshuIsSleepy/KhanaKhalo/utils"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
	Email        string `json:"email" binding:"required,email"`
	RollNo       string `json:"roll_no" binding:"required"`
	Phone        string `json:"phone"`
	UniversityID uint   `json:"university_id"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

// POST /register/
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Service.Register(services.RegisterInput{
		Username:     req.Username,
		Password:     req.Password,
		Email:        req.Email,
		RollNo:       req.RollNo,
		Phone:        req.Phone,
		UniversityID: req.UniversityID,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp.Created(c, gin.H{"user": gin.H{
		"id": user.ID, "username": user.Username, "email": user.Email, "role": user.Role,
	}})
}

// POST /login/
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Service.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid username or password")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"token":  token,
		"user": gin.H{
			"id": user.ID, "username": user.Username, "email": user.Email, "role": user.Role,
		},
	})
}

// POST /logout/ — tokens are stateless, the client just drops it.
func (a *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "logged out"})
}

// GET /me/
func (a *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	profile, err := a.Service.GetProfile(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"profile": gin.H{
		"userId":     profile.UserID,
		"rollNo":     profile.RollNo,
		"phone":      profile.Phone,
		"university": gin.H{"id": profile.University.ID, "name": profile.University.Name},
	}})
}
