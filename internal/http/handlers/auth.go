package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hbagde424/ElectionAT-sub001/internal/http/response"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
	"github.com/hbagde424/ElectionAT-sub001/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService) *AuthHandler {
	return &AuthHandler{log: log.With("handler", "AuthHandler"), authService: authService}
}

// POST /api/auth/login
// body: { "email": "...", "password": "..." }
func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindBody(c, ah.log, &req) {
		return
	}
	token, user, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondError(c, ah.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      token,
		"expires_in": int(ah.authService.TokenTTL().Seconds()),
		"data":       user,
	})
}

// POST /api/auth/register (superAdmin)
func (ah *AuthHandler) Register(c *gin.Context) {
	var in services.UserInput
	if !bindBody(c, ah.log, &in) {
		return
	}
	user, err := ah.authService.Register(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, ah.log, err)
		return
	}
	response.RespondCreated(c, user)
}

// GET /api/auth/me
func (ah *AuthHandler) Me(c *gin.Context) {
	me, err := ah.authService.Me(c.Request.Context())
	if err != nil {
		response.RespondError(c, ah.log, err)
		return
	}
	response.RespondOK(c, me)
}

// POST /api/auth/logout
func (ah *AuthHandler) Logout(c *gin.Context) {
	if err := ah.authService.Logout(c.Request.Context()); err != nil {
		response.RespondError(c, ah.log, err)
		return
	}
	response.RespondOK(c, gin.H{})
}
