package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mithil2603/machinery-backend/internal/auth"
	"github.com/Mithil2603/machinery-backend/internal/middleware"
	"github.com/Mithil2603/machinery-backend/internal/services"
	"github.com/Mithil2603/machinery-backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	cookies     *auth.CookieManager
	tokens      *auth.TokenManager
}

func NewAuthHandler(
	base *BaseHandler,
	authService services.AuthService,
	cookies *auth.CookieManager,
	tokens *auth.TokenManager,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cookies:     cookies,
		tokens:      tokens,
	}
}

// RegisterRoutes registers the credential lifecycle routes.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
	rg.POST("/forgot-password", h.ForgotPassword)
	rg.GET("/reset-password/:token", h.ValidateResetToken)
	rg.POST("/reset-password/:token", h.ResetPassword)

	session := rg.Group("")
	session.Use(middleware.SessionMiddleware(h.tokens))
	{
		session.POST("/logout", h.Logout)
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Signup(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully.",
		"user_id": user.UserID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cookies.Attach(c, result.Token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"token":   result.Token,
		"user":    result.User,
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent."})
}

func (h *AuthHandler) ValidateResetToken(c *gin.Context) {
	token := c.Param("token")

	if err := h.authService.ValidateResetToken(token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token is valid."})
}

// ResetPassword consumes the reset token and rotates the session cookie
// so the user stays signed in with the new credentials.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.authService.ResetPassword(token, req.NewPassword)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cookies.Attach(c, result.Token)
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully."})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}
