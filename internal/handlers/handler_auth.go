package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ark_management_app/internal/core/ports/services"
	"github.com/SscSPs/ark_management_app/internal/dto"
	"github.com/SscSPs/ark_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles login, registration and password recovery.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the routes for authentication. limit guards the routes
// that can be used to probe credentials or send mail.
func registerAuthRoutes(api *gin.RouterGroup, authService portssvc.AuthSvcFacade, limit, authenticate gin.HandlerFunc) {
	h := newAuthHandler(authService)

	auth := api.Group("/auth")
	{
		auth.POST("/login", limit, h.login)
		auth.POST("/register", h.register)
		auth.POST("/forgot-password", limit, h.forgotPassword)
		auth.POST("/reset-password/:token", h.resetPassword)
		auth.GET("/me", authenticate, h.me)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a session token with the caller's profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Login")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// register godoc
// @Summary Register the user of a client
// @Description Redeems a one-time registration token and creates the client's user.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid, expired or used token, or email taken"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Registration")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Usuário registrado com sucesso!"})
}

// forgotPassword godoc
// @Summary Request a password reset link
// @Description Always answers success so the endpoint does not reveal which emails exist.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/forgot-password [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req); err != nil {
		respondWithError(c, err, "Password reset request")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Se o e-mail estiver cadastrado, um link de redefinição foi enviado."})
}

// resetPassword godoc
// @Summary Reset a password
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token from the emailed link"
// @Param request body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired token"
// @Router /auth/reset-password/{token} [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), c.Param("token"), req); err != nil {
		respondWithError(c, err, "Password reset")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Senha redefinida com sucesso!"})
}

// me godoc
// @Summary Current user
// @Description Returns the caller with the current license state of its client.
// @Tags auth
// @Produce json
// @Success 200 {object} domain.Principal
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	me, err := h.authService.Me(c.Request.Context(), principal)
	if err != nil {
		respondWithError(c, err, "Load current user")
		return
	}
	c.JSON(http.StatusOK, me)
}
