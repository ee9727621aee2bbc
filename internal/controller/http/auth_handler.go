package http

import (
	"net/http"

	"github.com/Bobur2828/Technical-assignment/internal/usecase"
	"github.com/Bobur2828/Technical-assignment/pkg/jwt"
	"github.com/Bobur2828/Technical-assignment/pkg/logger"
	"github.com/Bobur2828/Technical-assignment/pkg/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userUseCase usecase.UserUseCase
	jwtService  *jwt.Service
	sessions    session.Registry
	logger      *logger.Logger
}

func NewAuthHandler(userUseCase usecase.UserUseCase, jwtService *jwt.Service, sessions session.Registry, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		userUseCase: userUseCase,
		jwtService:  jwtService,
		sessions:    sessions,
		logger:      logger,
	}
}

type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a follower account from email, password, confirmation and first name
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /auth/register/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.userUseCase.Register(req.FirstName, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	// The password never appears in the response, hashed or otherwise.
	respondSuccess(c, http.StatusCreated, gin.H{
		"message": "Registration successful",
		"email":   user.Email,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate by email and password; establishes a token session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	_ = c.ShouldBindJSON(&req)

	if req.Email == "" || req.Password == "" {
		// Long-standing contract: missing credentials echo empty-string
		// placeholders next to the envelope.
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "fail",
			"data":   gin.H{"message": "Email and password are required"},
			"input":  gin.H{"email": "", "password": ""},
		})
		return
	}

	user, err := h.userUseCase.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	token, sessionID, err := h.jwtService.GenerateSessionToken(user.ID, string(user.Role))
	if err != nil {
		h.logger.Error("Failed to generate token: %v", err)
		respondFail(c, http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if err := h.sessions.Create(c.Request.Context(), sessionID, user.ID, h.jwtService.TTL()); err != nil {
		h.logger.Error("Failed to create session: %v", err)
		respondFail(c, http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revoke the current session; the token stops working immediately
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/logout/ [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// The auth middleware guarantees a live session here; an unauthenticated
	// call never reaches this handler.
	sessionID := c.GetString("session_id")

	if err := h.sessions.Revoke(c.Request.Context(), sessionID); err != nil {
		h.logger.Error("Failed to revoke session: %v", err)
		respondFail(c, http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"message": "Logout successful"})
}
