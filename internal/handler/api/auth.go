package api

import (
	"errors"
	"net/http"

	reqdto "acacia-booking/internal/handler/dto/request"
	resdto "acacia-booking/internal/handler/dto/response"
	"acacia-booking/internal/handler/middleware"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/commands"
	"acacia-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.authCommands.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already registered",
			})
		case errors.Is(err, errs.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	pair, user, err := h.authCommands.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTokenPair(pair, user))
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	pair, err := h.authCommands.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTokenValidation):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired refresh token",
			})
		case errors.Is(err, commands.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout is stateless: the client discards its tokens.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	user, err := h.userQueries.GetByID(c.Request.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
