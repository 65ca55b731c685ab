package controllers

import (
	"errors"
	"net/http"
	"strings"

	"tour-backend/auth"
	"tour-backend/utils"

	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthController struct {
	manager *auth.Manager
}

func NewAuthController(manager *auth.Manager) *AuthController {
	return &AuthController{manager: manager}
}

// Login handles POST /api/auth/login. Wrong username and wrong password get
// the same generic message; during the lockout window the attempt is
// rejected before credentials are even looked at.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if payload.Username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	token, err := ctrl.manager.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrLocked) {
			utils.JSONError(c, http.StatusTooManyRequests, err.Error())
			return
		}
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Session handles GET /api/auth/session: the dashboard's boot check. An
// absent, tampered or expired token just reads as unauthenticated.
func (ctrl *AuthController) Session(c *gin.Context) {
	token := bearerToken(c)
	authenticated := token != "" && ctrl.manager.Validate(token) == nil
	c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
}

// Logout exists for form symmetry. Sessions are stateless tokens, so the
// client discarding its copy is the whole operation.
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
