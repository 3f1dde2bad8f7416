package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Einengutenmorgen/LSS-Twon-DB/pkg/jwt"
)

// AuthHandler exchanges the maintenance password for a bearer token.
type AuthHandler struct {
	jwtSecret         string
	adminPasswordHash string
}

func NewAuthHandler(jwtSecret, adminPasswordHash string) *AuthHandler {
	return &AuthHandler{jwtSecret: jwtSecret, adminPasswordHash: adminPasswordHash}
}

// TokenInput defines the structure for a token request.
type TokenInput struct {
	Password string `json:"password" binding:"required" example:"password123"`
}

// IssueToken godoc
// @Summary      Issue a maintenance-API token
// @Description  Verifies the maintenance password against the configured hash and returns a bearer token for the admin routes.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body TokenInput true "Maintenance password"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var input TokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.adminPasswordHash == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Maintenance access is not configured"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.adminPasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := jwt.GenerateToken("admin", h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
