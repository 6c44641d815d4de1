package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guestadmin/internal/http/middleware"
	"guestadmin/internal/services"
	"guestadmin/internal/utils"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login proxies credentials to the backend and wraps the returned API
// token into the gateway's own session JWT.
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if fields := services.ValidateLoginForm(services.LoginForm{Email: req.Email, Password: req.Password}); fields != nil {
		RespondDomainError(c, fields)
		return
	}

	result, err := client.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	session, err := middleware.MintSession(
		env.SessionSecret,
		result.Token,
		string(result.User.Role),
		result.User.Name,
		result.User.Email,
	)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create session", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "operator logged in")
	c.JSON(http.StatusOK, gin.H{
		"token": session,
		"user": gin.H{
			"id":     result.User.ID,
			"name":   result.User.Name,
			"email":  result.User.Email,
			"role":   result.User.Role,
			"status": result.User.Status,
		},
	})
}

// Logout revokes the backend token behind the session. The session JWT
// itself simply expires; the client drops it.
func Logout(c *gin.Context) {
	if err := client.Logout(c.Request.Context()); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "auth", "logout", "operator logged out")
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
