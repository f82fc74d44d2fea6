package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type adminLoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) AdminLogin(c *gin.Context) {
	var in adminLoginPayload
	if !BindJSONOrError(c, &in) {
		return
	}
	session, token, err := a.Admin.Login(in.Email, in.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"token":   token,
	})
}

func (a *API) AdminSession(c *gin.Context) {
	session, err := a.Admin.Session()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (a *API) AdminLogout(c *gin.Context) {
	if err := a.Admin.Logout(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// AdminAnalytics returns the mock daily ridership series for the console
// charts.
func (a *API) AdminAnalytics(c *gin.Context) {
	points, err := a.Admin.Analytics(c.Query("from"), c.Query("to"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}
