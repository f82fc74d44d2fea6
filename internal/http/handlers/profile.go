package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) GetProfile(c *gin.Context) {
	profile, err := a.Auth.Profile()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type profileUpdatePayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a *API) UpdateProfile(c *gin.Context) {
	var in profileUpdatePayload
	if !BindJSONOrError(c, &in) {
		return
	}
	profile, err := a.Auth.UpdateProfile(in.Name, in.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Logout clears the profile together with the ticket collection.
func (a *API) Logout(c *gin.Context) {
	if err := a.Auth.Logout(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
