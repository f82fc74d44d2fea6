package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type otpRequestPayload struct {
	Phone string `json:"phone"`
}

func (a *API) RequestOTP(c *gin.Context) {
	var in otpRequestPayload
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := a.Auth.RequestOTP(c.Request.Context(), in.Phone); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

type otpVerifyPayload struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
	Name  string `json:"name"`
}

func (a *API) VerifyOTP(c *gin.Context) {
	var in otpVerifyPayload
	if !BindJSONOrError(c, &in) {
		return
	}
	profile, token, err := a.Auth.VerifyOTP(c.Request.Context(), in.Phone, in.Code, in.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"token":   token,
	})
}
