package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "doonconnect"})
}

func (a *API) DBCheck(c *gin.Context) {
	if a.DB == nil {
		c.JSON(http.StatusOK, gin.H{"message": "running on in-memory storage"})
		return
	}
	var count int
	if err := a.DB.QueryRow("SELECT COUNT(*) FROM kv_blobs").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "stored_blobs": count})
}
