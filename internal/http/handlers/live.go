package handlers

import (
	"net/http"

	"doonconnect/internal/http/middleware"
	"doonconnect/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect cross-origin from the web app; CORS is
	// enforced at the HTTP layer for the rest of the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (a *API) LiveBuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"buses": a.Live.Snapshot()})
}

func (a *API) StopLiveBuses(c *gin.Context) {
	buses, err := a.Live.BusesForStop(a.Catalog, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"buses": buses})
}

// LiveWS streams fleet position updates. Each message is the full snapshot;
// slow readers miss intermediate updates instead of stalling the simulation.
func (a *API) LiveWS(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	reqID := middleware.GetRequestID(c)
	updates, cancel := a.Live.Subscribe()
	defer cancel()

	if err := conn.WriteJSON(gin.H{"buses": a.Live.Snapshot()}); err != nil {
		return
	}

	// Reader goroutine notices the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case buses, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(gin.H{"buses": buses}); err != nil {
				utils.LogEvent(reqID, "live", "ws_write", "client dropped: "+err.Error())
				return
			}
		}
	}
}
