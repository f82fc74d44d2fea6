package api

import (
	stdhttp "net/http"
	"time"

	intconfig "doonconnect/internal/config"
	h "doonconnect/internal/http/handlers"
	"doonconnect/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NewRouter(env intconfig.Env, api *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logrus.Warnf("failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)

	root := r.Group("/api")
	{
		root.GET("/health", api.Health)
		root.GET("/db-check", api.DBCheck)

		// Catalog
		root.GET("/routes", api.Routes)
		root.GET("/routes/:id", api.RouteByID)
		root.GET("/routes/:id/stops", api.RouteStops)
		root.GET("/routes/:id/slots", api.RouteSlots)
		root.GET("/routes/:id/seats", api.RouteSeats)
		root.GET("/stops", api.Stops)
		root.GET("/stops/:id", api.StopByID)
		root.GET("/stops/:id/live", api.StopLiveBuses)

		// Auth
		auth := root.Group("/auth")
		auth.POST("/otp/request", api.RequestOTP)
		auth.POST("/otp/verify", api.VerifyOTP)

		// Profile (session required)
		profile := root.Group("/profile", middleware.RequireUser(secret))
		profile.GET("", api.GetProfile)
		profile.PUT("", api.UpdateProfile)
		profile.POST("/logout", api.Logout)

		// Booking flow
		bookings := root.Group("/bookings")
		bookings.POST("", api.OpenBooking)
		bookings.GET("/:id", api.GetBooking)
		bookings.POST("/:id/auth", api.CompleteBookingAuth)
		bookings.POST("/:id/stops", api.SelectStops)
		bookings.POST("/:id/seats", api.SelectSeats)
		bookings.GET("/:id/quote", api.BookingQuote)
		bookings.POST("/:id/payment", api.SelectPayment)
		bookings.POST("/:id/confirm", api.ConfirmBooking)
		bookings.POST("/:id/back", api.BookingBack)
		bookings.DELETE("/:id", api.CancelBooking)

		// Tickets
		tickets := root.Group("/tickets")
		tickets.GET("", api.ListTickets)
		tickets.GET("/:id", api.GetTicket)
		tickets.DELETE("/:id", api.DeleteTicket)
		tickets.GET("/:id/pdf", api.TicketPDF)
		tickets.GET("/:id/qr", api.TicketQR)

		// Live fleet
		live := root.Group("/live")
		live.GET("/buses", api.LiveBuses)
		live.GET("/ws", api.LiveWS)

		// Admin console
		admin := root.Group("/admin")
		admin.POST("/login", api.AdminLogin)
		protected := admin.Group("", middleware.RequireAdmin(secret))
		protected.GET("/session", api.AdminSession)
		protected.POST("/logout", api.AdminLogout)
		protected.GET("/analytics", api.AdminAnalytics)
	}

	return r
}
