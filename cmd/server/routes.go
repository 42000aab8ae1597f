package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"percytext.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	brandHandler    *handlers.BrandHandler
	campaignHandler *handlers.CampaignHandler
	leadHandler     *handlers.LeadHandler
	authMiddleware  gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", d.authHandler.SignUp)
			auth.POST("/signin", d.authHandler.SignIn)
			auth.POST("/signout", d.authHandler.SignOut)
			auth.POST("/reset-password", d.authHandler.ResetPassword)
			auth.GET("/verify", d.authHandler.VerifyToken)
			auth.POST("/google", d.authHandler.SignInWithGoogle)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(d.authMiddleware)
		{
			users.GET("", d.userHandler.ListUsers)
			users.GET("/:id", d.userHandler.GetUser)
			users.GET("/search/:query", d.userHandler.SearchUsers)
			users.PUT("/:id", d.userHandler.UpdateUser)
			users.PATCH("/:id/status", d.userHandler.UpdateUserStatus)
			users.DELETE("/:id", d.userHandler.DeleteUser)
		}

		// Brand routes (protected)
		brands := api.Group("/brands")
		brands.Use(d.authMiddleware)
		{
			brands.POST("", d.brandHandler.CreateBrand)
			brands.GET("", d.brandHandler.ListBrands)
			brands.GET("/:id", d.brandHandler.GetBrand)
			brands.GET("/user/:userId", d.brandHandler.GetBrandsByUser)
			brands.PUT("/:id", d.brandHandler.UpdateBrand)
			brands.PATCH("/:id/status", d.brandHandler.UpdateBrandStatus)
			brands.DELETE("/:id", d.brandHandler.DeleteBrand)
			brands.POST("/:id/submit-tcr", d.brandHandler.SubmitBrandToTCR)
			brands.GET("/:id/tcr-status", d.brandHandler.GetTCRBrandStatus)
			brands.GET("/:id/registrations", d.brandHandler.GetBrandRegistrations)
		}

		// Campaign routes (protected)
		campaigns := api.Group("/campaigns")
		campaigns.Use(d.authMiddleware)
		{
			campaigns.POST("", d.campaignHandler.CreateCampaign)
			campaigns.GET("", d.campaignHandler.ListCampaigns)
			campaigns.GET("/:id", d.campaignHandler.GetCampaign)
			campaigns.GET("/user/:userId", d.campaignHandler.GetCampaignsByUser)
			campaigns.GET("/brand/:brandId", d.campaignHandler.GetCampaignsByBrand)
			campaigns.PUT("/:id", d.campaignHandler.UpdateCampaign)
			campaigns.PATCH("/:id/status", d.campaignHandler.UpdateCampaignStatus)
			campaigns.DELETE("/:id", d.campaignHandler.DeleteCampaign)
			campaigns.POST("/:id/submit-tcr", d.campaignHandler.SubmitCampaignToTCR)
			campaigns.GET("/:id/tcr-status", d.campaignHandler.GetTCRCampaignStatus)
		}

		// Lead intake is public: the contact form posts here unauthenticated
		api.POST("/leads", d.leadHandler.CreateLead)

		// Lead management routes (protected)
		leads := api.Group("/leads")
		leads.Use(d.authMiddleware)
		{
			leads.GET("", d.leadHandler.ListLeads)
			leads.GET("/:id", d.leadHandler.GetLead)
			leads.GET("/email/:email", d.leadHandler.GetLeadByEmail)
			leads.GET("/search/:query", d.leadHandler.SearchLeads)
			leads.GET("/:id/activities", d.leadHandler.GetLeadActivities)
			leads.POST("/:id/activities", d.leadHandler.CreateLeadActivity)
			leads.PATCH("/:id/status", d.leadHandler.UpdateLeadStatus)
			leads.PATCH("/:id/priority", d.leadHandler.UpdateLeadPriority)
			leads.PATCH("/:id/assign", d.leadHandler.AssignLead)
		}
	}
}

// applyCORSMiddleware applies the allow-list CORS policy. An empty allow-list
// echoes the request origin, which suits local development.
func applyCORSMiddleware(r *gin.Engine, allowedOrigins string) {
	allowed := map[string]bool{}
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = true
		}
	}

	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (len(allowed) == 0 || allowed[origin]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "percytext-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
