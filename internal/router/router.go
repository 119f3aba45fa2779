package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quickmed/accounts-api/internal/handlers"
	"github.com/quickmed/accounts-api/internal/middleware"
	"github.com/quickmed/accounts-api/internal/model"
)

// Setup wires every route. Kept out of main so tests serve the exact same
// router the binary does.
func Setup(h *handlers.Handler, secret, corsOrigin string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	rl := middleware.NewRateLimiter(5, 10)
	r.POST("/signup", middleware.RateLimit(rl), h.Signup)
	r.POST("/login", middleware.RateLimit(rl), h.Login)

	doctor := r.Group("/doctor")
	doctor.Use(middleware.Auth(secret), middleware.RequireRole(model.RoleDoctor, "Only doctors can access this endpoint"))
	{
		doctor.GET("/profile", h.GetDoctorProfile)
		doctor.PUT("/profile", h.UpdateDoctorProfile)
		doctor.PATCH("/profile", h.PatchDoctorProfile)
	}

	vendor := r.Group("/vendor")
	vendor.Use(middleware.Auth(secret), middleware.RequireRole(model.RoleVendor, "User is not a vendor"))
	{
		vendor.GET("/profile", h.GetVendorProfile)
		vendor.PUT("/profile", h.UpdateVendorProfile)
	}

	return r
}
