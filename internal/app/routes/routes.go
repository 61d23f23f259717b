package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/campusconnect/internal/app/controllers"
	"github.com/yigit/campusconnect/internal/middleware"
)

// Controllers groups every page handler the router needs
type Controllers struct {
	Index     *controllers.IndexController
	Auth      *controllers.AuthController
	Dashboard *controllers.DashboardController
	Alumni    *controllers.AlumniController
	Forum     *controllers.ForumController
	Profile   *controllers.ProfileController
	Chatbot   *controllers.ChatbotController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	// --- Public pages ---
	router.GET("/", ctrl.Index.Index)
	router.GET("/login", ctrl.Auth.ShowLogin)
	router.POST("/login", ctrl.Auth.Login)
	router.GET("/register", ctrl.Auth.ShowRegister)
	router.POST("/register", ctrl.Auth.Register)

	// --- Signed-in pages ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.RequireSession())
	{
		authenticated.GET("/dashboard", ctrl.Dashboard.Show)

		alumni := authenticated.Group("/alumni")
		{
			alumni.GET("", ctrl.Alumni.Index)
			alumni.POST("/:id/connect", ctrl.Alumni.Connect)
		}

		authenticated.GET("/forum", ctrl.Forum.Index)
		authenticated.POST("/forum", ctrl.Forum.Create)

		authenticated.GET("/profile", ctrl.Profile.Show)
		authenticated.POST("/profile", ctrl.Profile.Save)
	}

	// The assistant works without an account
	chatbot := router.Group("/chatbot")
	{
		chatbot.GET("", ctrl.Chatbot.Show)
		chatbot.POST("/ask", ctrl.Chatbot.Ask)
	}

	router.POST("/logout", ctrl.Auth.Logout)
	router.GET("/healthz", ctrl.Index.Health)

	router.NoRoute(middleware.NotFound())
}
