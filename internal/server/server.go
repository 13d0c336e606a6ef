package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/YatruSathi/-yatrusathi-backend/config"
	"github.com/YatruSathi/-yatrusathi-backend/internal/handlers"
	"github.com/YatruSathi/-yatrusathi-backend/internal/middleware"
	"github.com/YatruSathi/-yatrusathi-backend/internal/repositories"
)

type Repositories struct {
	Users         repositories.UserRepository
	Tokens        repositories.TokenRepository
	Events        repositories.EventRepository
	Bookings      repositories.BookingRepository
	Favorites     repositories.FavoriteRepository
	Reviews       repositories.ReviewRepository
	ChatMessages  repositories.ChatMessageRepository
	Notifications repositories.NotificationRepository
	Profiles      repositories.ProfileRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:         repositories.NewUserRepository(db),
		Tokens:        repositories.NewTokenRepository(db),
		Events:        repositories.NewEventRepository(db),
		Bookings:      repositories.NewBookingRepository(db),
		Favorites:     repositories.NewFavoriteRepository(db),
		Reviews:       repositories.NewReviewRepository(db),
		ChatMessages:  repositories.NewChatMessageRepository(db),
		Notifications: repositories.NewNotificationRepository(db),
		Profiles:      repositories.NewProfileRepository(db),
	}
}

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	SetupRoutes(r, NewRepositories(db))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func SetupRoutes(r *gin.Engine, repos Repositories) {
	authHandler := handlers.NewAuthHandler(repos.Users, repos.Tokens, repos.Profiles)
	eventHandler := handlers.NewEventHandler(repos.Events)
	bookingHandler := handlers.NewBookingHandler(repos.Bookings, repos.Events, repos.Users, repos.Notifications)
	favoriteHandler := handlers.NewFavoriteHandler(repos.Favorites, repos.Events)
	reviewHandler := handlers.NewReviewHandler(repos.Reviews, repos.Events, repos.Users)
	chatHandler := handlers.NewChatHandler(repos.ChatMessages, repos.Events, repos.Users)
	notificationHandler := handlers.NewNotificationHandler(repos.Notifications)
	profileHandler := handlers.NewProfileHandler(repos.Profiles)
	userHandler := handlers.NewUserHandler(repos.Users)

	public := r.Group("/v1")
	{
		public.POST("/auth/signup", authHandler.Signup)
		public.POST("/auth/login", authHandler.Login)

		public.GET("/events", eventHandler.List)
		public.GET("/events/:id", eventHandler.Get)

		public.GET("/reviews", reviewHandler.List)
		public.GET("/events/:id/reviews", reviewHandler.ListByEvent)

		public.GET("/users", userHandler.List)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.TokenAuthMiddleware(repos.Tokens))
	{
		protected.POST("/auth/logout", authHandler.Logout)

		protected.POST("/events", eventHandler.Create)
		protected.PUT("/events/:id", eventHandler.Update)
		protected.PATCH("/events/:id", eventHandler.Patch)
		protected.DELETE("/events/:id", eventHandler.Delete)

		protected.GET("/events/:id/chat", chatHandler.ListByEvent)
		protected.POST("/events/:id/chat", chatHandler.Create)

		protected.POST("/reviews", reviewHandler.Create)
		protected.POST("/events/:id/reviews", reviewHandler.Create)

		protected.GET("/notifications", notificationHandler.List)
		protected.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

		protected.GET("/favorites", favoriteHandler.List)
		protected.POST("/favorites", favoriteHandler.Create)
		protected.DELETE("/favorites/:eventId", favoriteHandler.Delete)

		protected.GET("/profile", profileHandler.Get)
		protected.PUT("/profile", profileHandler.Update)

		protected.GET("/bookings", bookingHandler.List)
		protected.POST("/bookings", bookingHandler.Create)
		protected.PATCH("/bookings/:id", bookingHandler.UpdateStatus)
	}
}
