package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"scoopo-app/booking-service/internal/config"
	"scoopo-app/booking-service/internal/handler"
	"scoopo-app/booking-service/internal/repository"
	"scoopo-app/booking-service/internal/services"
	"scoopo-app/booking-service/internal/utils"
	"scoopo-app/booking-service/internal/utils/mongodb"
)

func main() {
	baseCtx := context.Background()
	ctx, shutdownManager := utils.NewShutdownManager(baseCtx)

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Storage is picked once here: MongoDB when configured and reachable,
	// otherwise the transient in-memory store. Business logic never
	// branches on the mode again.
	var repo services.BookingRepository
	if cfg.MongoDB.Host == "" {
		log.Println("MONGO_HOST not set, running with in-memory storage: bookings are lost on restart")
		repo = repository.NewMemoryBookingRepository()
	} else if mongoClient, err := mongodb.NewMongoDBConnection(cfg.MongoDB); err != nil {
		log.Printf("MongoDB unavailable (%v), falling back to in-memory storage: bookings are lost on restart", err)
		repo = repository.NewMemoryBookingRepository()
	} else {
		shutdownManager.Register("MongoDB connection", mongoClient.Disconnect)
		repo = repository.NewMongoBookingRepository(mongoClient.Database(cfg.MongoDB.DBName))
	}

	// Redis only caches the admin list; skip it when not configured.
	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal("Invalid Redis URL:", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Redis unavailable (%v), list caching disabled", err)
			rdb = nil
		} else {
			shutdownManager.Register("Redis connection", func(context.Context) error {
				return rdb.Close()
			})
		}
	}

	mailer := services.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.Mail.From)
	bookingService := services.NewBookingService(repo, mailer, rdb, cfg.Mail.OwnerEmail)
	bookingHandler := handler.NewBookingHandler(bookingService)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.Server.FrontendOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", utils.AdminTokenHeader},
	}))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ScooPo backend running")
	})

	api := router.Group("/api/bookings")
	{
		api.POST("", bookingHandler.CreateBooking)

		admin := api.Group("")
		admin.Use(utils.AdminAuth(cfg.Admin.Token))
		admin.GET("", bookingHandler.ListBookings)
		admin.PATCH("/:id", bookingHandler.UpdateStatus)
		admin.DELETE("/:id", bookingHandler.DeleteBooking)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Booking service running on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	shutdownManager.Register("HTTP server", server.Shutdown)

	shutdownManager.ListenAndWait()
}
