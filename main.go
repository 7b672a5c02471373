package main

import (
	"context"
	"log"
	"os"
	"time"

	"bookly-backend/config"
	"bookly-backend/database"
	bookingsapi "bookly-backend/internal/api/bookings"
	routes "bookly-backend/internal/app/http"
	"bookly-backend/internal/infra/cache"
	"bookly-backend/internal/infra/gcal"
	"bookly-backend/internal/infra/razorpay"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()
	cache.Init()

	gateway := razorpay.NewClient(config.RAZORPAY_KEY_ID, config.RAZORPAY_KEY_SECRET)

	calendar, err := gcal.NewClient(context.Background(), config.GOOGLE_SERVICE_ACCOUNT_JSON, config.GOOGLE_CALENDAR_ID)
	if err != nil {
		// Calendar sync is best-effort everywhere; a misconfigured
		// integration must not keep bookings down.
		log.Println("Calendar integration disabled:", err)
		calendar = nil
	}

	bookingsapi.Init(gateway, calendar)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
