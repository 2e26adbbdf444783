package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/bellavie/bella-booking/controllers"
	"github.com/bellavie/bella-booking/cron"
	"github.com/bellavie/bella-booking/db"
	"github.com/bellavie/bella-booking/ledger"
	"github.com/bellavie/bella-booking/redis"
	"github.com/bellavie/bella-booking/routes"
	"github.com/bellavie/bella-booking/store"
)

func main() {
	app := fiber.New()

	conn := db.Connect()
	db.Migrate(conn)
	redis.InitRedis()

	records := store.NewGorm(conn)
	availability := ledger.NewAvailabilityLedger(records)
	bookings := ledger.NewBookingLedger(records, records)
	reviews := ledger.NewReviewAggregator(records, records, records)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bella Booking API")
	})

	routes.SetupAuthRoutes(app, &controllers.AuthController{Users: records})
	routes.SetupArtistRoutes(app,
		&controllers.ArtistController{Availability: availability},
		&controllers.BookingController{Bookings: bookings})
	routes.SetupBookingRoutes(app, &controllers.BookingController{Bookings: bookings})
	routes.SetupReviewRoutes(app, &controllers.ReviewController{Reviews: reviews})
	routes.SetupFavoriteRoutes(app, &controllers.FavoriteController{Favorites: records, Artists: records})

	cron.StartCronJobs(bookings)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
