package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bellavie/bella-booking/ledger"
)

// StartCronJobs runs the booking sweep every minute: confirmed bookings whose
// end time has passed are marked completed by the system, which is what lets
// clients review them.
func StartCronJobs(bookings *ledger.BookingLedger) {
	c := cron.New()
	_, err := c.AddFunc("* * * * *", func() {
		completed, err := bookings.CompleteElapsed(time.Now())
		if err != nil {
			log.Printf("Error sweeping elapsed bookings: %v", err)
			return
		}
		if completed > 0 {
			log.Printf("Marked %d bookings completed", completed)
		}
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking completion")
}
