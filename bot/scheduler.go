package bot

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	"fyi-bot/database"
	"fyi-bot/sweeper"
)

var c *cron.Cron

// startScheduler starts the expiry sweep on the configured interval. The
// interval is read once at startup.
func startScheduler(store *database.Store) {
	log.Println("Initializing scheduler...")
	c = cron.New()

	interval := viper.GetString("sweep.interval")
	_, err := c.AddFunc(interval, func() {
		log.Println("Running expiry sweep...")
		sweeper.Sweep(store, time.Now().UTC())
	})
	if err != nil {
		log.Fatalf("Could not set up sweep cron job: %v", err)
	}
	c.Start()
	log.Printf("Expiry sweep scheduled (%s).", interval)
}

// stopScheduler stops the cron jobs.
func stopScheduler() {
	if c != nil {
		c.Stop()
		log.Println("Scheduler stopped.")
	}
}
