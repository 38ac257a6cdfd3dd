package sweeper

import (
	"fmt"
	"log"
	"time"

	"fyi-bot/database"
	"fyi-bot/utils"
)

// Sweep purges expired FYIs for every configured guild. A store fault while
// sweeping one guild aborts only that guild; its remaining expired records
// are picked up on the next run. Returns the total number purged.
func Sweep(store *database.Store, now time.Time) int {
	guilds, err := store.AllGuildIDs()
	if err != nil {
		log.Printf("Sweep: failed to list configured guilds: %v", err)
		return 0
	}

	total := 0
	for _, guildID := range guilds {
		purged, err := SweepGuild(store, guildID, now)
		total += purged
		if err != nil {
			log.Printf("Sweep: aborting guild %s after %d purged: %v", guildID, purged, err)
			utils.Error(guildID, "Sweep", fmt.Sprintf("Expiry sweep aborted: %v", err))
			continue
		}
		if purged > 0 {
			log.Printf("Sweep: purged %d expired FYIs for guild %s", purged, guildID)
		}
	}
	return total
}

// SweepGuild hard-deletes every FYI of the guild whose expiry has passed.
// Expired records are removed silently; expiry is not a cancellation, so no
// audience is notified. Returns how many were purged before any fault.
func SweepGuild(store *database.Store, guildID string, now time.Time) (int, error) {
	expired, err := store.QueryExpired(guildID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired FYIs: %w", err)
	}

	purged := 0
	for i := range expired {
		if err := store.DeleteFYI(expired[i].SourceRef()); err != nil {
			return purged, fmt.Errorf("failed to purge FYI %s: %w", expired[i].CommandMessageID, err)
		}
		purged++
	}
	return purged, nil
}
