package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/admins/model"
)

// StartBlacklistCleanupScheduler prunes blacklist rows whose tokens expired
// longer ago than TOKEN_BLACKLIST_TTL_DAYS (default 7), once a day.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				ttlDays = parsed
			}
		}

		for {
			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			result := db.
				Where("expired_at < ?", deleteBefore).
				Delete(&model.TokenBlacklistModel{})
			if result.Error != nil {
				log.Printf("[CLEANUP] token_blacklist prune failed: %v", result.Error)
			} else if result.RowsAffected > 0 {
				log.Printf("[CLEANUP] removed %d expired blacklist tokens", result.RowsAffected)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
