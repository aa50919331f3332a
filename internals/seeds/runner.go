package seeds

import (
	"gorm.io/gorm"
)

// RunAllSeeds dijalankan saat boot bila RUN_SEEDS=true.
func RunAllSeeds(db *gorm.DB) {
	SeedUsersFromJSON(db, "internals/seeds/data_users.json")
}
