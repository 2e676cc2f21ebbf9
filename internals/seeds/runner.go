package seeds

import (
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	adminModel "github.com/prabhatlnct2008/digipath/internals/features/admins/model"
	adminService "github.com/prabhatlnct2008/digipath/internals/features/admins/service"
	tagModel "github.com/prabhatlnct2008/digipath/internals/features/tags/model"
)

var tagCatalogue = map[string][]string{
	tagModel.CategoryOrgan: {
		"Breast", "Lung", "Gastrointestinal", "Gynecology", "Hematopathology",
		"Neuropathology", "Head & Neck", "Soft Tissue", "Bone", "Kidney",
		"Urinary Bladder", "Liver", "Skin", "Endocrine", "General",
	},
	tagModel.CategoryType: {
		"Live Case Discussion", "Journal Club", "Lecture", "Quiz",
		"Tutorial", "Workshop", "Grand Round", "Case Series",
	},
	tagModel.CategoryLevel: {
		"Beginner", "Intermediate", "Advanced", "Expert", "All Levels",
	},
}

// RunAllSeeds provisions the super admin account and the tag catalogue.
// Every step is idempotent so the seeder can run on each boot.
func RunAllSeeds(db *gorm.DB) {
	seedSuperAdmin(db)
	seedTagCatalogue(db)
}

func seedSuperAdmin(db *gorm.DB) {
	email := envOr("ADMIN_EMAIL", "admin@aiims.edu")
	password := envOr("ADMIN_PASSWORD", "admin123")
	name := envOr("ADMIN_NAME", "System Administrator")

	var existing adminModel.AdminUserModel
	err := db.Where("admin_user_email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[SEED] admin lookup failed: %v", err)
		return
	}

	hashed, err := adminService.HashPassword(password)
	if err != nil {
		log.Printf("[SEED] password hash failed: %v", err)
		return
	}

	admin := adminModel.AdminUserModel{
		AdminUserName:     name,
		AdminUserEmail:    email,
		AdminUserPassword: hashed,
		AdminUserRole:     adminModel.RoleSuperAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED] admin create failed: %v", err)
		return
	}
	log.Printf("[SEED] created super admin %s", email)
}

func seedTagCatalogue(db *gorm.DB) {
	created := 0
	for category, labels := range tagCatalogue {
		for _, label := range labels {
			var existing tagModel.TagModel
			err := db.Where("tag_category = ? AND tag_label = ?", category, label).
				First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[SEED] tag lookup failed: %v", err)
				return
			}

			tag := tagModel.TagModel{
				TagCategory: category,
				TagLabel:    label,
				TagIsActive: true,
			}
			if err := db.Create(&tag).Error; err != nil {
				log.Printf("[SEED] tag create failed (%s/%s): %v", category, label, err)
				return
			}
			created++
		}
	}
	if created > 0 {
		log.Printf("[SEED] created %d tags", created)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
