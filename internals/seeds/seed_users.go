// 📁 internals/seeds/seed_users.go
//
// Seeder akun dari file JSON. Dipakai sekali saat provisioning:
//
//	[{"user_name":"Admin","email":"admin@pesantren.id","password":"...","role":"admin"}]
package seeds

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "pesantrenku_backend/internals/features/users/auth/model"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing userModel.User
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		user := userModel.User{
			UserName:     data.UserName,
			UserEmail:    data.Email,
			UserPassword: string(hashed),
			UserRole:     data.Role,
			UserIsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("❌ Gagal simpan user '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ User '%s' berhasil dibuat", data.Email)
	}
}
