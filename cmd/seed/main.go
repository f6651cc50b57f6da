package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/raflyryhnsyh/sea-catering/internal/model"
	"github.com/raflyryhnsyh/sea-catering/pkg/database"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding SEA Catering reference data\n")

	color.Yellow("\n[1] Meal plans")
	seedMealPlans(db)

	color.Yellow("\n[2] Admin account")
	seedAdmin(db)

	color.Green("\nDone")
}

func seedMealPlans(db *gorm.DB) {
	plans := []model.MealPlan{
		{
			Id:          uuid.New(),
			Name:        "Diet Plan",
			Price:       30000,
			Description: "Calorie-controlled meals for weight management",
			Benefits:    datatypes.NewJSONSlice([]string{"Low calorie", "Fresh vegetables", "Portion controlled"}),
		},
		{
			Id:          uuid.New(),
			Name:        "Protein Plan",
			Price:       40000,
			Description: "High-protein meals for active lifestyles",
			Benefits:    datatypes.NewJSONSlice([]string{"High protein", "Lean meats", "Post-workout friendly"}),
		},
		{
			Id:          uuid.New(),
			Name:        "Royal Plan",
			Price:       60000,
			Description: "Premium ingredients with chef-curated menus",
			Benefits:    datatypes.NewJSONSlice([]string{"Premium ingredients", "Chef curated", "Daily menu rotation"}),
		},
	}

	for _, plan := range plans {
		var count int64
		db.Model(&model.MealPlan{}).Where("name = ?", plan.Name).Count(&count)
		if count > 0 {
			color.Yellow("  - %s already exists, skipping", plan.Name)
			continue
		}
		if err := db.Create(&plan).Error; err != nil {
			color.Red("  - Failed to seed %s: %v", plan.Name, err)
			continue
		}
		color.Green("  - Seeded %s (Rp%d/meal)", plan.Name, plan.Price)
	}
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		color.Yellow("  - SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping")
		return
	}

	var count int64
	db.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		color.Yellow("  - Admin %s already exists, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("  - Failed to hash password: %v", err)
		return
	}

	admin := model.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "SEA Catering Admin",
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		color.Red("  - Failed to seed admin: %v", err)
		return
	}
	color.Green("  - Seeded admin %s", email)
}
