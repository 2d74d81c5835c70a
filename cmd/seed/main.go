package main

import (
	"github.com/soukly/soukly/internal/config"
	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/logger"
	"github.com/soukly/soukly/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type demoSeller struct {
	Email    string
	Name     string
	WhatsApp string
	City     string
	Products []demoProduct
}

type demoProduct struct {
	Slug        string
	Title       string
	Description string
	Price       int64
	Category    string
	Subcategory string
	Images      models.StringArray
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}
	if err := models.InitDefaultCategories(); err != nil {
		stdLog.Fatalf("Failed to seed categories: %v", err)
	}

	sellers := []demoSeller{
		{
			Email:    "fatima@souk.example",
			Name:     "Artisanat Fatima",
			WhatsApp: "+212612345678",
			City:     "Marrakech",
			Products: []demoProduct{
				{
					Slug:        "babouches-cuir-marrakech",
					Title:       "Babouches en cuir",
					Description: "Babouches artisanales en cuir véritable, cousues main à Marrakech.",
					Price:       249,
					Category:    "Fashion",
					Subcategory: "Women",
					Images:      models.StringArray{"/uploads/babouches-1.jpg"},
				},
				{
					Slug:        "tapis-berbere-laine",
					Title:       "Tapis berbère en laine",
					Description: "Tapis tissé main, motifs berbères traditionnels, 2m x 1.5m.",
					Price:       1190,
					Category:    "Home",
					Subcategory: "Decoration",
					Images:      models.StringArray{"/uploads/tapis-1.jpg"},
				},
			},
		},
		{
			Email:    "youssef@souk.example",
			Name:     "Coopérative Argania",
			WhatsApp: "+212698765432",
			City:     "Essaouira",
			Products: []demoProduct{
				{
					Slug:        "huile-argan-bio-100ml",
					Title:       "Huile d'argan bio 100ml",
					Description: "Huile d'argan pressée à froid, certifiée bio, coopérative d'Essaouira.",
					Price:       120,
					Category:    "Beauty",
					Subcategory: "Skincare",
					Images:      models.StringArray{"/uploads/argan-1.jpg"},
				},
				{
					Slug:        "savon-noir-eucalyptus",
					Title:       "Savon noir à l'eucalyptus",
					Description: "Savon noir traditionnel pour le hammam, parfum eucalyptus.",
					Price:       35,
					Category:    "Beauty",
					Subcategory: "Skincare",
					Images:      models.StringArray{"/uploads/savon-1.jpg"},
				},
				{
					Slug:        "tajine-terre-cuite",
					Title:       "Tajine en terre cuite",
					Description: "Tajine de cuisson en terre cuite émaillée, fait main à Safi.",
					Price:       180,
					Category:    "Home",
					Subcategory: "Kitchen",
					Images:      models.StringArray{"/uploads/tajine-1.jpg"},
				},
			},
		},
	}

	for _, demo := range sellers {
		seedSeller(demo, stdLog.Printf)
	}

	stdLog.Printf("Seed finished")
}

func seedSeller(demo demoSeller, logf func(string, ...interface{})) {
	var user models.User
	err := models.DB.Where("email = ?", demo.Email).First(&user).Error
	if err != nil {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("soukly-demo"), bcrypt.DefaultCost)
		if hashErr != nil {
			logf("Failed to hash demo password: %v", hashErr)
			return
		}
		email := demo.Email
		user = models.User{
			Email:        &email,
			PasswordHash: string(hash),
			DisplayName:  demo.Name,
			Locale:       constants.LangFR,
			Status:       constants.UserStatusActive,
		}
		if err := models.DB.Create(&user).Error; err != nil {
			logf("Failed to create demo user %s: %v", demo.Email, err)
			return
		}
		logf("Created demo user: %s", demo.Email)
	}

	var seller models.Seller
	err = models.DB.Where("user_id = ?", user.ID).First(&seller).Error
	if err != nil {
		seller = models.Seller{
			UserID:   user.ID,
			Name:     demo.Name,
			WhatsApp: demo.WhatsApp,
			City:     demo.City,
			IsActive: true,
		}
		if err := models.DB.Create(&seller).Error; err != nil {
			logf("Failed to create seller %s: %v", demo.Name, err)
			return
		}
		logf("Created seller: %s", demo.Name)
	}

	for _, p := range demo.Products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			logf("Product already exists: %s", p.Slug)
			continue
		}
		product := models.Product{
			SellerID:      seller.ID,
			Slug:          p.Slug,
			Title:         p.Title,
			Description:   p.Description,
			PriceAmount:   models.NewMoneyFromDecimal(decimal.NewFromInt(p.Price)),
			PriceCurrency: constants.CurrencyMAD,
			Images:        p.Images,
			Category:      p.Category,
			Subcategory:   p.Subcategory,
			Location:      demo.City,
			IsActive:      true,
		}
		if err := models.DB.Create(&product).Error; err != nil {
			logf("Failed to create product %s: %v", p.Slug, err)
			continue
		}
		logf("Created product: %s", p.Slug)
	}
}
