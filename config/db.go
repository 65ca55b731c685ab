package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"tour-backend/models"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "tour_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase fills empty tables with starter content so a fresh install
// renders a populated site.
func SeedDatabase() {
	var destCount int64
	DB.Model(&models.Destination{}).Count(&destCount)
	if destCount == 0 {
		destinations := []models.Destination{
			{
				Name:        "Sigiriya Rock Fortress",
				Location:    "Central Province",
				Category:    "Historical",
				Rating:      4.9,
				Description: "Ancient rock fortress rising 200 metres above the surrounding plains, crowned by the ruins of a royal palace.",
				Highlights:  datatypes.NewJSONSlice([]string{"Lion's Gate", "Mirror Wall frescoes", "Water gardens"}),
				Difficulty:  "Moderate",
				BestTime:    "January to April",
				Duration:    "Half day",
			},
			{
				Name:        "Ella",
				Location:    "Uva Province",
				Category:    "Nature",
				Rating:      4.8,
				Description: "Hill-country village framed by tea plantations, waterfalls and the famous Nine Arch Bridge.",
				Highlights:  datatypes.NewJSONSlice([]string{"Nine Arch Bridge", "Little Adam's Peak", "Ravana Falls"}),
				Difficulty:  "Easy",
				BestTime:    "December to March",
				Duration:    "2-3 days",
			},
			{
				Name:        "Yala National Park",
				Location:    "Southern Province",
				Category:    "Wildlife",
				Rating:      4.7,
				Description: "Sri Lanka's premier safari destination with the highest leopard density in the world.",
				Highlights:  datatypes.NewJSONSlice([]string{"Leopard safaris", "Elephant herds", "Coastal lagoons"}),
				Difficulty:  "Easy",
				BestTime:    "February to July",
				Duration:    "Full day",
			},
		}
		if err := DB.Create(&destinations).Error; err != nil {
			log.Printf("warning: failed to seed destinations: %v", err)
		} else {
			log.Println("Destinations seeded")
		}
	}

	var pkgCount int64
	DB.Model(&models.Package{}).Count(&pkgCount)
	if pkgCount == 0 {
		packages := []models.Package{
			{
				Title:      "Ella Tour",
				Duration:   "5 Days",
				GroupSize:  "2-10",
				Price:      699,
				Rating:     4.8,
				Image:      "",
				Category:   "Adventure",
				Difficulty: "Moderate",
				Highlights: datatypes.NewJSONSlice([]string{"Nine Arch Bridge sunrise", "Tea factory visit", "Ella Rock hike"}),
				Includes:   datatypes.NewJSONSlice([]string{"Accommodation", "Breakfast", "Private driver"}),
				Itinerary:  datatypes.NewJSONSlice([]string{"Day 1: Arrival and Nine Arch Bridge", "Day 2: Little Adam's Peak", "Day 3: Tea country", "Day 4: Ravana Falls", "Day 5: Departure"}),
				Published:  true,
			},
			{
				Title:      "Cultural Triangle Explorer",
				Duration:   "7 Days",
				GroupSize:  "2-12",
				Price:      1199,
				Rating:     4.9,
				Category:   "Cultural",
				Difficulty: "Easy",
				Highlights: datatypes.NewJSONSlice([]string{"Sigiriya", "Dambulla cave temples", "Polonnaruwa ruins"}),
				Includes:   datatypes.NewJSONSlice([]string{"Accommodation", "All meals", "Entrance fees", "Guide"}),
				Itinerary:  datatypes.NewJSONSlice([]string{"Day 1: Colombo to Dambulla", "Day 2: Sigiriya", "Day 3: Polonnaruwa", "Day 4: Anuradhapura", "Day 5: Kandy", "Day 6: Temple of the Tooth", "Day 7: Departure"}),
				Featured:   true,
				Published:  true,
			},
		}
		if err := DB.Create(&packages).Error; err != nil {
			log.Printf("warning: failed to seed packages: %v", err)
		} else {
			log.Println("Packages seeded")
		}
	}

	var actCount int64
	DB.Model(&models.Activity{}).Count(&actCount)
	if actCount == 0 {
		activities := []models.Activity{
			{
				Name:        "Whale Watching",
				Location:    "Mirissa",
				Category:    "Wildlife",
				Duration:    "4 Hours",
				Price:       55,
				Rating:      4.6,
				Description: "Morning boat trip to spot blue whales and spinner dolphins off the southern coast.",
				Highlights:  datatypes.NewJSONSlice([]string{"Blue whales", "Dolphin pods", "Sunrise departure"}),
				BestTime:    "November to April",
				Difficulty:  "Easy",
				GroupSize:   "Up to 30",
				Published:   true,
			},
			{
				Name:        "White Water Rafting",
				Location:    "Kitulgala",
				Category:    "Adventure",
				Duration:    "3 Hours",
				Price:       40,
				Rating:      4.5,
				Description: "Grade 2-3 rapids on the Kelani River through rainforest scenery.",
				Highlights:  datatypes.NewJSONSlice([]string{"Five major rapids", "Jungle scenery", "Safety briefing included"}),
				BestTime:    "May to December",
				Difficulty:  "Moderate",
				GroupSize:   "4-8 per raft",
				Published:   true,
			},
		}
		if err := DB.Create(&activities).Error; err != nil {
			log.Printf("warning: failed to seed activities: %v", err)
		} else {
			log.Println("Activities seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Destination{},
		&models.Package{},
		&models.Activity{},
		&models.BlogPost{},
		&models.Review{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
