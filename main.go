package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jaipongz/site-backend/api"
	"github.com/jaipongz/site-backend/auth"
	"github.com/jaipongz/site-backend/config"
	"github.com/jaipongz/site-backend/database"
	"github.com/jaipongz/site-backend/models"
	"github.com/jaipongz/site-backend/storage"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	connStr := config.GetString(c, "DATABASE_URL", "")
	if connStr == "" {
		connStr = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			config.GetString(c, "DB_HOST", "localhost"),
			config.GetString(c, "DB_USER", "postgres"),
			config.GetString(c, "DB_PASSWORD", ""),
			config.GetString(c, "DB_NAME", "jaipongz"),
			config.GetString(c, "DB_PORT", "5432"),
			config.GetString(c, "DB_SSLMODE", "disable"),
		)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	storage.Configure(
		config.GetString(c, "UPLOAD_DIR", "uploads"),
		config.GetInt64(c, "MAX_UPLOAD_BYTES", storage.DefaultMaxUploadBytes),
	)
	if err := storage.EnsureUploadDir(); err != nil {
		fmt.Printf("Error creating upload directory: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	if err := seedInitialAdmin(currentDB, c); err != nil {
		fmt.Printf("Error seeding initial admin: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// seedInitialAdmin creates the first panel credential when the admins table is
// empty and ADMIN_USERNAME/ADMIN_PASSWORD are configured. The password is
// hashed before it is stored.
func seedInitialAdmin(db database.Database, c map[string]string) error {
	username := config.GetString(c, "ADMIN_USERNAME", "")
	password := config.GetString(c, "ADMIN_PASSWORD", "")
	if username == "" || password == "" {
		return nil
	}

	count, err := db.AdminRepo().Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Username: username,
		Password: hashed,
		Email:    config.GetString(c, "ADMIN_EMAIL", ""),
	}
	if err := db.AdminRepo().Add(&admin); err != nil {
		return err
	}

	fmt.Printf("Seeded initial admin %q\n", username)
	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
