package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"contacts-backend/internal/config"
	"contacts-backend/internal/infrastructure/database"

	"contacts-backend/internal/domains/contact"
	contactHandler "contacts-backend/internal/domains/contact/handler"
	contactRepo "contacts-backend/internal/domains/contact/repository"
	contactService "contacts-backend/internal/domains/contact/service"
)

// Container chứa TẤT CẢ dependencies của application.
// Thứ tự initialization: Config -> Infrastructure -> Repositories -> Services -> Handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	ContactRepo    contact.Repository
	ContactService contact.Service
	ContactHandler *contactHandler.ContactHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: REPOSITORIES -> SERVICES -> HANDLERS
	// ========================================
	c.ContactRepo = contactRepo.NewPostgresRepository(db.Pool)
	c.ContactService = contactService.NewContactService(c.ContactRepo)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connections closed")
	}

	log.Println("✅ Container cleanup completed")
}
