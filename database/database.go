package database

import (
	"github.com/jaipongz/site-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	articleRepo   *ContentRepo[models.Article]
	serviceRepo   *ContentRepo[models.Service]
	portfolioRepo *ContentRepo[models.Portfolio]
	teamRepo      *ContentRepo[models.TeamMember]
	adminRepo     *AdminRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		articleRepo:   NewContentRepo[models.Article](db),
		serviceRepo:   NewContentRepo[models.Service](db),
		portfolioRepo: NewContentRepo[models.Portfolio](db),
		teamRepo:      NewContentRepo[models.TeamMember](db),
		adminRepo:     NewAdminRepo(db),
	}
}

// Migrate creates or updates the backing tables for every stored resource.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Article{},
		&models.Service{},
		&models.Portfolio{},
		&models.TeamMember{},
		&models.Admin{},
	)
}

// Accessor methods for each repository

func (d Database) ArticleRepo() *ContentRepo[models.Article] {
	return d.articleRepo
}

func (d Database) ServiceRepo() *ContentRepo[models.Service] {
	return d.serviceRepo
}

func (d Database) PortfolioRepo() *ContentRepo[models.Portfolio] {
	return d.portfolioRepo
}

func (d Database) TeamRepo() *ContentRepo[models.TeamMember] {
	return d.teamRepo
}

func (d Database) AdminRepo() *AdminRepo {
	return d.adminRepo
}
