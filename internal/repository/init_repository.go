package repository

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/internal/adapter"
)

type Repository struct {
	Report    *ReportRepository
	Catalog   *CatalogRepository
	Officer   *OfficerRepository
	User      *UserRepository
	Media     *MediaRepository
	RateLimit *RateLimitRepository
}

func NewRepository(client *ent.Client, redisAdapter *adapter.RedisAdapter) *Repository {
	return &Repository{
		Report:    NewReportRepository(client),
		Catalog:   NewCatalogRepository(client),
		Officer:   NewOfficerRepository(client),
		User:      NewUserRepository(client),
		Media:     NewMediaRepository(client),
		RateLimit: NewRateLimitRepository(redisAdapter),
	}
}
