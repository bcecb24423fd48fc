package service

import (
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/model"
	"CivicReportAPI/internal/repository"
	"context"
	"log/slog"
)

type OfficerService struct {
	repo *repository.Repository
}

func NewOfficerService(repo *repository.Repository) *OfficerService {
	return &OfficerService{
		repo: repo,
	}
}

func (s *OfficerService) ListOfficers(ctx context.Context) ([]*model.OfficerResponse, error) {
	officers, err := s.repo.Officer.List(ctx)
	if err != nil {
		slog.Error("Failed to list officers", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	out := make([]*model.OfficerResponse, 0, len(officers))
	for _, o := range officers {
		out = append(out, &model.OfficerResponse{
			ID:         o.ID,
			Name:       o.Name,
			Department: o.Department,
			Contact:    o.Contact,
		})
	}
	return out, nil
}
