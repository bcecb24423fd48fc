package service

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/internal/config"
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/model"
	"time"
)

// buildReportResponse flattens a report row plus its loaded edges into the
// wire shape. Edges that were not loaded simply leave the display names empty.
func buildReportResponse(cfg *config.AppConfig, r *ent.Report) *model.ReportResponse {
	resp := &model.ReportResponse{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		Type:              string(r.Type),
		Status:            string(r.Status),
		CategoryID:        r.CategoryID,
		SubcategoryID:     r.SubcategoryID,
		LocationAddress:   r.LocationAddress,
		LocationLat:       r.LocationLat,
		LocationLng:       r.LocationLng,
		ImageRefs:         r.ImageRefs,
		AssignedOfficerID: r.AssignedOfficerID,
		ResolutionDetails: r.ResolutionDetails,
		ReporterID:        r.ReporterID,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}

	if len(r.ImageRefs) > 0 {
		urls := make([]string, 0, len(r.ImageRefs))
		for _, ref := range r.ImageRefs {
			urls = append(urls, helper.BuildImageURL(cfg.S3PublicDomain, cfg.StorageReportImages, ref))
		}
		resp.ImageURLs = urls
	}

	if r.Edges.Category != nil {
		resp.CategoryName = r.Edges.Category.Name
	}
	if r.Edges.Subcategory != nil {
		resp.SubcategoryName = r.Edges.Subcategory.Name
	}
	if r.Edges.AssignedOfficer != nil {
		resp.AssignedOfficerName = r.Edges.AssignedOfficer.Name
	}
	if r.Edges.Reporter != nil {
		resp.ReporterName = r.Edges.Reporter.Name
	}

	return resp
}

func buildReportResponses(cfg *config.AppConfig, reports []*ent.Report) []*model.ReportResponse {
	out := make([]*model.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, buildReportResponse(cfg, r))
	}
	return out
}
