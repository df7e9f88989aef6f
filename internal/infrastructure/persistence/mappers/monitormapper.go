package mappers

import (
	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/models"
)

func SiteToEntity(model *models.SiteModel) (*monitor.Site, error) {
	return monitor.ReconstructSite(model.ID, model.UserID, model.URL, model.Label, model.IsActive, model.CreatedAt, model.UpdatedAt)
}

func SiteToModel(site *monitor.Site) *models.SiteModel {
	return &models.SiteModel{
		ID:        site.ID(),
		UserID:    site.UserID(),
		URL:       site.URL(),
		Label:     site.Label(),
		IsActive:  site.IsActive(),
		CreatedAt: site.CreatedAt(),
		UpdatedAt: site.UpdatedAt(),
	}
}

func CheckResultToEntity(model *models.CheckResultModel) *monitor.CheckResult {
	return monitor.ReconstructCheckResult(
		model.ID,
		model.SiteID,
		model.CheckedAt.UTC(),
		model.IsUp,
		model.StatusCode,
		model.LatencyMs,
		model.Error,
	)
}

func CheckResultToModel(result *monitor.CheckResult) *models.CheckResultModel {
	return &models.CheckResultModel{
		ID:         result.ID(),
		SiteID:     result.SiteID(),
		CheckedAt:  result.CheckedAt(),
		IsUp:       result.IsUp(),
		StatusCode: result.StatusCode(),
		LatencyMs:  result.LatencyMs(),
		Error:      result.Error(),
	}
}
