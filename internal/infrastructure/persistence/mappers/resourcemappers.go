package mappers

import (
	"github.com/orris-inc/toolbox/internal/domain/client"
	"github.com/orris-inc/toolbox/internal/domain/link"
	"github.com/orris-inc/toolbox/internal/domain/qrcode"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/models"
)

func LinkToEntity(model *models.LinkModel) *link.Link {
	return link.ReconstructLink(model.ID, model.UserID, model.ShortCode, model.OriginalURL, model.Title,
		model.Clicks, model.IsActive, model.CreatedAt, model.UpdatedAt)
}

func LinkToModel(l *link.Link) *models.LinkModel {
	return &models.LinkModel{
		ID:          l.ID(),
		UserID:      l.UserID(),
		ShortCode:   l.ShortCode(),
		OriginalURL: l.OriginalURL(),
		Title:       l.Title(),
		Clicks:      l.Clicks(),
		IsActive:    l.IsActive(),
		CreatedAt:   l.CreatedAt(),
		UpdatedAt:   l.UpdatedAt(),
	}
}

func ClickEventToEntity(model *models.ClickEventModel) *link.ClickEvent {
	return &link.ClickEvent{
		ID:        model.ID,
		LinkID:    model.LinkID,
		ClickedAt: model.ClickedAt.UTC(),
		Referer:   model.Referer,
		UserAgent: model.UserAgent,
	}
}

func QRCodeToEntity(model *models.QRCodeModel) *qrcode.QRCode {
	return qrcode.ReconstructQRCode(model.ID, model.UserID, model.Content, model.Label, model.Size, model.CreatedAt)
}

func QRCodeToModel(q *qrcode.QRCode) *models.QRCodeModel {
	return &models.QRCodeModel{
		ID:        q.ID(),
		UserID:    q.UserID(),
		Content:   q.Content(),
		Label:     q.Label(),
		Size:      q.Size(),
		CreatedAt: q.CreatedAt(),
	}
}

func ClientToEntity(model *models.ClientModel) *client.Client {
	return client.ReconstructClient(model.ID, model.UserID, client.Details{
		Name:    model.Name,
		Email:   model.Email,
		Phone:   model.Phone,
		Address: model.Address,
		City:    model.City,
		Notes:   model.Notes,
	}, model.CreatedAt, model.UpdatedAt)
}

func ClientToModel(c *client.Client) *models.ClientModel {
	d := c.Details()
	return &models.ClientModel{
		ID:        c.ID(),
		UserID:    c.UserID(),
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Address:   d.Address,
		City:      d.City,
		Notes:     d.Notes,
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}
