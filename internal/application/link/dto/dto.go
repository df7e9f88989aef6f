package dto

import (
	"time"

	"github.com/orris-inc/toolbox/internal/domain/link"
)

type LinkResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	ShortCode   string    `json:"short_code"`
	ShortURL    string    `json:"short_url,omitempty"`
	OriginalURL string    `json:"original_url"`
	Title       string    `json:"title,omitempty"`
	Clicks      int64     `json:"clicks"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type ClickEventResponse struct {
	ID        uint      `json:"id"`
	ClickedAt time.Time `json:"clicked_at"`
	Referer   string    `json:"referer,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
}

// ToLinkResponse renders l; baseURL prefixes the short URL when set.
func ToLinkResponse(l *link.Link, baseURL string) *LinkResponse {
	resp := &LinkResponse{
		ID:          l.ID(),
		UserID:      l.UserID(),
		ShortCode:   l.ShortCode(),
		OriginalURL: l.OriginalURL(),
		Title:       l.Title(),
		Clicks:      l.Clicks(),
		IsActive:    l.IsActive(),
		CreatedAt:   l.CreatedAt(),
	}
	if baseURL != "" {
		resp.ShortURL = baseURL + "/" + l.ShortCode()
	}
	return resp
}

func ToClickEventResponses(events []*link.ClickEvent) []ClickEventResponse {
	out := make([]ClickEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ClickEventResponse{
			ID:        e.ID,
			ClickedAt: e.ClickedAt,
			Referer:   e.Referer,
			UserAgent: e.UserAgent,
		})
	}
	return out
}
