package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/toolbox/internal/application/link/dto"
	"github.com/orris-inc/toolbox/internal/domain/link"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

const (
	defaultClickLimit = 100
	maxClickLimit     = 1000
)

type LinkCommand struct {
	LinkID uint
	Actor  authorization.Actor
}

type ListLinksQuery struct {
	Actor authorization.Actor
	// AllOwners lists every user's links; honored for admins only.
	AllOwners bool
}

type ListLinksUseCase struct {
	linkRepo link.Repository
	baseURL  string
}

func NewListLinksUseCase(linkRepo link.Repository, baseURL string) *ListLinksUseCase {
	return &ListLinksUseCase{linkRepo: linkRepo, baseURL: baseURL}
}

func (uc *ListLinksUseCase) Execute(ctx context.Context, query ListLinksQuery) ([]*dto.LinkResponse, error) {
	owner := query.Actor.UserID
	if query.AllOwners && query.Actor.IsAdmin() {
		owner = 0
	}

	links, err := uc.linkRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	out := make([]*dto.LinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, dto.ToLinkResponse(l, uc.baseURL))
	}
	return out, nil
}

type DeleteLinkUseCase struct {
	linkRepo link.Repository
	logger   logger.Interface
}

func NewDeleteLinkUseCase(linkRepo link.Repository, logger logger.Interface) *DeleteLinkUseCase {
	return &DeleteLinkUseCase{linkRepo: linkRepo, logger: logger}
}

func (uc *DeleteLinkUseCase) Execute(ctx context.Context, cmd LinkCommand) error {
	l, err := loadAccessibleLink(ctx, uc.linkRepo, cmd.LinkID, cmd.Actor)
	if err != nil {
		return err
	}
	if err := uc.linkRepo.Delete(ctx, l.ID()); err != nil {
		uc.logger.Errorw("failed to delete link", "link_id", l.ID(), "error", err)
		return fmt.Errorf("failed to delete link: %w", err)
	}
	uc.logger.Infow("link deleted", "link_id", l.ID(), "by", cmd.Actor.UserID)
	return nil
}

type ToggleLinkUseCase struct {
	linkRepo link.Repository
	baseURL  string
	logger   logger.Interface
}

func NewToggleLinkUseCase(linkRepo link.Repository, baseURL string, logger logger.Interface) *ToggleLinkUseCase {
	return &ToggleLinkUseCase{linkRepo: linkRepo, baseURL: baseURL, logger: logger}
}

func (uc *ToggleLinkUseCase) Execute(ctx context.Context, cmd LinkCommand) (*dto.LinkResponse, error) {
	l, err := loadAccessibleLink(ctx, uc.linkRepo, cmd.LinkID, cmd.Actor)
	if err != nil {
		return nil, err
	}
	l.Toggle()
	if err := uc.linkRepo.Update(ctx, l); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}
	uc.logger.Infow("link toggled", "link_id", l.ID(), "is_active", l.IsActive())
	return dto.ToLinkResponse(l, uc.baseURL), nil
}

type ListClicksQuery struct {
	LinkID uint
	Actor  authorization.Actor
	Limit  int
}

type ListClicksUseCase struct {
	linkRepo link.Repository
}

func NewListClicksUseCase(linkRepo link.Repository) *ListClicksUseCase {
	return &ListClicksUseCase{linkRepo: linkRepo}
}

func (uc *ListClicksUseCase) Execute(ctx context.Context, query ListClicksQuery) ([]dto.ClickEventResponse, error) {
	l, err := loadAccessibleLink(ctx, uc.linkRepo, query.LinkID, query.Actor)
	if err != nil {
		return nil, err
	}

	limit := query.Limit
	switch {
	case limit <= 0:
		limit = defaultClickLimit
	case limit > maxClickLimit:
		limit = maxClickLimit
	}

	events, err := uc.linkRepo.ListClicks(ctx, l.ID(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list clicks: %w", err)
	}
	return dto.ToClickEventResponses(events), nil
}
