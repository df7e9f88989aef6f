package link

import (
	"context"

	"github.com/orris-inc/toolbox/internal/application/link/dto"
	"github.com/orris-inc/toolbox/internal/application/link/usecases"
)

type createLinkUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateLinkCommand) (*dto.LinkResponse, error)
}

type listLinksUseCase interface {
	Execute(ctx context.Context, query usecases.ListLinksQuery) ([]*dto.LinkResponse, error)
}

type deleteLinkUseCase interface {
	Execute(ctx context.Context, cmd usecases.LinkCommand) error
}

type toggleLinkUseCase interface {
	Execute(ctx context.Context, cmd usecases.LinkCommand) (*dto.LinkResponse, error)
}

type listClicksUseCase interface {
	Execute(ctx context.Context, query usecases.ListClicksQuery) ([]dto.ClickEventResponse, error)
}

type resolveRedirectUseCase interface {
	Execute(ctx context.Context, cmd usecases.ResolveRedirectCommand) (*usecases.RedirectResult, error)
}
