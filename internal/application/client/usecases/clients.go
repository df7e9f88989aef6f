package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orris-inc/toolbox/internal/domain/client"
	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

type QuotaGuard interface {
	Require(ctx context.Context, userID uint, kind plan.ResourceKind) error
}

// NotesRenderer turns Markdown notes into sanitized HTML.
type NotesRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type ClientResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	NotesHTML string    `json:"notes_html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type presenter struct {
	renderer NotesRenderer
	logger   logger.Interface
}

func (p presenter) toResponse(c *client.Client) *ClientResponse {
	d := c.Details()
	resp := &ClientResponse{
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
	if d.Notes != "" && p.renderer != nil {
		html, err := p.renderer.ToHTMLSanitized(d.Notes)
		if err != nil {
			p.logger.Warnw("failed to render client notes", "client_id", c.ID(), "error", err)
		} else {
			resp.NotesHTML = html
		}
	}
	return resp
}

func validationOr(err error, action string) error {
	if errors.Is(err, client.ErrNameRequired) {
		return apperrors.NewValidationError(err.Error())
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func loadAccessibleClient(ctx context.Context, repo client.Repository, id uint, actor authorization.Actor) (*client.Client, error) {
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return nil, apperrors.NewNotFoundError("client not found")
		}
		return nil, fmt.Errorf("failed to load client: %w", err)
	}
	if !actor.CanAccess(c.UserID()) {
		return nil, apperrors.NewNotFoundError("client not found")
	}
	return c, nil
}

type CreateClientCommand struct {
	UserID  uint
	Details client.Details
}

type CreateClientUseCase struct {
	repo  client.Repository
	quota QuotaGuard
	presenter
}

func NewCreateClientUseCase(repo client.Repository, quota QuotaGuard, renderer NotesRenderer, logger logger.Interface) *CreateClientUseCase {
	return &CreateClientUseCase{repo: repo, quota: quota, presenter: presenter{renderer: renderer, logger: logger}}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*ClientResponse, error) {
	c, err := client.NewClient(cmd.UserID, cmd.Details)
	if err != nil {
		return nil, validationOr(err, "build client")
	}

	if err := uc.quota.Require(ctx, cmd.UserID, plan.ResourceClients); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to persist client", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	uc.logger.Infow("client created", "client_id", c.ID(), "user_id", cmd.UserID)
	return uc.toResponse(c), nil
}

type UpdateClientCommand struct {
	ClientID uint
	Actor    authorization.Actor
	Details  client.Details
}

type UpdateClientUseCase struct {
	repo client.Repository
	presenter
}

func NewUpdateClientUseCase(repo client.Repository, renderer NotesRenderer, logger logger.Interface) *UpdateClientUseCase {
	return &UpdateClientUseCase{repo: repo, presenter: presenter{renderer: renderer, logger: logger}}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*ClientResponse, error) {
	c, err := loadAccessibleClient(ctx, uc.repo, cmd.ClientID, cmd.Actor)
	if err != nil {
		return nil, err
	}
	if err := c.Update(cmd.Details); err != nil {
		return nil, validationOr(err, "update client")
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	return uc.toResponse(c), nil
}

type DeleteClientCommand struct {
	ClientID uint
	Actor    authorization.Actor
}

type DeleteClientUseCase struct {
	repo   client.Repository
	logger logger.Interface
}

func NewDeleteClientUseCase(repo client.Repository, logger logger.Interface) *DeleteClientUseCase {
	return &DeleteClientUseCase{repo: repo, logger: logger}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, cmd DeleteClientCommand) error {
	c, err := loadAccessibleClient(ctx, uc.repo, cmd.ClientID, cmd.Actor)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, c.ID()); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	uc.logger.Infow("client deleted", "client_id", c.ID(), "by", cmd.Actor.UserID)
	return nil
}

type ListClientsUseCase struct {
	repo client.Repository
	presenter
}

func NewListClientsUseCase(repo client.Repository, renderer NotesRenderer, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{repo: repo, presenter: presenter{renderer: renderer, logger: logger}}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, actor authorization.Actor) ([]*ClientResponse, error) {
	clients, err := uc.repo.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	out := make([]*ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, uc.toResponse(c))
	}
	return out, nil
}
