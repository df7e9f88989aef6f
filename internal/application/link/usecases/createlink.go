package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/orris-inc/toolbox/internal/application/link/dto"
	"github.com/orris-inc/toolbox/internal/domain/link"
	"github.com/orris-inc/toolbox/internal/domain/plan"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
	"github.com/orris-inc/toolbox/internal/shared/id"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

const maxShortCodeAttempts = 5

type CreateLinkCommand struct {
	UserID      uint
	OriginalURL string
	Title       string
}

type CreateLinkUseCase struct {
	linkRepo link.Repository
	quota    QuotaGuard
	codes    CodeGenerator
	baseURL  string
	logger   logger.Interface
}

func NewCreateLinkUseCase(linkRepo link.Repository, quota QuotaGuard, baseURL string, logger logger.Interface) *CreateLinkUseCase {
	return &CreateLinkUseCase{
		linkRepo: linkRepo,
		quota:    quota,
		codes:    id.NewShortCode,
		baseURL:  baseURL,
		logger:   logger,
	}
}

// SetCodeGenerator replaces the random code source.
func (uc *CreateLinkUseCase) SetCodeGenerator(codes CodeGenerator) {
	uc.codes = codes
}

func (uc *CreateLinkUseCase) Execute(ctx context.Context, cmd CreateLinkCommand) (*dto.LinkResponse, error) {
	if err := link.ValidateTargetURL(cmd.OriginalURL); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.quota.Require(ctx, cmd.UserID, plan.ResourceLinks); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxShortCodeAttempts; attempt++ {
		code, err := uc.codes()
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}

		l, err := link.NewLink(cmd.UserID, code, cmd.OriginalURL, cmd.Title)
		if err != nil {
			return nil, fmt.Errorf("failed to build link: %w", err)
		}

		err = uc.linkRepo.Create(ctx, l)
		if err == nil {
			uc.logger.Infow("link created", "link_id", l.ID(), "user_id", cmd.UserID, "short_code", code)
			return dto.ToLinkResponse(l, uc.baseURL), nil
		}
		if !errors.Is(err, link.ErrShortCodeTaken) {
			uc.logger.Errorw("failed to persist link", "user_id", cmd.UserID, "error", err)
			return nil, fmt.Errorf("failed to save link: %w", err)
		}
		uc.logger.Debugw("short code collision", "short_code", code, "attempt", attempt)
	}

	uc.logger.Errorw("short code space exhausted", "user_id", cmd.UserID, "attempts", maxShortCodeAttempts)
	return nil, apperrors.NewInternalError("could not allocate a short code, please retry")
}
