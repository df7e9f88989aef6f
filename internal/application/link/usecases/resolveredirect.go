package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/orris-inc/toolbox/internal/domain/link"
	"github.com/orris-inc/toolbox/internal/shared/biztime"
	"github.com/orris-inc/toolbox/internal/shared/constants"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
	"github.com/orris-inc/toolbox/internal/shared/id"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

const maxHeaderLength = 512

type ResolveRedirectCommand struct {
	ShortCode string
	Referer   string
	UserAgent string
}

type RedirectResult struct {
	Location string
	Disabled bool
}

// ResolveRedirectUseCase turns a short code into its redirect target and
// records the click.
type ResolveRedirectUseCase struct {
	linkRepo link.Repository
	logger   logger.Interface
}

func NewResolveRedirectUseCase(linkRepo link.Repository, logger logger.Interface) *ResolveRedirectUseCase {
	return &ResolveRedirectUseCase{linkRepo: linkRepo, logger: logger}
}

func (uc *ResolveRedirectUseCase) Execute(ctx context.Context, cmd ResolveRedirectCommand) (*RedirectResult, error) {
	if !id.IsValid(cmd.ShortCode, id.ShortCodeLength) {
		return nil, apperrors.NewNotFoundError("link not found")
	}

	l, err := uc.linkRepo.GetByShortCode(ctx, cmd.ShortCode)
	if err != nil {
		if errors.Is(err, link.ErrLinkNotFound) {
			return nil, apperrors.NewNotFoundError("link not found")
		}
		return nil, fmt.Errorf("failed to resolve short code: %w", err)
	}

	if !l.IsActive() {
		return &RedirectResult{Location: constants.PathLinkDisabled, Disabled: true}, nil
	}

	event := &link.ClickEvent{
		LinkID:    l.ID(),
		ClickedAt: biztime.NowUTC(),
		Referer:   truncate(cmd.Referer, maxHeaderLength),
		UserAgent: truncate(cmd.UserAgent, maxHeaderLength),
	}
	// A lost click must not break the redirect.
	if err := uc.linkRepo.RecordClick(ctx, event); err != nil {
		uc.logger.Errorw("failed to record click", "link_id", l.ID(), "error", err)
	}

	return &RedirectResult{Location: l.OriginalURL()}, nil
}

// truncate caps s at n bytes without splitting a rune. Invalid UTF-8 from the
// client is dropped, since utf8mb4 columns reject it.
func truncate(s string, n int) string {
	s = strings.ToValidUTF8(s, "")
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
