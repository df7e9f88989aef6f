package http

import (
	"github.com/orris-inc/toolbox/internal/domain/client"
	"github.com/orris-inc/toolbox/internal/domain/link"
	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/domain/qrcode"
	"github.com/orris-inc/toolbox/internal/domain/user"
	"github.com/orris-inc/toolbox/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo   user.Repository
	siteRepo   monitor.SiteRepository
	checkRepo  monitor.CheckRepository
	linkRepo   link.Repository
	qrcodeRepo qrcode.Repository
	clientRepo client.Repository
	counter    *repository.ResourceCounter
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:   repository.NewUserRepository(c.db, c.log),
		siteRepo:   repository.NewSiteRepository(c.db, c.log),
		checkRepo:  repository.NewCheckRepository(c.db),
		linkRepo:   repository.NewLinkRepository(c.db),
		qrcodeRepo: repository.NewQRCodeRepository(c.db),
		clientRepo: repository.NewClientRepository(c.db),
		counter:    repository.NewResourceCounter(c.db),
	}
}
