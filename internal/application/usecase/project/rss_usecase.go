package project

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/domain/project"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type RSSUseCase struct {
	projectRepo project.Repository
	siteURL     string
	ownerName   string
	logger      logger.Logger
}

func NewRSSUseCase(pRepo project.Repository, siteURL, ownerName string, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{
		projectRepo: pRepo,
		siteURL:     strings.TrimSuffix(siteURL, "/"),
		ownerName:   ownerName,
		logger:      log,
	}
}

// Execute builds the feed newest first.
func (uc *RSSUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list projects for RSS", err)
		return nil, err
	}

	feed := &feeds.Feed{
		Title:       uc.ownerName + " - Projects",
		Link:        &feeds.Link{Href: uc.siteURL + "/references"},
		Description: "Recent projects and references.",
		Author:      &feeds.Author{Name: uc.ownerName},
		Created:     time.Now(),
	}

	items := make([]*feeds.Item, 0, len(projects))
	for i := len(projects) - 1; i >= 0; i-- {
		p := projects[i]
		link := uc.siteURL + "/references?category=" + url.QueryEscape(p.PrimaryCategory())
		if p.DemoURL != nil {
			link = *p.DemoURL
		}
		items = append(items, &feeds.Item{
			Id:          p.ID.String(),
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Description: p.Description,
			Created:     p.CreatedAt,
			Updated:     p.UpdatedAt,
		})
	}
	feed.Items = items

	uc.logger.Debug("RSS feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}
