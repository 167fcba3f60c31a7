// Package page builds the view models of the public pages. Sections load
// concurrently; a section whose read fails is logged and rendered empty.
package page

import (
	"context"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mahathirrr/portfolio/internal/domain/education"
	"github.com/mahathirrr/portfolio/internal/domain/experience"
	"github.com/mahathirrr/portfolio/internal/domain/personalinfo"
	"github.com/mahathirrr/portfolio/internal/domain/project"
	"github.com/mahathirrr/portfolio/internal/domain/service"
	"github.com/mahathirrr/portfolio/internal/domain/sitesetting"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

const viewKey = "view"

// ViewCache is satisfied by cache.PrefixedCache.
type ViewCache[T any] interface {
	Get(ctx context.Context, key any) (T, error)
	Set(ctx context.Context, key any, object T) error
	Delete(ctx context.Context, key any) error
}

type Sources struct {
	PersonalInfo personalinfo.Repository
	Services     service.Repository
	Projects     project.Repository
	Experiences  experience.Repository
	Education    education.Repository
	Settings     sitesetting.Repository
}

// A nil field leaves that page uncached.
type Caches struct {
	Home       ViewCache[HomeView]
	Services   ViewCache[ServicesView]
	References ViewCache[ReferencesView]
	Experience ViewCache[ExperienceView]
}

type PageUseCase struct {
	src    Sources
	caches Caches
	logger logger.Logger
}

func NewPageUseCase(src Sources, caches Caches, log logger.Logger) *PageUseCase {
	return &PageUseCase{src: src, caches: caches, logger: log}
}

type HomeView struct {
	PersonalInfo *personalinfo.PersonalInfo `json:"personal_info"`
	Services     []*service.Service         `json:"services"`
	Settings     map[string]bool            `json:"settings"`
}

type ServicesView struct {
	Services   []*service.Service `json:"services"`
	Categories []string           `json:"categories"`
	Settings   map[string]bool    `json:"settings"`
}

type ProjectCard struct {
	*project.Project
	DisplayCategory string `json:"display_category"`
}

type ReferencesView struct {
	Projects   []ProjectCard   `json:"projects"`
	Categories []string        `json:"categories"`
	Selected   string          `json:"selected_category"`
	Settings   map[string]bool `json:"settings"`
}

type ExperienceCard struct {
	*experience.Experience
	Period string `json:"period"`
}

type EducationCard struct {
	*education.Education
	Period string `json:"period"`
}

type ExperienceView struct {
	Experiences    []ExperienceCard `json:"experiences"`
	Education      []EducationCard  `json:"education"`
	ShowExperience bool             `json:"show_experience_section"`
	ShowEducation  bool             `json:"show_education_section"`
	Settings       map[string]bool  `json:"settings"`
}

func (uc *PageUseCase) Home(ctx context.Context) HomeView {
	return cached(ctx, uc.caches.Home, uc.logger, func(ctx context.Context) (HomeView, bool) {
		var (
			wg       conc.WaitGroup
			info     *personalinfo.PersonalInfo
			services []*service.Service
			settings sitesetting.Settings
			ok       bool
		)
		wg.Go(func() { info, ok = uc.loadPersonalInfo(ctx) })
		wg.Go(func() { services = uc.loadServices(ctx) })
		wg.Go(func() { settings = uc.loadSettings(ctx) })
		wg.Wait()

		complete := ok && services != nil && settings != nil
		return HomeView{
			PersonalInfo: info,
			Services:     orEmpty(services),
			Settings:     settings.Resolved(),
		}, complete
	})
}

func (uc *PageUseCase) Services(ctx context.Context) ServicesView {
	return cached(ctx, uc.caches.Services, uc.logger, func(ctx context.Context) (ServicesView, bool) {
		var (
			wg       conc.WaitGroup
			services []*service.Service
			settings sitesetting.Settings
		)
		wg.Go(func() { services = uc.loadServices(ctx) })
		wg.Go(func() { settings = uc.loadSettings(ctx) })
		wg.Wait()

		categories := lo.Uniq(lo.FilterMap(services, func(s *service.Service, _ int) (string, bool) {
			return s.Category, s.Category != ""
		}))
		return ServicesView{
			Services:   orEmpty(services),
			Categories: categories,
			Settings:   settings.Resolved(),
		}, services != nil && settings != nil
	})
}

// References filters the fetched (and cached) projects by category.
func (uc *PageUseCase) References(ctx context.Context, category string) ReferencesView {
	base := cached(ctx, uc.caches.References, uc.logger, func(ctx context.Context) (ReferencesView, bool) {
		var (
			wg       conc.WaitGroup
			projects []*project.Project
			settings sitesetting.Settings
		)
		wg.Go(func() { projects = uc.loadProjects(ctx) })
		wg.Go(func() { settings = uc.loadSettings(ctx) })
		wg.Wait()

		cards := lo.Map(projects, func(p *project.Project, _ int) ProjectCard {
			return ProjectCard{Project: p, DisplayCategory: p.PrimaryCategory()}
		})
		return ReferencesView{
			Projects:   cards,
			Categories: append([]string{project.AllCategories}, project.DistinctCategories(projects)...),
			Selected:   project.AllCategories,
			Settings:   settings.Resolved(),
		}, projects != nil && settings != nil
	})

	if category == "" || category == project.AllCategories {
		return base
	}
	filtered := lo.Filter(base.Projects, func(c ProjectCard, _ int) bool {
		return c.HasCategory(category)
	})
	base.Projects = filtered
	base.Selected = category
	return base
}

func (uc *PageUseCase) Experience(ctx context.Context) ExperienceView {
	return cached(ctx, uc.caches.Experience, uc.logger, func(ctx context.Context) (ExperienceView, bool) {
		var (
			wg          conc.WaitGroup
			experiences []*experience.Experience
			educations  []*education.Education
			settings    sitesetting.Settings
		)
		wg.Go(func() { experiences = uc.loadExperiences(ctx) })
		wg.Go(func() { educations = uc.loadEducation(ctx) })
		wg.Go(func() { settings = uc.loadSettings(ctx) })
		wg.Wait()

		complete := experiences != nil && educations != nil && settings != nil
		view := ExperienceView{
			ShowExperience: settings.Get(sitesetting.KeyShowExperienceSection),
			ShowEducation:  settings.Get(sitesetting.KeyShowEducationSection),
			Settings:       settings.Resolved(),
			Experiences:    []ExperienceCard{},
			Education:      []EducationCard{},
		}
		if view.ShowExperience {
			view.Experiences = lo.Map(experiences, func(e *experience.Experience, _ int) ExperienceCard {
				return ExperienceCard{Experience: e, Period: e.Period()}
			})
		}
		if view.ShowEducation {
			view.Education = lo.Map(educations, func(e *education.Education, _ int) EducationCard {
				return EducationCard{Education: e, Period: e.Period()}
			})
		}
		return view, complete
	})
}

// Invalidate drops every cached page view.
func (uc *PageUseCase) Invalidate(ctx context.Context) error {
	var g errgroup.Group
	if uc.caches.Home != nil {
		g.Go(func() error { return uc.caches.Home.Delete(ctx, viewKey) })
	}
	if uc.caches.Services != nil {
		g.Go(func() error { return uc.caches.Services.Delete(ctx, viewKey) })
	}
	if uc.caches.References != nil {
		g.Go(func() error { return uc.caches.References.Delete(ctx, viewKey) })
	}
	if uc.caches.Experience != nil {
		g.Go(func() error { return uc.caches.Experience.Delete(ctx, viewKey) })
	}
	return g.Wait()
}

func cached[T any](ctx context.Context, c ViewCache[T], log logger.Logger, build func(context.Context) (T, bool)) T {
	if c != nil {
		if v, err := c.Get(ctx, viewKey); err == nil {
			return v
		}
	}
	v, complete := build(ctx)
	// A view with a failed section is not cached.
	if c != nil && complete {
		if err := c.Set(ctx, viewKey, v); err != nil {
			log.Warn("Failed to cache page view", zap.Error(err))
		}
	}
	return v
}

func (uc *PageUseCase) loadPersonalInfo(ctx context.Context) (*personalinfo.PersonalInfo, bool) {
	info, err := uc.src.PersonalInfo.FindSingle(ctx)
	if err != nil {
		uc.logger.Error("Page section failed: personal_info", err)
		return nil, false
	}
	return info, true
}

func (uc *PageUseCase) loadServices(ctx context.Context) []*service.Service {
	rows, err := uc.src.Services.List(ctx)
	if err != nil {
		uc.logger.Error("Page section failed: services", err)
		return nil
	}
	return rows
}

func (uc *PageUseCase) loadProjects(ctx context.Context) []*project.Project {
	rows, err := uc.src.Projects.List(ctx)
	if err != nil {
		uc.logger.Error("Page section failed: projects", err)
		return nil
	}
	return rows
}

func (uc *PageUseCase) loadExperiences(ctx context.Context) []*experience.Experience {
	rows, err := uc.src.Experiences.List(ctx)
	if err != nil {
		uc.logger.Error("Page section failed: experiences", err)
		return nil
	}
	return rows
}

func (uc *PageUseCase) loadEducation(ctx context.Context) []*education.Education {
	rows, err := uc.src.Education.List(ctx)
	if err != nil {
		uc.logger.Error("Page section failed: education", err)
		return nil
	}
	return rows
}

// loadSettings returns nil on error. A nil Settings still reads every key as true.
func (uc *PageUseCase) loadSettings(ctx context.Context) sitesetting.Settings {
	rows, err := uc.src.Settings.List(ctx)
	if err != nil {
		uc.logger.Error("Page section failed: site_settings", err)
		return nil
	}
	return sitesetting.FromList(rows)
}

func orEmpty[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
