package dashboard

import (
	"context"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel"

	"github.com/mahathirrr/portfolio/internal/domain/education"
	"github.com/mahathirrr/portfolio/internal/domain/experience"
	"github.com/mahathirrr/portfolio/internal/domain/personalinfo"
	"github.com/mahathirrr/portfolio/internal/domain/project"
	"github.com/mahathirrr/portfolio/internal/domain/service"
	"github.com/mahathirrr/portfolio/internal/domain/sitesetting"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

const FetchFailedMessage = "Failed to fetch data"

var tracer = otel.Tracer("dashboard_usecase")

type Repositories struct {
	PersonalInfo personalinfo.Repository
	Services     service.Repository
	Projects     project.Repository
	Experiences  experience.Repository
	Education    education.Repository
	Settings     sitesetting.Repository
}

type DashboardUseCase struct {
	repos  Repositories
	logger logger.Logger
}

func NewDashboardUseCase(repos Repositories, log logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{repos: repos, logger: log}
}

// Dashboard keeps every slice that was read. Slices are never nil, and Error is
// set when at least one read failed.
type Dashboard struct {
	PersonalInfo *personalinfo.PersonalInfo `json:"personal_info"`
	Services     []*service.Service         `json:"services"`
	Projects     []*project.Project         `json:"projects"`
	Experiences  []*experience.Experience   `json:"experiences"`
	Education    []*education.Education     `json:"education"`
	Settings     []*sitesetting.Setting     `json:"site_settings"`
	Error        string                     `json:"error,omitempty"`
}

// Execute runs the six reads concurrently without retry. A failed read does not
// discard the others.
func (uc *DashboardUseCase) Execute(ctx context.Context) *Dashboard {
	ctx, span := tracer.Start(ctx, "LoadDashboard")
	defer span.End()

	d := &Dashboard{
		Services:    []*service.Service{},
		Projects:    []*project.Project{},
		Experiences: []*experience.Experience{},
		Education:   []*education.Education{},
		Settings:    []*sitesetting.Setting{},
	}

	p := pool.New().WithErrors()
	p.Go(func() error {
		info, err := uc.repos.PersonalInfo.FindSingle(ctx)
		if err != nil {
			return err
		}
		d.PersonalInfo = info
		return nil
	})
	p.Go(func() error {
		rows, err := uc.repos.Services.List(ctx)
		if err != nil {
			return err
		}
		d.Services = orEmpty(rows)
		return nil
	})
	p.Go(func() error {
		rows, err := uc.repos.Projects.List(ctx)
		if err != nil {
			return err
		}
		d.Projects = orEmpty(rows)
		return nil
	})
	p.Go(func() error {
		rows, err := uc.repos.Experiences.List(ctx)
		if err != nil {
			return err
		}
		d.Experiences = orEmpty(rows)
		return nil
	})
	p.Go(func() error {
		rows, err := uc.repos.Education.List(ctx)
		if err != nil {
			return err
		}
		d.Education = orEmpty(rows)
		return nil
	})
	p.Go(func() error {
		rows, err := uc.repos.Settings.List(ctx)
		if err != nil {
			return err
		}
		d.Settings = orEmpty(rows)
		return nil
	})

	if err := p.Wait(); err != nil {
		span.RecordError(err)
		uc.logger.Error("Dashboard fetch partially failed", err)
		d.Error = FetchFailedMessage
	}
	return d
}

func orEmpty[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
