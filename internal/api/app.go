package api

import (
	"time"

	"github.com/Krushna4142/FitOS-dashboard/internal"
	"github.com/Krushna4142/FitOS-dashboard/internal/auth"
	"github.com/Krushna4142/FitOS-dashboard/internal/mock"
	"github.com/Krushna4142/FitOS-dashboard/internal/service"
)

type App interface {
	Logger() internal.Logger
	Journal() *service.Journal
	Mock() *mock.Service
	Auth() auth.Provider
	Now() time.Time
}

type app struct {
	logger  internal.Logger
	journal *service.Journal
	mock    *mock.Service
	auth    auth.Provider
	now     func() time.Time
}

func NewApp(logger internal.Logger, journal *service.Journal, mockSvc *mock.Service, provider auth.Provider) App {
	return &app{
		logger:  logger,
		journal: journal,
		mock:    mockSvc,
		auth:    provider,
		now:     time.Now,
	}
}

func (a *app) Logger() internal.Logger     { return a.logger }
func (a *app) Journal() *service.Journal   { return a.journal }
func (a *app) Mock() *mock.Service         { return a.mock }
func (a *app) Auth() auth.Provider         { return a.auth }
func (a *app) Now() time.Time              { return a.now() }
