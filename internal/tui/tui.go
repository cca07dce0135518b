package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/internal/service"
	"github.com/MKhiriev/go-image-feed/models"
)

// ErrNilFeedService is returned by New when services carry no feed engine.
var ErrNilFeedService = errors.New("tui: feed service is nil")

// TUI is the terminal front end of the feed. It subscribes to the feed
// engine and turns key presses into engine operations.
type TUI struct {
	feed      service.FeedSyncService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.FeedService == nil {
		return nil, ErrNilFeedService
	}
	return &TUI{
		feed:      services.FeedService,
		buildInfo: buildInfo,
		logger:    log.WithComponent("tui"),
	}, nil
}

// Run shows the feed and blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newFeedModel(ctx, t.feed, t.buildInfo)
	defer model.unsub()

	t.logger.Debug().Msg("starting terminal ui")
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
