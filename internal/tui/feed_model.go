package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-image-feed/internal/service"
	"github.com/MKhiriev/go-image-feed/models"
)

const (
	// defaultListHeight is used until the terminal reports its size.
	defaultListHeight = 20
	// chromeHeight is the number of lines around the item list.
	chromeHeight = 12
	titleWidth   = 48
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type feedModel struct {
	ctx       context.Context
	feed      service.FeedSyncService
	updates   <-chan models.SyncState
	unsub     func()
	buildInfo models.AppBuildInfo

	state   models.SyncState
	idx     int
	height  int
	width   int
	spinner spinner.Model
	status  string

	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
}

func newFeedModel(ctx context.Context, feed service.FeedSyncService, buildInfo models.AppBuildInfo) feedModel {
	updates, unsub := feed.Subscribe()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return feedModel{
		ctx:       ctx,
		feed:      feed,
		updates:   updates,
		unsub:     unsub,
		buildInfo: buildInfo,
		state:     feed.State(),
		height:    defaultListHeight,
		spinner:   s,
	}
}

func (m feedModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForState(m.updates),
		m.cmdOperation(models.OpLoadInitial, m.feed.LoadInitial),
	)
}

func (m feedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case stateMsg:
		prev := m.state
		m.state = msg.state
		m.clampSelection()
		if msg.state.Phase == models.PhaseError && prev.Phase != models.PhaseError {
			m.showError = true
			m.errorOverlay = newErrorOverlay(msg.state)
		}
		if msg.state.Phase != models.PhaseError {
			m.showError = false
		}
		return m, waitForState(m.updates)
	case subscriptionClosedMsg:
		return m, nil
	case opDoneMsg:
		return m, nil
	case copiedMsg:
		m.status = "Image URL copied"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = "Copy failed: " + msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - chromeHeight
		if m.height < 1 {
			m.height = 1
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m feedModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.unsub()
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.showError = false
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.state.Items)-1 {
			m.idx++
		}
		return m, m.maybeLoadMore()
	case key.Matches(msg, keys.top):
		m.idx = 0
	case key.Matches(msg, keys.bottom):
		if len(m.state.Items) > 0 {
			m.idx = len(m.state.Items) - 1
		}
		return m, m.maybeLoadMore()
	case key.Matches(msg, keys.refresh):
		return m, m.cmdOperation(models.OpRefresh, m.feed.Refresh)
	case key.Matches(msg, keys.reset):
		m.idx = 0
		return m, m.cmdOperation(models.OpLoadInitial, m.feed.Reset)
	case key.Matches(msg, keys.retry):
		m.showError = false
		return m, m.cmdOperation(m.state.FailedOperation, m.feed.Retry)
	case key.Matches(msg, keys.copy):
		if item, ok := m.selected(); ok {
			return m, cmdCopyToClipboard(item.ImageRef)
		}
	}

	return m, nil
}

// maybeLoadMore requests the next page once the selection is within half a
// screen of the last item. The engine drops the trigger if it cannot run.
func (m feedModel) maybeLoadMore() tea.Cmd {
	if !m.state.HasMore || m.state.Phase != models.PhaseIdle {
		return nil
	}
	if len(m.state.Items)-1-m.idx > m.loadMoreThreshold() {
		return nil
	}
	return m.cmdOperation(models.OpLoadMore, m.feed.LoadMore)
}

func (m feedModel) loadMoreThreshold() int {
	t := m.height / 2
	if t < 1 {
		t = 1
	}
	return t
}

func (m feedModel) selected() (models.FeedItem, bool) {
	if m.idx < 0 || m.idx >= len(m.state.Items) {
		return models.FeedItem{}, false
	}
	return m.state.Items[m.idx], true
}

func (m *feedModel) clampSelection() {
	if m.idx >= len(m.state.Items) {
		m.idx = len(m.state.Items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m feedModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	body := renderPage(m.header(), m.listView(), "j/k move  r refresh  x reset  t retry  y copy url  v about")

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m feedModel) header() string {
	h := fmt.Sprintf("IMAGE FEED  %d items", len(m.state.Items))
	if m.state.Phase.IsLoading() {
		h += "  " + m.spinner.View() + " " + phaseLabel(m.state.Phase)
	}
	if m.state.FromCache {
		h += "  " + cacheBadgeStyle.Render("[offline copy]")
	}
	return h
}

func (m feedModel) listView() string {
	var b strings.Builder

	items := m.state.Items
	if len(items) == 0 {
		if m.state.Phase.IsLoading() {
			b.WriteString("Loading...\n")
		} else {
			b.WriteString("No images\n")
		}
	}

	from, to := visibleWindow(len(items), m.idx, m.height)
	for i := from; i < to; i++ {
		item := items[i]
		line := fmt.Sprintf("%4d  %s  %s", i+1, fitText(item.DisplayName(), titleWidth), item.ImageRef)
		if m.width > 0 {
			line = fitText(line, m.width-8)
		}
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if len(items) > 0 && !m.state.HasMore {
		b.WriteString(helpStyle.Render("-- end of feed --"))
		b.WriteString("\n")
	}
	if m.state.Phase == models.PhaseError {
		b.WriteString(errorStyle.Render("Error: " + humanizeFetchError(m.state.LastError)))
		b.WriteString("\n")
	}
	if m.state.CacheWarning != nil {
		b.WriteString(warningStyle.Render("Warning: " + humanizeCacheWarning(m.state.CacheWarning)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func phaseLabel(p models.Phase) string {
	switch p {
	case models.PhaseLoadingInitial:
		return "loading"
	case models.PhaseLoadingMore:
		return "loading more"
	case models.PhaseRefreshing:
		return "refreshing"
	default:
		return p.String()
	}
}

func waitForState(updates <-chan models.SyncState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return subscriptionClosedMsg{}
		}
		return stateMsg{state: state}
	}
}

func (m feedModel) cmdOperation(op models.Operation, run func(context.Context)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		run(ctx)
		return opDoneMsg{op: op}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := copyToClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
