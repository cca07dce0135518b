package tui

import (
	"fmt"

	"github.com/MKhiriev/go-image-feed/models"
)

type errorOverlayModel struct {
	op      models.Operation
	message string
}

func newErrorOverlay(state models.SyncState) errorOverlayModel {
	return errorOverlayModel{
		op:      state.FailedOperation,
		message: humanizeFetchError(state.LastError),
	}
}

func (m errorOverlayModel) title() string {
	switch m.op {
	case models.OpLoadInitial:
		return "Could not load the feed"
	case models.OpLoadMore:
		return "Could not load more images"
	case models.OpRefresh:
		return "Could not refresh the feed"
	default:
		return "Error"
	}
}

func (m errorOverlayModel) View() string {
	content := fmt.Sprintf("%s\n\n%s\n\n%s",
		errorStyle.Render(m.title()),
		m.message,
		helpStyle.Render("t retry  x reset  esc close"))
	return overlayBoxStyle.Render(content)
}
