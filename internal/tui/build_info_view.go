// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-image-feed/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("Application: go-image-feed\nVersion: %s\nDate:    %s\nCommit:  %s",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit())

	return renderPage("ABOUT", body, "esc: back")
}
