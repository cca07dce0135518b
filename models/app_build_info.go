// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// UnknownBuildValue stands in for build metadata that was not injected at
// link time.
const UnknownBuildValue = "N/A"

// AppBuildInfo is the version, date and commit a binary was built from,
// normally set with -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo trims the given values and replaces empty ones with
// [UnknownBuildValue].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(buildVersion),
		date:    orUnknown(buildDate),
		commit:  orUnknown(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orUnknown(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orUnknown(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orUnknown(a.commit) }

// String renders the three values one per line, the way the binaries print
// them on start.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orUnknown(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return UnknownBuildValue
	}
	return v
}
