package service

import (
	"context"

	"github.com/MKhiriev/go-image-feed/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

// NewAppInfoService returns an [AppInfoService] reporting buildInfo.
func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{buildInfo: buildInfo}
}

func (a *appInfoService) GetAppVersion(_ context.Context) string {
	return a.buildInfo.BuildVersion()
}
