// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-image-feed/internal/logger"
	"github.com/MKhiriev/go-image-feed/internal/utils"
	"github.com/MKhiriev/go-image-feed/models"
)

const (
	methodGetRecent = "flickr.photos.getRecent"
	extraURLSmall   = "url_s"

	// jsonpCallback wraps the envelope unless nojsoncallback=1 is given.
	jsonpCallback = "jsonFlickrApi"
)

// serveREST answers GET /services/rest in the Flickr envelope. Like Flickr,
// every answer is HTTP 200; failures are reported with stat "fail".
func (h *Handler) serveREST(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	q := r.URL.Query()

	resp, err := h.getRecent(r, q)
	if err != nil {
		log.Warn().Err(err).Str("method", q.Get("method")).Msg("request rejected")
		resp = failureResponse(err)
	} else {
		log.Debug().
			Int("page", resp.Photos.Page).
			Int("per_page", resp.Photos.PerPage).
			Int("photos", len(resp.Photos.Photo)).
			Msg("page served")
	}

	if q.Get("nojsoncallback") == "1" {
		if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
			log.Err(err).Msg("failed to write response")
		}
		return
	}
	if _, err = utils.WriteJSONP(w, jsonpCallback, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write response")
	}
}

func (h *Handler) getRecent(r *http.Request, q url.Values) (models.FlickrResponse, error) {
	if method := q.Get("method"); method != methodGetRecent {
		return models.FlickrResponse{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	if h.apiKey != "" && q.Get("api_key") != h.apiKey {
		return models.FlickrResponse{}, ErrInvalidAPIKey
	}
	if format := q.Get("format"); format != "json" {
		return models.FlickrResponse{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	page := h.services.Catalogue.Page(r.Context(), intParam(q, "page"), intParam(q, "per_page"))
	if !hasExtra(q.Get("extras"), extraURLSmall) {
		for i := range page.Photo {
			page.Photo[i].URLSmall = ""
		}
	}

	return models.FlickrResponse{Stat: models.FlickrStatOK, Photos: &page}, nil
}

// intParam returns the integer value of key, or 0 when it is absent or not
// a number.
func intParam(q url.Values, key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(q.Get(key)))
	if err != nil {
		return 0
	}
	return v
}

func hasExtra(extras, name string) bool {
	for _, e := range strings.Split(extras, ",") {
		if strings.TrimSpace(e) == name {
			return true
		}
	}
	return false
}
