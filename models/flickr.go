package models

// FlickrStatOK and FlickrStatFail are the values of [FlickrResponse.Stat].
const (
	FlickrStatOK   = "ok"
	FlickrStatFail = "fail"
)

// FlickrResponse is the envelope returned by Flickr-compatible REST feeds
// (format=json, nojsoncallback=1).
//
// A successful response carries Photos; a failed one carries Code and
// Message and Stat == "fail".
type FlickrResponse struct {
	Photos  *FlickrPhotos `json:"photos,omitempty"`
	Stat    string        `json:"stat"`
	Code    int           `json:"code,omitempty"`
	Message string        `json:"message,omitempty"`
}

// FlickrPhotos describes one page of results.
type FlickrPhotos struct {
	Page    int           `json:"page"`
	Pages   int           `json:"pages"`
	PerPage int           `json:"perpage"`
	Total   int           `json:"total"`
	Photo   []FlickrPhoto `json:"photo"`
}

// FlickrPhoto is a single entry of a page. URLSmall is present only when the
// request asked for extras=url_s.
type FlickrPhoto struct {
	ID       string `json:"id"`
	Owner    string `json:"owner,omitempty"`
	Title    string `json:"title"`
	URLSmall string `json:"url_s,omitempty"`
}

// FeedItem converts the photo into a [FeedItem]. ok is false when the photo
// cannot be displayed because it lacks an id or an image URL.
func (p FlickrPhoto) FeedItem() (item FeedItem, ok bool) {
	if p.ID == "" || p.URLSmall == "" {
		return FeedItem{}, false
	}
	return FeedItem{ID: p.ID, ImageRef: p.URLSmall, Title: p.Title}, true
}
