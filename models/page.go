package models

// Page is the result of fetching one page of the remote feed.
type Page struct {
	// Index is the 1-based page number that was requested.
	Index int
	// Items are the page entries in the order returned by the source.
	Items []FeedItem
}

// IsEnd reports whether the page signals the end of the feed.
// An empty page is authoritative and is not an error.
func (p Page) IsEnd() bool {
	return len(p.Items) == 0
}
