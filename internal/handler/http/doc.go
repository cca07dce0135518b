// Package http implements the HTTP transport of the development feed server.
//
// It serves the image catalogue through a Flickr-compatible REST endpoint so
// the client can be pointed at a local, deterministic feed. Request tracing,
// access logging, panic recovery and compression are applied as chi
// middlewares before requests reach the handlers.
package http
