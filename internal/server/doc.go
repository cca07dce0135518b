// Package server runs the dev feed server's listeners.
//
// The HTTP listener serves the Flickr-compatible REST endpoint; the optional
// gRPC listener serves health checks. Both are bound before anything is
// served and are stopped together on a signal or on the first failure.
package server
