// Package utils holds small helpers shared by the transport and service
// layers: JSON response writers and identifier generation.
package utils
