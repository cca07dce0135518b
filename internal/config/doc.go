// Package config loads the settings of the feed client and the dev feed
// server.
//
// Sources are merged in this order, a later non-zero field overriding an
// earlier one:
//  1. built-in defaults
//  2. environment variables (APP_, REMOTE_, STORAGE_, SERVER_, WORKERS_)
//  3. command-line flags
//  4. a JSON or TOML file named by CONFIG or -c
//
// [GetClientConfig] and [GetServerConfig] return validated views of the
// merged result.
package config
