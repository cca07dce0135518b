package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a partial
// [StructuredConfig].
//
// Flags:
//
//	-a dev server address in format [host]:[port]
//	-grpc-address dev server gRPC health address in format [host]:[port]
//	-fixture dev server catalogue JSON file
//	-remote remote feed API base URL
//	-api-key remote feed API key
//	-page-size items requested per page
//	-request-timeout remote request timeout (e.g. "15s")
//	-rps remote requests per second
//	-d cache database DSN
//	-snapshot-key cache snapshot key
//	-refresh-interval background refresh period (e.g. "5m")
//	-log-level log level
//	-log-file client log file
//	-c/-config JSON or TOML config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args)
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("image-feed", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var fixturePath string
	var remoteURL, apiKey string
	var pageSize int
	var requestTimeout time.Duration
	var rps float64
	var dsn, snapshotKey string
	var refreshInterval time.Duration
	var logLevel, logFile string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&fixturePath, "fixture", "", "Dev server catalogue JSON file")
	fs.StringVar(&remoteURL, "remote", "", "Remote feed API base URL")
	fs.StringVar(&apiKey, "api-key", "", "Remote feed API key")
	fs.IntVar(&pageSize, "page-size", 0, "Items requested per page")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.Float64Var(&rps, "rps", 0, "Remote requests per second")
	fs.StringVar(&dsn, "d", "", "Cache database DSN")
	fs.StringVar(&snapshotKey, "snapshot-key", "", "Cache snapshot key")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh period (e.g., 5m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON or TOML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Remote: Remote{
			BaseURL:           remoteURL,
			APIKey:            apiKey,
			PageSize:          pageSize,
			RequestTimeout:    requestTimeout,
			RequestsPerSecond: rps,
		},
		Storage: Storage{
			DB:          DB{DSN: dsn},
			SnapshotKey: snapshotKey,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			FixturePath:    fixturePath,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
