// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses configuration flags from args (without the program
// name). It uses its own FlagSet so it can be called repeatedly in tests.
//
// Flags:
//
//	-a backend address in format [host]:[port]
//	-url backend base URL (e.g. "https://api.example.com"), wins over -a
//	-entry-url entry URL, guest=true in its query forces guest mode
//	-guest start in guest mode
//	-d local database DSN, "memory" keeps the session in memory only
//	-c/-config json file path with configs
//	-env-file dotenv file path
//	-log-file client log file path
//	-page-limit records per list page
//	-demo-delay guest demo data latency (e.g. "300ms")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-rate-limit outbound requests per second
//	-rate-burst outbound request burst
//	-refresh-interval token refresh check interval
//	-refresh-threshold refresh tokens expiring within this window
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("finance-client", flag.ContinueOnError)

	var serverAddress NetAddress
	var baseURL, entryURL string
	var guest bool
	var databaseDSN string
	var jsonConfigPath, envFilePath string
	var logFile string
	var pageLimit, rateBurst int
	var rateLimit float64
	var demoDelay, requestTimeout time.Duration
	var refreshInterval, refreshThreshold time.Duration

	fs.Var(&serverAddress, "a", "Backend net address host:port")
	fs.StringVar(&baseURL, "url", "", "Backend base URL")
	fs.StringVar(&entryURL, "entry-url", "", "Entry URL")
	fs.BoolVar(&guest, "guest", false, "Start in guest mode")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFilePath, "env-file", "", "Dotenv file path")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.IntVar(&pageLimit, "page-limit", 0, "Records per list page")
	fs.DurationVar(&demoDelay, "demo-delay", 0, "Guest demo data latency (e.g., 300ms)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Outbound requests per second")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Outbound request burst")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Token refresh check interval")
	fs.DurationVar(&refreshThreshold, "refresh-threshold", 0, "Refresh tokens expiring within this window")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	address := baseURL
	if address == "" && serverAddress.String() != "" {
		address = "http://" + serverAddress.String()
	}

	return &StructuredConfig{
		App: App{
			EntryURL:  entryURL,
			Guest:     guest,
			DemoDelay: demoDelay,
			PageLimit: pageLimit,
			LogFile:   logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			RefreshInterval:  refreshInterval,
			RefreshThreshold: refreshThreshold,
		},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFilePath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
