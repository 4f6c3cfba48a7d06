// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jenkins

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bureau-foundation/jump/lib/clock"
	"github.com/bureau-foundation/jump/lib/netutil"
)

// ResultSuccess is the result of a green build.
const ResultSuccess = "SUCCESS"

// ErrNoBuild is returned when the job has no build for the version.
var ErrNoBuild = errors.New("no build for this version")

// CheckError reports a last build that is unfinished or not green.
type CheckError struct {
	Version string

	// Result is empty while the build is running.
	Result string

	// Elapsed is the time since the build started.
	Elapsed time.Duration
}

// InProgress reports whether the build has not finished yet.
func (e *CheckError) InProgress() bool {
	return e.Result == ""
}

func (e *CheckError) Error() string {
	elapsed := e.Elapsed.Truncate(time.Second)
	if e.InProgress() {
		return fmt.Sprintf("build of %s is still in progress, started %s ago", e.Version, elapsed)
	}
	return fmt.Sprintf("build of %s is broken (%s), update aborted; last run started %s ago", e.Version, e.Result, elapsed)
}

// Build is the part of a Jenkins build record jump reads.
type Build struct {
	Result    *string `json:"result"`
	Timestamp int64   `json:"timestamp"`
	URL       string  `json:"url"`
}

// Started returns the build start time.
func (b Build) Started() time.Time {
	return time.UnixMilli(b.Timestamp)
}

// Config holds the settings of a [Client].
type Config struct {
	// HTTPClient defaults to a client with a 10 second timeout.
	HTTPClient *http.Client

	// Clock defaults to clock.Real().
	Clock clock.Clock

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Client queries Jenkins job endpoints.
type Client struct {
	httpClient *http.Client
	clock      clock.Clock
	logger     *slog.Logger
}

// NewClient returns a client with config's defaults resolved.
func NewClient(config Config) *Client {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{httpClient: httpClient, clock: clk, logger: logger}
}

// ExpandURL substitutes {version} and every {NAME} present in vars.
func ExpandURL(template, version string, vars map[string]string) string {
	pairs := []string{"{version}", version}
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// LastBuild fetches the build record at url.
func (c *Client) LastBuild(ctx context.Context, url string) (Build, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Build{}, fmt.Errorf("jenkins: creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return Build{}, fmt.Errorf("jenkins: GET %s: %w", url, err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return Build{}, ErrNoBuild
	}
	if response.StatusCode != http.StatusOK {
		return Build{}, fmt.Errorf("jenkins: GET %s: HTTP %d: %s", url, response.StatusCode,
			strings.TrimSpace(netutil.ErrorBody(response.Body)))
	}

	var build Build
	if err := netutil.DecodeResponse(response.Body, &build); err != nil {
		return Build{}, fmt.Errorf("jenkins: %s: %w", url, err)
	}
	return build, nil
}

// Check returns nil when the last build of version is green, a
// [*CheckError] when it is running or broken, and ErrNoBuild when the
// job has never built the version.
func (c *Client) Check(ctx context.Context, urlTemplate, version string, vars map[string]string) error {
	url := ExpandURL(urlTemplate, version, vars)
	build, err := c.LastBuild(ctx, url)
	if err != nil {
		return err
	}

	elapsed := clock.Since(c.clock, build.Started())
	c.logger.Debug("jenkins build", "url", url, "result", build.Result, "elapsed", elapsed)

	if build.Result == nil {
		return &CheckError{Version: version, Elapsed: elapsed}
	}
	if *build.Result != ResultSuccess {
		return &CheckError{Version: version, Result: *build.Result, Elapsed: elapsed}
	}
	return nil
}
