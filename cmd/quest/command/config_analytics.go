package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-quest/internal/analytics"
)

type AnalyticsConfig struct {
	// DatabasePath locates the append-only event log
	DatabasePath string `json:"database_path"`

	// ReportURL receives final playthrough reports; empty disables delivery
	ReportURL string `json:"report_url,omitempty"`

	ReportTimeout string `json:"report_timeout,omitempty"`
}

func (c *AnalyticsConfig) validate() error {
	el := errors.NewErrorList()

	if c.DatabasePath == "" {
		el.Add(fmt.Errorf("database_path is required"))
	}

	if c.ReportURL != "" && !strings.HasPrefix(c.ReportURL, "http") {
		el.Add(fmt.Errorf("report_url must be an http(s) url"))
	}

	if c.ReportTimeout != "" {
		_, err := time.ParseDuration(c.ReportTimeout)
		if err != nil {
			el.Add(fmt.Errorf("parsing report_timeout: %w", err))
		}
	}

	return el.Err()
}

func (c *AnalyticsConfig) buildTracker() (*analytics.Tracker, error) {
	return analytics.NewTracker(c.DatabasePath)
}

func (c *AnalyticsConfig) buildReporter() (*analytics.Reporter, error) {
	var timeout time.Duration
	if c.ReportTimeout != "" {
		d, err := time.ParseDuration(c.ReportTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing report_timeout: %w", err)
		}
		timeout = d
	}

	return analytics.NewReporter(c.ReportURL, timeout), nil
}
