package analytics

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const defaultReportTimeout = 10 * time.Second

// Reporter delivers final playthrough reports to an external collection
// endpoint. Delivery is launch-and-forget: it runs on its own goroutine,
// is never retried, and failure is logged and dropped. Game state never
// depends on the outcome.
type Reporter struct {
	url    string
	client *http.Client
}

// NewReporter builds a reporter for the given endpoint. An empty url
// disables delivery entirely.
func NewReporter(url string, timeout time.Duration) *Reporter {
	if timeout <= 0 {
		timeout = defaultReportTimeout
	}
	return &Reporter{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Deliver posts the record and returns immediately.
func (r *Reporter) Deliver(record map[string]any) {
	if r.url == "" {
		return
	}

	body, err := json.Marshal(record)
	if err != nil {
		slog.Warn("marshalling final report", "error", err)
		return
	}

	go func() {
		resp, err := r.client.Post(r.url, "application/json", bytes.NewReader(body))
		if err != nil {
			slog.Warn("delivering final report", "error", err)
			return
		}
		_ = resp.Body.Close()
		slog.Debug("final report delivered", "status", resp.StatusCode)
	}()
}
