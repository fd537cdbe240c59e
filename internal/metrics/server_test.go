package metrics

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestServerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCodecMetricsWithRegistry(reg)
	m.RecordEncode(30)

	srv := NewServerWithRegistry("127.0.0.1:0", reg)
	if err := srv.Start(); err != nil {
		t.Fatalf("failed to start metrics server: %v", err)
	}
	defer srv.Close()

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	if err != nil {
		t.Fatalf("failed to scrape metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if !strings.Contains(string(body), "kwire_codec_frames_encoded_total") {
		t.Errorf("scrape output missing codec counter:\n%s", body)
	}
}

func TestServerCloseBeforeStart(t *testing.T) {
	srv := NewServer(":0")
	if err := srv.Close(); err != nil {
		t.Errorf("Close before Start returned error: %v", err)
	}
}
