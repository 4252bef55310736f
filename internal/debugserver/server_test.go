package debugserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"distbench/domain/bench"
	"distbench/domain/core"
	"distbench/internal"
)

func newTestServer() (*Server, *httptest.Server) {
	s := New(":0", internal.NewLogger(internal.LogLevelError))
	return s, httptest.NewServer(s.Handler())
}

func TestLatestBeforeAnyRun(t *testing.T) {
	_, ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/runs/latest")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestLatestAfterRun(t *testing.T) {
	s, ts := newTestServer()
	defer ts.Close()

	cmp := &bench.Comparison{
		RunID:      core.NewRunID(),
		Experiment: bench.Experiment{Agents: 10, Steps: 5, Lambda: 12.0},
		ObjectOwned: bench.VariantResult{
			Variant: bench.VariantObjectOwned, Elapsed: 2 * time.Millisecond, SamplingCalls: 10,
		},
		ExplicitState: bench.VariantResult{
			Variant: bench.VariantExplicitState, Elapsed: time.Millisecond, SamplingCalls: 10,
		},
		Speedup: 2.0,
	}
	s.SetLatest(cmp)

	resp, err := http.Get(ts.URL + "/runs/latest")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got bench.Comparison
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.RunID != cmp.RunID {
		t.Errorf("RunID = %s, want %s", got.RunID, cmp.RunID)
	}
	if got.Speedup != 2.0 {
		t.Errorf("Speedup = %f, want 2.0", got.Speedup)
	}
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestPprofMounted(t *testing.T) {
	_, ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/debug/pprof/")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
