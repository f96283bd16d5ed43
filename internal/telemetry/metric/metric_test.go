// Package metric provides Prometheus metrics for redisgate.
package metric

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}

	// Registering the same metric names twice must conflict.
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	r.MustRegister(NewRegistry().RequestsTotal)
}

func TestRegistry_ObserveRequest(t *testing.T) {
	r := NewRegistry()
	r.ObserveRequest("POST", "pipeline", 200, 5*time.Millisecond)
	r.ObserveRequest("POST", "pipeline", 400, time.Millisecond)
	r.ObserveRequest("GET", "command", 200, time.Millisecond)

	families, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	var requests, durations bool
	for _, mf := range families {
		switch mf.GetName() {
		case "redisgate_http_requests_total":
			requests = true
			if len(mf.GetMetric()) != 3 {
				t.Errorf("requests_total series = %d, want 3", len(mf.GetMetric()))
			}
		case "redisgate_http_request_duration_seconds":
			durations = true
		}
	}
	if !requests || !durations {
		t.Errorf("missing request metrics: requests=%v durations=%v", requests, durations)
	}
}

func TestRegistry_ObserveCommands(t *testing.T) {
	r := NewRegistry()
	r.ObserveCommands("pipeline", 3, false)
	r.ObserveCommands("transaction", 2, true)

	families, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	for _, mf := range families {
		if mf.GetName() != "redisgate_store_commands_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			switch labels["mode"] {
			case "pipeline":
				if labels["outcome"] != "ok" || m.GetCounter().GetValue() != 3 {
					t.Errorf("pipeline counter = %v %v", labels, m.GetCounter().GetValue())
				}
			case "transaction":
				if labels["outcome"] != "error" || m.GetCounter().GetValue() != 2 {
					t.Errorf("transaction counter = %v %v", labels, m.GetCounter().GetValue())
				}
			}
		}
		return
	}
	t.Error("redisgate_store_commands_total not found")
}

func TestStoreCollector(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewStoreCollector(func() PoolStats {
		return PoolStats{Hits: 7, TotalConns: 2, IdleConns: 1}
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	r.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "redisgate_store_pool_hits_total 7") {
		t.Errorf("pool hits missing from scrape:\n%s", body)
	}
	if !strings.Contains(body, "redisgate_store_pool_conns 2") {
		t.Errorf("pool conns missing from scrape")
	}
}

func TestServer_Shutdown(t *testing.T) {
	s := NewServer("127.0.0.1:0", NewRegistry())

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ListenAndServe did not return after Shutdown")
	}
}
