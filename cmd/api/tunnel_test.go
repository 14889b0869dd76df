package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDetectTunnelURL(t *testing.T) {
	t.Run("prefers https", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`))
		}))
		defer ts.Close()

		got, err := detectTunnelURL(context.Background(), ts.URL, 1, 0)
		if err != nil || got != "https://a.ngrok.io" {
			t.Errorf("got %q, %v", got, err)
		}
	})

	t.Run("retries until a tunnel appears", func(t *testing.T) {
		var calls atomic.Int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.Write([]byte(`{"tunnels":[]}`))
				return
			}
			w.Write([]byte(`{"tunnels":[{"public_url":"http://b.ngrok.io","proto":"http"}]}`))
		}))
		defer ts.Close()

		got, err := detectTunnelURL(context.Background(), ts.URL, 5, time.Millisecond)
		if err != nil || got != "http://b.ngrok.io" {
			t.Errorf("got %q, %v", got, err)
		}
		if calls.Load() != 3 {
			t.Errorf("expected 3 calls, got %d", calls.Load())
		}
	})

	t.Run("gives up", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer ts.Close()

		if _, err := detectTunnelURL(context.Background(), ts.URL, 2, time.Millisecond); err == nil {
			t.Error("expected error")
		}
	})
}
