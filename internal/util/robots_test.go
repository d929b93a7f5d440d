package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCanFetchHonorsDisallow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /patent/\n"))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	checker := NewRobotsChecker("patentgrab/0.1", time.Second)

	allowed, err := checker.CanFetch(context.Background(), srv.URL+"/patent/US7654321B2/en")
	if err != nil {
		t.Fatalf("can fetch: %v", err)
	}
	if allowed {
		t.Error("disallowed path reported as fetchable")
	}

	allowed, err = checker.CanFetch(context.Background(), srv.URL+"/about")
	if err != nil {
		t.Fatalf("can fetch: %v", err)
	}
	if !allowed {
		t.Error("allowed path reported as blocked")
	}
}

func TestCanFetchMissingRobotsAllowsAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	checker := NewRobotsChecker("patentgrab/0.1", time.Second)
	allowed, err := checker.CanFetch(context.Background(), srv.URL+"/patent/US1B2/en")
	if err != nil {
		t.Fatalf("can fetch: %v", err)
	}
	if !allowed {
		t.Error("missing robots.txt must allow everything")
	}
}

func TestCanFetchUnreachableHostAllows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := srv.URL
	srv.Close()

	checker := NewRobotsChecker("patentgrab/0.1", 500*time.Millisecond)
	allowed, err := checker.CanFetch(context.Background(), target+"/patent/US1B2/en")
	if err != nil {
		t.Fatalf("can fetch: %v", err)
	}
	if !allowed {
		t.Error("an unreachable policy file must not block fetching")
	}
}

func TestCanFetchCachesPerHost(t *testing.T) {
	var robotsCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			robotsCalls++
			_, _ = w.Write([]byte("User-agent: *\nDisallow:\n"))
		}
	}))
	defer srv.Close()

	checker := NewRobotsChecker("patentgrab/0.1", time.Second)
	for i := 0; i < 3; i++ {
		if _, err := checker.CanFetch(context.Background(), srv.URL+"/patent/x"); err != nil {
			t.Fatalf("can fetch: %v", err)
		}
	}
	if robotsCalls != 1 {
		t.Errorf("robots.txt fetched %d times, expected 1", robotsCalls)
	}
}
