package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/codr1/personafolio/internal/config"
)

func newTestApp(t *testing.T) (*app, *httptest.Server) {
	t.Helper()

	cfg := config.Default()
	cfg.App.StaticDir = filepath.Join(t.TempDir(), "missing")
	cfg.Generation.MinDelay = 0
	cfg.Generation.MaxDelay = 0

	ctx, cancel := context.WithCancel(context.Background())
	a, err := newApp(ctx, cfg, zerolog.Nop())
	if err != nil {
		cancel()
		t.Fatalf("newApp() error = %v", err)
	}
	server := httptest.NewServer(a.server.Handler)
	t.Cleanup(func() {
		server.Close()
		cancel()
		a.close()
	})
	return a, server
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", url, err)
	}
	return resp, string(body)
}

func TestHealth(t *testing.T) {
	_, server := newTestApp(t)

	resp, body := get(t, server.URL+"/health")
	if resp.StatusCode != http.StatusOK || body != "OK" {
		t.Fatalf("health = %d %q", resp.StatusCode, body)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("request id middleware not applied")
	}
}

func TestEmbeddedStaticFallback(t *testing.T) {
	_, server := newTestApp(t)

	resp, body := get(t, server.URL+"/static/css/main.css")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("static status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, "var(--persona-bg") {
		t.Fatalf("embedded stylesheet should use persona variables")
	}
}

var staticRefPattern = regexp.MustCompile(`(?:src|href)="(/static/[^"]+)"`)

func TestPageStaticAssetsResolve(t *testing.T) {
	_, server := newTestApp(t)

	resp, page := get(t, server.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("page status = %d", resp.StatusCode)
	}
	refs := staticRefPattern.FindAllStringSubmatch(page, -1)
	if len(refs) == 0 {
		t.Fatalf("page references no static assets:\n%s", page)
	}
	for _, ref := range refs {
		if resp, _ := get(t, server.URL+ref[1]); resp.StatusCode != http.StatusOK {
			t.Errorf("page asset %s -> %d", ref[1], resp.StatusCode)
		}
	}
}

func TestSelectionWithoutScript(t *testing.T) {
	_, server := newTestApp(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Post(server.URL+"/api/v1/personas/manager/select", "application/x-www-form-urlencoded", strings.NewReader(""))
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/" {
		t.Fatalf("form select = %d %q, want 303 to /", resp.StatusCode, resp.Header.Get("Location"))
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		_, page := get(t, server.URL+"/")
		if strings.Contains(page, `<body class="theme-manager">`) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("form selection never applied the manager theme")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSelectionEndToEnd(t *testing.T) {
	_, server := newTestApp(t)

	resp, err := http.Post(server.URL+"/api/v1/personas/creative/select", "application/json", nil)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("select status = %d, want 202", resp.StatusCode)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, body := get(t, server.URL+"/portfolio/styles.css")
		if resp.StatusCode == http.StatusOK {
			if !strings.Contains(body, "--persona-primary: #EC4899") {
				t.Fatalf("unexpected creative stylesheet:\n%s", body)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("generation never completed")
		}
		time.Sleep(10 * time.Millisecond)
	}

	_, page := get(t, server.URL+"/")
	if !strings.Contains(page, `<body class="theme-creative">`) {
		t.Fatalf("page body class not applied")
	}
}
