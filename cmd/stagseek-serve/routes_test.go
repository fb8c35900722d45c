package main

import (
	"errors"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	opts := options{
		wasm:     filepath.Join(dir, "game.wasm"),
		wasmExec: filepath.Join(dir, "wasm_exec.js"),
		assets:   filepath.Join(dir, "assets"),
	}
	writeFile(t, opts.wasm, "\x00asm")
	writeFile(t, opts.wasmExec, "// go wasm loader")
	writeFile(t, filepath.Join(opts.assets, "Stag1.png"), "png bytes")

	srv := httptest.NewServer(newRouter(opts))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestHostPage(t *testing.T) {
	srv := newTestServer(t)
	resp, body := get(t, srv.URL+"/")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type %q, want text/html", ct)
	}
	for _, want := range []string{
		"<!doctype html>",
		"<title>Stag Seek</title>",
		`<script src="/wasm_exec.js"></script>`,
		`fetch("/game.wasm")`,
		`id="game-container"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestHostPageEscapesTitle(t *testing.T) {
	var b strings.Builder
	if err := hostPage("<b>").Render(t.Context(), &b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "<title>&lt;b&gt;</title>") {
		t.Errorf("title not escaped: %s", b.String())
	}
}

func TestStaticRoutes(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/game.wasm", http.StatusOK, "\x00asm"},
		{"/wasm_exec.js", http.StatusOK, "// go wasm loader"},
		{"/assets/Stag1.png", http.StatusOK, "png bytes"},
		{"/assets/Stag9.png", http.StatusNotFound, ""},
		{"/healthz", http.StatusOK, "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, srv.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("status %d, want %d", resp.StatusCode, tt.status)
			}
			if tt.body != "" && body != tt.body {
				t.Errorf("body %q, want %q", body, tt.body)
			}
		})
	}
}

func TestWasmNotCached(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := get(t, srv.URL+"/game.wasm")
	if got := resp.Header.Get("Cache-Control"); got != "no-cache" {
		t.Errorf("Cache-Control %q, want no-cache", got)
	}
}

func TestParseOptions(t *testing.T) {
	env := func(port string) func(string) string {
		return func(k string) string {
			if k == "PORT" {
				return port
			}
			return ""
		}
	}

	o, err := parseOptions(nil, env(""))
	if err != nil {
		t.Fatal(err)
	}
	if o.addr != ":8080" || o.wasm != "game.wasm" || o.wasmExec != "wasm_exec.js" || o.assets != "assets" {
		t.Errorf("defaults = %+v", o)
	}

	o, _ = parseOptions(nil, env(" 9000 "))
	if o.addr != ":9000" {
		t.Errorf("addr from PORT = %q, want :9000", o.addr)
	}

	o, _ = parseOptions([]string{"-addr", "127.0.0.1:7000", "-assets", "/srv/art"}, env("9000"))
	if o.addr != "127.0.0.1:7000" || o.assets != "/srv/art" {
		t.Errorf("flags = %+v", o)
	}

	if _, err := parseOptions([]string{"-nope"}, env("")); err == nil || errors.Is(err, flag.ErrHelp) {
		t.Errorf("unknown flag error = %v", err)
	}
	if _, err := parseOptions([]string{"-h"}, env("")); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h error = %v, want flag.ErrHelp", err)
	}
}
