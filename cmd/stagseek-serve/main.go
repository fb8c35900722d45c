// Command stagseek-serve hosts the browser build: the wasm binary, the Go
// wasm loader, the game assets and a page that starts it all.
//
// Build the game first:
//
//	GOOS=js GOARCH=wasm go build -o game.wasm .
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" .
package main

import (
	"errors"
	"flag"
	"log"
	"mime"
	"net/http"
	"os"
	"strings"
	"time"
)

type options struct {
	addr     string
	wasm     string
	wasmExec string
	assets   string
}

// parseOptions reads flags, falling back to PORT for the listen address.
func parseOptions(args []string, getenv func(string) string) (options, error) {
	addr := ":" + strings.TrimSpace(getenv("PORT"))
	if addr == ":" {
		addr = ":8080"
	}

	var o options
	fs := flag.NewFlagSet("stagseek-serve", flag.ContinueOnError)
	fs.StringVar(&o.addr, "addr", addr, "listen address")
	fs.StringVar(&o.wasm, "wasm", "game.wasm", "path to the wasm build")
	fs.StringVar(&o.wasmExec, "wasm-exec", "wasm_exec.js", "path to wasm_exec.js from the Go distribution")
	fs.StringVar(&o.assets, "assets", "assets", "asset directory served under /assets")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

func main() {
	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".wasm", "application/wasm")

	opts, err := parseOptions(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range []string{opts.wasm, opts.wasmExec} {
		if _, err := os.Stat(p); err != nil {
			log.Printf("warning: %v", err)
		}
	}

	server := &http.Server{
		Addr:              opts.addr,
		Handler:           newRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("stag seek listening on http://localhost%s", opts.addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
