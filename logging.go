package main

import (
	"log"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "stagseek.log"
)

// setupLogging sends the standard logger to logs/stagseek.log when debug is
// set. Otherwise it leaves the default stderr output alone and returns nil.
func setupLogging(debug bool) *os.File {
	if !debug {
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.Printf("logging: %v", err)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("logging: %v", err)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	return f
}
