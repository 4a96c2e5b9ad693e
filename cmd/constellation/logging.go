package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "constellation.log"
	maxLogSize  = 10 * 1024 * 1024
)

// rotatedLogPath names the archive of an oversized log
var rotatedLogPath = func() string {
	return filepath.Join(logDir, fmt.Sprintf("constellation-%s.log", time.Now().Format("20060102-150405")))
}

// setupLogging routes the standard logger to logs/constellation.log when debug is set
// Without debug all output is discarded so the terminal view stays clean
// A log over maxLogSize is rotated to a timestamped name first, or truncated when rotation fails
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if rotateErr = os.Rename(logPath, rotatedLogPath()); rotateErr != nil {
			flags |= os.O_TRUNC
		}
	}

	f, err := os.OpenFile(logPath, flags, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Printf("constellation %s logging started", version)
	if rotateErr != nil {
		log.Printf("log rotation failed, truncated %s: %v", logPath, rotateErr)
	}
	return f
}
