package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLog    = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
	DebugLog   = log.New(io.Discard, "", 0)
)

var logFileName = filepath.Join(os.TempDir(), "matiz.log")

var globalLogFile *os.File

// Initialize should be called once at the beginning of the program to set up
// logging. daemon prefixes every line so server output can be told apart.
func Initialize(daemon bool) {
	initialize(logFileName, daemon, false)
}

// InitializeDebug is Initialize with DebugLog enabled.
func InitializeDebug(daemon bool) {
	initialize(logFileName, daemon, true)
}

func initialize(path string, daemon, debug bool) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		panic(fmt.Sprintf("could not open log file: %s", err))
	}

	fmtS := "%s"
	if daemon {
		fmtS = "[SERVER] %s"
	}

	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLog = log.New(f, fmt.Sprintf(fmtS, "INFO:"), flags)
	WarningLog = log.New(f, fmt.Sprintf(fmtS, "WARNING:"), flags)
	ErrorLog = log.New(f, fmt.Sprintf(fmtS, "ERROR:"), flags)
	if debug {
		DebugLog = log.New(f, fmt.Sprintf(fmtS, "DEBUG:"), flags)
	}

	globalLogFile = f
}

// Close flushes the log file. Loggers go back to discarding output.
func Close() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	InfoLog = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog = log.New(io.Discard, "", 0)
	DebugLog = log.New(io.Discard, "", 0)
}

// FileName is where Initialize writes.
func FileName() string {
	return logFileName
}
