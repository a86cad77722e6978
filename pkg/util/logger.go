package util

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ConsoleLogger writes log lines to Out. Debug and Info messages are only
// written when Verbose is set.
type ConsoleLogger struct {
	Out     io.Writer
	Verbose bool

	mu      sync.Mutex
	callers []string
}

// NewConsoleLogger returns a logger writing to out, or to stderr if out is nil.
func NewConsoleLogger(out io.Writer, verbose bool) *ConsoleLogger {
	if out == nil {
		out = os.Stderr
	}
	return &ConsoleLogger{Out: out, Verbose: verbose}
}

// log writes the given message if the message caller is allowed to log.
func (d *ConsoleLogger) log(level, caller, msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.allowed(caller) {
		return
	}
	fmt.Fprintln(
		d.Out,
		"["+level+"]",
		time.Now().Format(time.RFC3339),
		caller,
		"▶ ",
		msg,
	)
}

func (d *ConsoleLogger) allowed(caller string) bool {
	if len(d.callers) == 0 {
		return true
	}
	for _, c := range d.callers {
		if c == "all" || strings.Contains(caller, c) {
			return true
		}
	}
	return false
}

// Debug is used to log debug messages.
func (d *ConsoleLogger) Debug(caller, msg string) {
	if d.Verbose {
		d.log("DEBUG", caller, msg)
	}
}

// Info is used to log info messages.
func (d *ConsoleLogger) Info(caller, msg string) {
	if d.Verbose {
		d.log("INFO", caller, msg)
	}
}

// Warning is used to log warning messages.
func (d *ConsoleLogger) Warning(caller, msg string) {
	d.log("WARNING", caller, msg)
}

// Error is used to log error messages.
func (d *ConsoleLogger) Error(caller, msg string) {
	d.log("ERROR", caller, msg)
}

// Configure takes a configuration string separated by commas
// that contains all the callers that should be logged. This
// allows granular logging of different go files.
//
// Example:
//
//	logger.Configure("verify.go,vector.go")
//	logger.Configure("all")
func (d *ConsoleLogger) Configure(settings string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.callers = d.callers[:0]
	for _, s := range strings.Split(settings, ",") {
		if s = strings.TrimSpace(s); s != "" {
			d.callers = append(d.callers, s)
		}
	}
}
