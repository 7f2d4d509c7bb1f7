// Package logging carries biograph's two log streams: a leveled slog.Logger
// on stderr for operational messages, and a DecisionLogger that records how
// a drug treatment resolved for every node and link it touched, as JSONL
// under .biograph/decisions.jsonl.
package logging

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/seiler-lab/biograph/internal/constants"
)

// LevelTrace sits below Debug and turns on per-molecule output: at trace,
// the engines report every eligibility check, fold draw, and link effect.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps a config level name ("info", "debug", "trace",
// case-insensitive) to a slog.Level. Anything unrecognized means info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// slog would print "DEBUG-4" otherwise
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// DecisionLogger appends perturbation outcomes (which rule matched a node,
// which fold was drawn, how a link changed) to a JSONL file so a run can be
// audited after the fact. Safe for concurrent use; all methods are no-ops
// on a nil receiver, so callers never guard their trace calls.
type DecisionLogger struct {
	mu   sync.Mutex
	file *os.File
}

// NewDecisionLogger opens dir/decisions.jsonl for append when the level is
// debug or trace. At info, the default, it returns nil and no file is
// created; it also returns nil when the file cannot be opened, since a
// missing trace must never fail a perturbation.
func NewDecisionLogger(dir string, level string) *DecisionLogger {
	lvl := ParseLevel(level)
	if lvl == slog.LevelInfo {
		return nil
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil
	}

	path := filepath.Join(dir, constants.DecisionsFileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil
	}

	return &DecisionLogger{file: f}
}

// Log writes one decision event as a single JSONL line, adding a "time"
// field. The caller's map is left untouched. Safe on a nil receiver.
func (dl *DecisionLogger) Log(event map[string]any) {
	if dl == nil || dl.file == nil {
		return
	}

	entry := make(map[string]any, len(event)+1)
	for k, v := range event {
		entry[k] = v
	}
	entry["time"] = time.Now().UTC().Format(time.RFC3339Nano)

	dl.mu.Lock()
	defer dl.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')
	_, _ = dl.file.Write(data)
}

// Close closes the underlying file. Safe on a nil receiver; further Log
// calls after Close are dropped.
func (dl *DecisionLogger) Close() {
	if dl == nil || dl.file == nil {
		return
	}

	dl.mu.Lock()
	defer dl.mu.Unlock()

	dl.file.Close()
	dl.file = nil
}
