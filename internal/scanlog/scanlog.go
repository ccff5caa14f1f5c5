// Package scanlog appends scan outcomes to IST-dated JSONL files, one line
// per entry, and gzips files past a retention age.
package scanlog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var mu sync.Mutex

var ist = time.FixedZone("IST", 19800)

// SignalEntry records one bull/bear hit.
type SignalEntry struct {
	Time     string  `json:"time"`
	Symbol   string  `json:"symbol"`
	Sector   string  `json:"sector"`
	Signal   string  `json:"signal"`
	Price    float64 `json:"price"`
	VolRatio float64 `json:"vol_ratio"`
	OIPct    float64 `json:"oi_pct"`
}

// CycleEntry records the shape of one completed scan cycle.
type CycleEntry struct {
	Time     string `json:"time"`
	Scanned  int    `json:"scanned"`
	Bullish  int    `json:"bullish"`
	Bearish  int    `json:"bearish"`
	Skipped  int    `json:"skipped"`
	Duration string `json:"duration"`
}

func logDir() string {
	if v := os.Getenv("SCANNER_LOG_DIR"); v != "" {
		return v
	}
	return "logs"
}

func dailyFilepath(t time.Time) string {
	return filepath.Join(logDir(), t.In(ist).Format("2006-01-02")+".txt")
}

func cyclesFilepath(t time.Time) string {
	return filepath.Join(logDir(), "cycles", t.In(ist).Format("2006-01-02")+".txt")
}

func appendLine(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	b, _ := json.Marshal(v)
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// Append writes one signal entry to today's file.
func Append(e SignalEntry) error {
	mu.Lock()
	defer mu.Unlock()
	now := time.Now().In(ist)
	e.Time = now.Format("2006-01-02 15:04:05")
	return appendLine(dailyFilepath(now), e)
}

// AppendCycle writes one cycle summary to today's cycles file.
func AppendCycle(e CycleEntry) error {
	mu.Lock()
	defer mu.Unlock()
	now := time.Now().In(ist)
	e.Time = now.Format("2006-01-02 15:04:05")
	return appendLine(cyclesFilepath(now), e)
}

// CompressOlder gzips plain log files older than the given number of days.
// A non-positive retention disables compression.
func CompressOlder(days int) error {
	if days <= 0 {
		return nil
	}
	mu.Lock()
	defer mu.Unlock()

	cutoff := time.Now().In(ist).AddDate(0, 0, -days)
	return filepath.Walk(logDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, ".txt") {
			return nil
		}
		day, perr := time.ParseInLocation("2006-01-02", strings.TrimSuffix(filepath.Base(path), ".txt"), ist)
		if perr != nil || !day.Before(cutoff) {
			return nil
		}
		if cerr := gzipFile(path); cerr != nil {
			return cerr
		}
		return os.Remove(path)
	})
}

func gzipFile(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer dst.Close()

	zw := gzip.NewWriter(dst)
	if _, err := io.Copy(zw, src); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
