package load

import (
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
)

const logInterval = time.Second

// ProgressWriter logs how much of an object has been written, at most once
// per logInterval.
type ProgressWriter struct {
	Writer      io.Writer
	Name        string
	Total       int64
	LastLogTime time.Time
}

func NewProgressWriter(w io.Writer, name string) *ProgressWriter {
	return &ProgressWriter{Writer: w, Name: name, LastLogTime: time.Now()}
}

func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Total += int64(n)

	now := time.Now()
	if now.Sub(pw.LastLogTime) >= logInterval {
		slog.Info("download progress", "object", pw.Name, "written", humanize.Bytes(uint64(pw.Total)))
		pw.LastLogTime = now
	}
	return n, err
}

// Done logs the final size of the transfer.
func (pw *ProgressWriter) Done() {
	slog.Debug("download finished", "object", pw.Name, "written", humanize.Bytes(uint64(pw.Total)))
}
