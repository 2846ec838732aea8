// Package seedbar provides a small progress bar shown while seed rows are
// inserted.
package seedbar

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Bar tracks the insertion of a fixed number of rows. A nil *Bar is valid
// and does nothing, so callers can keep the bar optional.
type Bar struct {
	pb          *progressbar.ProgressBar
	description string
	maxItems    int
}

// New creates a Bar writing to w, usually os.Stderr so it never mixes with
// the rows printed on os.Stdout.
func New(w io.Writer, description string, maxItems int) *Bar {
	pb := progressbar.NewOptions(
		maxItems,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionClearOnFinish(),
	)
	_ = pb.Set(0)

	return &Bar{
		pb:          pb,
		description: description,
		maxItems:    maxItems,
	}
}

// Inc marks one more row as inserted.
func (b *Bar) Inc() {
	if b == nil {
		return
	}
	_ = b.pb.Add(1)
}

// Finish completes and closes the bar.
func (b *Bar) Finish() {
	if b == nil {
		return
	}
	_ = b.pb.Finish()
	_ = b.pb.Close()
}

// OnRow returns a callback suitable for db.ExecMany, nil when b is nil.
func (b *Bar) OnRow() func() {
	if b == nil {
		return nil
	}
	return b.Inc
}
