//
// Copyright (c) 2020-2025 Markku Rossi
//
// All rights reserved.
//

package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// Timing records timing samples and renders a benchmark report.
type Timing struct {
	Start   time.Time
	Headers []string
	Samples []*Sample
}

// NewTiming creates a new Timing instance. The headers name the extra
// data columns of the samples.
func NewTiming(headers ...string) *Timing {
	return &Timing{
		Start:   time.Now(),
		Headers: headers,
	}
}

// Sample adds a timing sample with label, number of bytes processed,
// and data columns.
func (t *Timing) Sample(label string, bytes FileSize, cols []string) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Bytes: bytes,
		Cols:  cols,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Print prints the benchmark report to out.
func (t *Timing) Print(out io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Algorithm").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Data").SetAlign(tabulate.MR)
	tab.Header("Rate").SetAlign(tabulate.MR)
	for _, hdr := range t.Headers {
		tab.Header(hdr).SetAlign(tabulate.MR)
	}

	var bytes FileSize
	total := t.Samples[len(t.Samples)-1].End.Sub(t.Start)
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.End.Sub(sample.Start)
		row.Column(duration.String())
		row.Column(percent(duration, total))
		row.Column(sample.Bytes.String())
		row.Column(Rate(sample.Bytes, duration))
		bytes += sample.Bytes

		for idx := range t.Headers {
			if idx < len(sample.Cols) {
				row.Column(sample.Cols[idx])
			} else {
				row.Column("")
			}
		}

		for idx, sub := range sample.Samples {
			row := tab.Row()

			var prefix string
			if idx+1 >= len(sample.Samples) {
				prefix = "\u2570\u2574"
			} else {
				prefix = "\u251C\u2574"
			}

			row.Column(prefix + sub.Label).SetFormat(tabulate.FmtItalic)

			d := sub.Duration()
			row.Column(d.String()).SetFormat(tabulate.FmtItalic)
			row.Column(percent(d, duration)).SetFormat(tabulate.FmtItalic)
			row.Column(sub.Bytes.String()).SetFormat(tabulate.FmtItalic)
			row.Column(Rate(sub.Bytes, d)).SetFormat(tabulate.FmtItalic)
			for range t.Headers {
				row.Column("")
			}
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(bytes.String()).SetFormat(tabulate.FmtBold)
	row.Column(Rate(bytes, total)).SetFormat(tabulate.FmtBold)
	for range t.Headers {
		row.Column("")
	}

	tab.Print(out)
}

func percent(d, total time.Duration) string {
	if total <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(d)/float64(total)*100)
}

// Rate formats the processing rate of bytes in duration d.
func Rate(bytes FileSize, d time.Duration) string {
	if d <= 0 || bytes == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fMB/s", float64(bytes)/d.Seconds()/1000/1000)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label   string
	Start   time.Time
	End     time.Time
	Abs     time.Duration
	Bytes   FileSize
	Cols    []string
	Samples []*Sample
}

// Duration returns the sample duration.
func (s *Sample) Duration() time.Duration {
	if s.Abs > 0 {
		return s.Abs
	}
	return s.End.Sub(s.Start)
}

// SubSample adds a sub-sample for a timing sample.
func (s *Sample) SubSample(label string, bytes FileSize, end time.Time) {
	start := s.Start
	if len(s.Samples) > 0 {
		start = s.Samples[len(s.Samples)-1].End
	}
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Start: start,
		End:   end,
		Bytes: bytes,
	})
}

// AbsSubSample adds an absolute sub-sample for a timing sample.
func (s *Sample) AbsSubSample(label string, bytes FileSize,
	duration time.Duration) {

	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Abs:   duration,
		Bytes: bytes,
	})
}
