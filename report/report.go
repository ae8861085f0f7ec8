//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package report runs known-answer vector files and renders the
// verification results as text tables and HTML documents.
package report

import (
	"io"

	"github.com/markkurossi/tabulate"

	"github.com/markkurossi/mdhash/vectors"
)

// FileResult contains the check results of one vector file.
type FileResult struct {
	File    *vectors.File
	Results []*vectors.Result
	Skipped int
}

// Report contains the verification results of vector files.
type Report struct {
	Files []*FileResult
}

// Run checks all vectors of the files. If skipHeavy is true, the heavy
// vectors are skipped.
func Run(files []*vectors.File, skipHeavy bool) *Report {
	report := new(Report)
	for _, file := range files {
		results := file.Check(skipHeavy)
		report.Files = append(report.Files, &FileResult{
			File:    file,
			Results: results,
			Skipped: len(file.Vectors()) - len(results),
		})
	}
	return report
}

// Passed returns the number of passed vectors.
func (r *Report) Passed() int {
	var count int
	for _, f := range r.Files {
		for _, result := range f.Results {
			if result.OK() {
				count++
			}
		}
	}
	return count
}

// Failed returns the number of failed vectors.
func (r *Report) Failed() int {
	var count int
	for _, f := range r.Files {
		for _, result := range f.Results {
			if !result.OK() {
				count++
			}
		}
	}
	return count
}

// Skipped returns the number of skipped vectors.
func (r *Report) Skipped() int {
	var count int
	for _, f := range r.Files {
		count += f.Skipped
	}
	return count
}

// OK tests if all checked vectors passed.
func (r *Report) OK() bool {
	return r.Failed() == 0
}

func status(result *vectors.Result) string {
	if result.Err != nil {
		return "error"
	}
	if result.OK() {
		return "ok"
	}
	return "FAIL"
}

func got(result *vectors.Result) string {
	if result.Err != nil {
		return result.Err.Error()
	}
	return result.Got.String()
}

// Print prints the report as a table. If verbose is false, only the
// failed vectors are listed.
func (r *Report) Print(out io.Writer, verbose bool) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("File").SetAlign(tabulate.ML)
	tab.Header("Vector").SetAlign(tabulate.ML)
	tab.Header("Result").SetAlign(tabulate.MR)
	if verbose {
		tab.Header("Digest").SetAlign(tabulate.ML)
	}

	for _, f := range r.Files {
		for _, result := range f.Results {
			ok := result.OK()
			if ok && !verbose {
				continue
			}
			row := tab.Row()
			row.Column(f.File.Name)
			row.Column(result.Vector.String())
			col := row.Column(status(result))
			if !ok {
				col.SetFormat(tabulate.FmtBold)
			}
			if verbose {
				row.Column(got(result))
			}
		}
		if f.Skipped > 0 && verbose {
			row := tab.Row()
			row.Column(f.File.Name)
			row.Column("heavy vectors").SetFormat(tabulate.FmtItalic)
			row.Column("skipped").SetFormat(tabulate.FmtItalic)
			row.Column("")
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column(summary(r)).SetFormat(tabulate.FmtBold)
	if verbose {
		row.Column("")
	}

	tab.Print(out)
}
