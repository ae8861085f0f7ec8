//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package report

import (
	"fmt"
	"io"

	"github.com/markkurossi/text"

	"github.com/markkurossi/mdhash/vectors"
)

func summary(r *Report) string {
	return fmt.Sprintf("%d/%d passed, %d skipped",
		r.Passed(), r.Passed()+r.Failed(), r.Skipped())
}

// HTML writes the report as an HTML document to out.
func (r *Report) HTML(out io.Writer) error {
	err := header(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "<h1>%s</h1>\n<p>%s</p>\n",
		text.New().Plain("Known-answer verification").HTML(),
		text.New().Plain(summary(r)).HTML())
	if err != nil {
		return err
	}

	for _, f := range r.Files {
		_, err = fmt.Fprintf(out, "<h2>%s</h2>\n<table>\n",
			text.New().Plainf("File %s", f.File.Name).HTML())
		if err != nil {
			return err
		}
		for _, result := range f.Results {
			if err := row(out, result); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintln(out, "</table>")
		if err != nil {
			return err
		}
		if f.Skipped > 0 {
			_, err = fmt.Fprintf(out, "<div class=\"empty\">%s</div>\n",
				text.New().Oblique(
					fmt.Sprintf("%d heavy vectors skipped", f.Skipped)).HTML())
			if err != nil {
				return err
			}
		}
	}

	return trailer(out)
}

func row(out io.Writer, result *vectors.Result) error {
	class := "ok"
	if !result.OK() {
		class = "fail"
	}
	label := text.New().Plain(result.Vector.Algorithm)
	if len(result.Vector.Comment) > 0 {
		label.Plain(" ").Oblique(result.Vector.Comment)
	}

	_, err := fmt.Fprintf(out,
		`<tr class="%s"><td>%s</td><td>%s</td><td class="code">%s</td><td>%s</td></tr>
`,
		class, text.New().Plain(result.Vector.Kind.String()).HTML(),
		label.HTML(), text.New().Plain(got(result)).HTML(),
		text.New().Plain(status(result)).HTML())
	return err
}

func header(out io.Writer) error {
	_, err := fmt.Fprintf(out, `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta http-equiv="content-type" content="text/html;charset=UTF-8" />
    <meta name="viewport" content="width=device-width">

    <title>mdhash</title>
    <link href="index.css" rel="stylesheet" type="text/css">
  </head>
  <body>
    <div class="page-wrapper">
      <div class="article-column">
`)
	return err
}

func trailer(out io.Writer) error {
	_, err := fmt.Fprint(out, `
      </div>
    </div>
  </body>
</html>
`)
	return err
}
