// Package report renders loaded parameters, annotation commands and
// diagnostics for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	mdwstringx "github.com/msto63/ordt/foundation/utils/stringx"
	"github.com/msto63/ordt/internal/annotate"
	"github.com/msto63/ordt/internal/parameters"
)

const gap = 2

// Parameters renders a snapshot as a table. Values that differ from their
// default are marked with '*' and show the default.
func Parameters(w io.Writer, entries []parameters.Entry) error {
	catWidth, nameWidth := len("CATEGORY"), len("PARAMETER")
	for _, e := range entries {
		catWidth = max(catWidth, len(e.Category.String()))
		nameWidth = max(nameWidth, len(e.Name))
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(mdwstringx.PadRight("CATEGORY", catWidth+gap, ' ') + mdwstringx.PadRight("PARAMETER", nameWidth+gap, ' ') + "  VALUE"))
	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render(strings.Repeat("─", catWidth+nameWidth+2*gap+16)))
	b.WriteString("\n")

	for _, e := range entries {
		mark := "  "
		value := e.Value
		if e.Changed {
			mark = ChangedStyle.Render("*") + " "
			value += CategoryStyle.Render(fmt.Sprintf("  (default %s)", e.Default))
		}
		b.WriteString(CategoryStyle.Width(catWidth + gap).Render(e.Category.String()))
		b.WriteString(NameStyle.Width(nameWidth + gap).Render(e.Name))
		b.WriteString(mark)
		b.WriteString(value)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Annotations renders annotation commands in capture order.
func Annotations(w io.Writer, cmds []annotate.Command) error {
	var b strings.Builder
	if len(cmds) == 0 {
		b.WriteString(CategoryStyle.Render("no annotation commands"))
		b.WriteString("\n")
	}
	width := len(fmt.Sprint(len(cmds)))
	for i, cmd := range cmds {
		fmt.Fprintf(&b, "%*d  %s\n", width, i+1, cmd.String())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Summary renders the loaded files, every diagnostic and the totals.
func Summary(w io.Writer, files []string, diags []parameters.Diagnostic) error {
	var b strings.Builder

	b.WriteString(RenderTitle("Parameter files"))
	b.WriteString("\n")
	if len(files) == 0 {
		b.WriteString("  (none, defaults in effect)\n")
	}
	for _, f := range files {
		fmt.Fprintf(&b, "  %s\n", f)
	}

	errs, advisories := 0, 0
	if len(diags) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderTitle("Diagnostics"))
		b.WriteString("\n")
	}
	for _, d := range diags {
		style := AdvisoryStyle
		if d.Severity == parameters.SeverityError {
			style = ErrorStyle
			errs++
		} else {
			advisories++
		}
		b.WriteString("  ")
		b.WriteString(style.Render(d.String()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	totals := fmt.Sprintf("%d error(s), %d advisory(s)", errs, advisories)
	if errs > 0 {
		b.WriteString(ErrorStyle.Render(totals))
	} else {
		b.WriteString(OKStyle.Render(totals))
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
