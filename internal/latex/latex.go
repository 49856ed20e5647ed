// Package latex renders benchmark samples as LaTeX table fragments and
// assembles the final table document.
package latex

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/luabench/luabench/internal/stats"
)

// UnavailableCell marks a benchmark that was not run on an interpreter.
const UnavailableCell = `&$-$ `

// RowTerminator ends every table row.
const RowTerminator = `\\`

// DefaultCaption is the caption used when TableData does not supply one.
const DefaultCaption = `Execution times (in seconds) of the VMs on four different benchmarks
    (reported with 99\% confidence intervals). Keys: ` + "`" + `-': the benchmark cannot
    be run with a particular VM. Note that \texttt{luavm} executes the
    \texttt{nsieve} benchmark very slowly, thus its entry is measured in
    minutes.`

// Cell formats one sample as a table cell: the mean with its confidence
// half-width, both to four decimals, or the unavailable marker.
func Cell(s stats.Sample) string {
	if s.IsUnavailable() {
		return UnavailableCell
	}
	return fmt.Sprintf(`&$%.4f \scriptstyle \pm \small{%.4f}$ `, s.Mean, s.Confidence)
}

// Row formats one cell per sample, in order, and appends the row
// terminator. The caller prefixes the row label.
func Row(samples []stats.Sample) string {
	var sb strings.Builder
	for _, s := range samples {
		sb.WriteString(Cell(s))
	}
	sb.WriteString(RowTerminator)
	return sb.String()
}

// TableData is everything the table template needs: the interpreter
// display names heading each column and the fully formatted rows
// (label + cells + terminator), in order.
type TableData struct {
	Columns []string
	Rows    []string
	// Caption overrides DefaultCaption when non-empty.
	Caption string
}

var tableTmpl = template.Must(template.New("table").Parse(`\begin{table}[htbp]
  \centering
  \begin{tabular}{@{}l{{.ColumnSpec}}@{}}
    \toprule
    {{.Header}}
    \\
    \midrule
    \\
{{- range .Rows}}
    {{.}}
{{- end}}
    \bottomrule
  \end{tabular}
  \caption{ {{- .Caption}}}
  \label{table:bench}
\end{table}
`))

// Document assembles the LaTeX table document. Assembly is pure: the same
// data always yields byte-identical output.
func Document(data TableData) (string, error) {
	caption := data.Caption
	if caption == "" {
		caption = DefaultCaption
	}
	params := struct {
		ColumnSpec string
		Header     string
		Rows       []string
		Caption    string
	}{
		ColumnSpec: strings.Repeat("p{2.3cm}", len(data.Columns)),
		Header:     "& " + strings.Join(data.Columns, " & "),
		Rows:       data.Rows,
		Caption:    caption,
	}

	var buf bytes.Buffer
	if err := tableTmpl.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("rendering table: %w", err)
	}
	return buf.String(), nil
}

// WriteDocument renders the table and writes it to path, replacing any
// existing file.
func WriteDocument(path string, data TableData) error {
	doc, err := Document(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing table to %s: %w", path, err)
	}
	return nil
}
