// Package multitime invokes the multitime timing utility and parses its
// textual report.
//
// A multitime report looks like:
//
//	===> multitime results
//	1: lua/lua ./benchmarks/fib.lua
//	            Mean        Std.Dev.    Min         Median      Max
//	real        1.337+/-0.0341 0.012       1.316       1.334       1.359
//	user        1.325       0.011       1.305       1.323       1.346
//	sys         0.008       0.003       0.003       0.008       0.013
//
// Parsing is keyed on the column header tokens rather than fixed line and
// column offsets, so cosmetic layout shifts in the utility do not silently
// corrupt the extracted numbers.
package multitime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// headerFields are the column labels multitime prints above its aggregate
// rows, in report order.
var headerFields = []string{"Mean", "Std.Dev.", "Min", "Median", "Max"}

// Measurement is one aggregate row of a report.
type Measurement struct {
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	Max    float64
}

// Report holds the aggregate rows of one multitime run, keyed by the row
// label printed in the report ("real", "user", "sys").
type Report struct {
	rows map[string]Measurement
}

// Row returns the measurement for label.
func (r *Report) Row(label string) (Measurement, bool) {
	m, ok := r.rows[label]
	return m, ok
}

// Real returns the wall-clock measurement. Every well-formed report
// carries one.
func (r *Report) Real() Measurement {
	return r.rows["real"]
}

// ReportsError reports whether the utility's output carries its error
// marker, meaning the measured command could not be run.
func ReportsError(output string) bool {
	return strings.Contains(output, "Error")
}

// ParseReport extracts the aggregate rows from a multitime report.
func ParseReport(output string) (*Report, error) {
	lines := strings.Split(output, "\n")

	header := -1
	for i, line := range lines {
		if isHeaderLine(strings.Fields(line)) {
			header = i
			break
		}
	}
	if header < 0 {
		return nil, errors.New("multitime report has no column header line")
	}

	rows := make(map[string]Measurement)
	for _, line := range lines[header+1:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		label := fields[0]
		if label != "real" && label != "user" && label != "sys" {
			continue
		}
		if len(fields) != len(headerFields)+1 {
			return nil, fmt.Errorf("multitime %q row has %d columns, want %d",
				label, len(fields)-1, len(headerFields))
		}
		m, err := parseRow(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("multitime %q row: %w", label, err)
		}
		rows[label] = m
	}

	if _, ok := rows["real"]; !ok {
		return nil, errors.New("multitime report has no real row")
	}
	return &Report{rows: rows}, nil
}

func isHeaderLine(fields []string) bool {
	if len(fields) != len(headerFields) {
		return false
	}
	for i, f := range fields {
		if f != headerFields[i] {
			return false
		}
	}
	return true
}

func parseRow(fields []string) (Measurement, error) {
	vals := make([]float64, len(headerFields))
	for i, field := range fields {
		v, err := parseColumn(field)
		if err != nil {
			return Measurement{}, fmt.Errorf("column %s: %w", headerFields[i], err)
		}
		vals[i] = v
	}
	return Measurement{
		Mean:   vals[0],
		StdDev: vals[1],
		Min:    vals[2],
		Median: vals[3],
		Max:    vals[4],
	}, nil
}

// parseColumn parses one numeric token. The mean column carries a
// "+/-<conf>" suffix when the utility computed its own interval; only the
// leading number matters here.
func parseColumn(token string) (float64, error) {
	num, _, _ := strings.Cut(token, "+")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", token, err)
	}
	return v, nil
}
