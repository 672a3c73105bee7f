package quadrature

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/zeebo/blake3"
)

// WriteTo writes the rendered rows to w, one line per row, and stops at the
// first failed write. It returns the number of bytes written and an OutputError
// carrying the index of the row that could not be written.
func (t *Table) WriteTo(w io.Writer) (n int64, err error) {
	for i, line := range t.lines {
		var inc int
		if inc, err = io.WriteString(w, line+"\n"); err != nil {
			return n + int64(inc), &Error{Kind: OutputError, Msg: "Cannot write result to stdout", Index: i, Err: err}
		}
		n += int64(inc)
	}
	return n, nil
}

// Digest returns the hex encoded BLAKE3 digest of the rendered table.
func (t *Table) Digest() string {
	hasher := blake3.New()
	for _, line := range t.lines {
		hasher.WriteString(line)
		hasher.WriteString("\n")
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// MethodSummary stores statistics about the absolute error of a method
// across the rows of a Table.
type MethodSummary struct {
	Method    Method
	MeanError float64
	MaxError  float64

	// Order is the median of the observed orders of convergence between
	// consecutive rows, or NaN if no order could be observed.
	Order float64
}

func (s MethodSummary) String() string {
	return fmt.Sprintf("%-9s mean|err|=%.3e max|err|=%.3e order=%.2f", s.Method, s.MeanError, s.MaxError, s.Order)
}

// Summary computes, for each method, statistics of the absolute errors of the
// estimates of t with respect to exact.
func (t *Table) Summary(exact float64) (summaries []MethodSummary, err error) {

	if t.Len() == 0 {
		return nil, fmt.Errorf("cannot Summary: table is empty")
	}

	summaries = make([]MethodSummary, NumMethods)

	for _, m := range Methods {

		errs := make(stats.Float64Data, t.Len())
		for i, row := range t.Rows {
			errs[i] = math.Abs(row.Estimate(m) - exact)
		}

		s := MethodSummary{Method: m, Order: math.NaN()}

		if s.MeanError, err = errs.Mean(); err != nil {
			return nil, fmt.Errorf("cannot Summary: stats.Mean: %w", err)
		}

		if s.MaxError, err = errs.Max(); err != nil {
			return nil, fmt.Errorf("cannot Summary: stats.Max: %w", err)
		}

		var orders stats.Float64Data
		for i := 1; i < t.Len(); i++ {
			if p, ok := ConvergenceOrder(t.Rows[i-1].Size, errs[i-1], t.Rows[i].Size, errs[i]); ok {
				orders = append(orders, p)
			}
		}

		if len(orders) != 0 {
			if s.Order, err = orders.Median(); err != nil {
				return nil, fmt.Errorf("cannot Summary: stats.Median: %w", err)
			}
		}

		summaries[m] = s
	}

	return summaries, nil
}

// FormatSummary renders the summaries, one line per method.
func FormatSummary(summaries []MethodSummary) string {
	var sb strings.Builder
	for _, s := range summaries {
		sb.WriteString(s.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
