package quadrature

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/tuneinsight/sinquad/utils"
	"github.com/tuneinsight/sinquad/utils/buffer"
)

// PartitionSizes are the partition sizes of an experiment, in the order of the
// rows of the resulting table.
var PartitionSizes = []int{5, 10, 20, 100, 500, 1000}

// MaxRowLength is the capacity in bytes of a rendered row.
const MaxRowLength = 32

// Row stores the estimates of all methods for one partition size.
type Row struct {
	Size      int
	Estimates [NumMethods]float64
}

// Estimate returns the estimate computed with the given method.
func (r Row) Estimate(m Method) float64 {
	return r.Estimates[m]
}

// Format renders r as "<size> <rectangle> <simpson>" into buf, with five
// digits after the decimal point. buf is reset first.
func (r Row) Format(buf *buffer.Buffer) (err error) {
	buf.Reset()
	_, err = fmt.Fprintf(buf, "%d %.5f %.5f", r.Size, r.Estimates[Rectangle], r.Estimates[Simpson])
	return
}

// Table is an owning container of result rows and of their rendered lines.
// Its capacity is fixed at creation.
type Table struct {
	Rows  []Row
	lines []string
}

// NewTable allocates a Table able to store capacity rows.
func NewTable(capacity int) *Table {
	return &Table{
		Rows:  make([]Row, 0, capacity),
		lines: make([]string, 0, capacity),
	}
}

// Append stores the row and its rendered line.
// It returns an AllocationError if the table is full.
func (t *Table) Append(row Row, line string) (err error) {
	if len(t.Rows) == cap(t.Rows) {
		return &Error{Kind: AllocationError, Msg: "Cannot allocate memory for result string", Index: len(t.Rows)}
	}
	t.Rows = append(t.Rows, row)
	t.lines = append(t.lines, line)
	return
}

// Len returns the number of rows stored in the table.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Lines returns a copy of the rendered lines, in row order.
func (t *Table) Lines() []string {
	return append([]string(nil), t.lines...)
}

// Equal performs a deep equal.
func (t *Table) Equal(other *Table) bool {
	return cmp.Equal(t.Rows, other.Rows) && cmp.Equal(t.lines, other.lines)
}

// Experiment runs every method for each partition size of Sizes over Interval.
type Experiment struct {
	Interval Interval
	Sizes    []int

	// OnRow, if not nil, is called after each row is stored.
	OnRow func(index int, row Row)
}

// NewExperiment creates an Experiment over in with the default PartitionSizes.
func NewExperiment(in Interval) *Experiment {
	return &Experiment{Interval: in, Sizes: PartitionSizes}
}

// Run computes one row per partition size, in order, and returns the table of results.
// Partition sizes must be strictly positive. No partial table is returned on failure.
func (e *Experiment) Run() (table *Table, err error) {

	if !utils.AllPositive(e.Sizes) {
		return nil, newError(InputError, fmt.Sprintf("Partition sizes must be positive but are %v", e.Sizes))
	}

	table = NewTable(len(e.Sizes))
	buf := buffer.NewBufferSize(MaxRowLength)

	for i, n := range e.Sizes {

		row := Row{Size: n}
		for _, m := range Methods {
			row.Estimates[m] = Integrate(e.Interval, n, m.Kernel())
		}

		if err = row.Format(buf); err != nil {
			return nil, &Error{Kind: FormattingError, Msg: "Cannot write results to string", Index: i, Err: err}
		}

		if err = table.Append(row, buf.String()); err != nil {
			return nil, err
		}

		if e.OnRow != nil {
			e.OnRow(i, row)
		}
	}

	return table, nil
}

// RunExperiment runs an Experiment over in for the given partition sizes.
func RunExperiment(in Interval, sizes []int) (*Table, error) {
	return (&Experiment{Interval: in, Sizes: sizes}).Run()
}
