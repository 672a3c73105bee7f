package quadrature

import (
	"bufio"
	"fmt"
	"io"
)

const (
	PromptLeft  = "Enter interval's left border: "
	PromptRight = "Enter interval's right border: "
)

// ReadInterval prompts on w for the two borders of an Interval and reads them from r.
// Each border is validated as soon as it is read and the first failure is returned.
func ReadInterval(r io.Reader, w io.Writer) (in Interval, err error) {

	br := bufio.NewReader(r)

	var left, right float64

	if left, err = readBorder(br, w, PromptLeft, "left"); err != nil {
		return
	}

	if err = checkLeftBorder(left); err != nil {
		return
	}

	if right, err = readBorder(br, w, PromptRight, "right"); err != nil {
		return
	}

	return NewInterval(left, right)
}

func readBorder(r io.Reader, w io.Writer, prompt, side string) (x float64, err error) {

	if _, err = io.WriteString(w, prompt); err != nil {
		return 0, &Error{Kind: OutputError, Msg: "Cannot write to stdout", Index: -1, Err: err}
	}

	if _, err = fmt.Fscan(r, &x); err != nil {
		return 0, &Error{Kind: InputError, Msg: fmt.Sprintf("Cannot read interval's %s border", side), Index: -1, Err: err}
	}

	return x, nil
}
