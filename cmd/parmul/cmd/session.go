// Package cmd: the interactive session behind the root command.
// The session owns a line scanner and an output writer so the whole loop is
// testable with scripted input; os.Stdin/os.Stdout are injected in root.go.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/parmul"
)

// session drives one interactive run of the driver: prompt for dimensions
// and a worker count, multiply with both strategies, compare, repeat until
// the user quits.
type session struct {
	in  *bufio.Scanner
	out io.Writer
}

// newSession wraps the given reader and writer.
func newSession(in io.Reader, out io.Writer) *session {
	return &session{in: bufio.NewScanner(in), out: out}
}

// run repeats the prompt/multiply/compare cycle until the user answers the
// quit prompt with yes, or input ends. Errors surfaced by the core are
// printed and the loop continues; they never terminate the process.
func (s *session) run() {
	for {
		rowsA, ok := s.promptPositiveInt("Enter the number of rows of Matrix A: ")
		if !ok {
			return
		}
		colsA, ok := s.promptPositiveInt("Enter the number of cols of Matrix A: ")
		if !ok {
			return
		}
		rowsB, ok := s.promptPositiveInt("Enter the number of rows of Matrix B: ")
		if !ok {
			return
		}
		colsB, ok := s.promptPositiveInt("Enter the number of cols of Matrix B: ")
		if !ok {
			return
		}
		workers, ok := s.promptPositiveInt("Enter the number of workers: ")
		if !ok {
			return
		}

		// The core is the error boundary's inside; the session is its outside.
		if err := s.demo(rowsA, colsA, rowsB, colsB, workers); err != nil {
			fmt.Fprintln(s.out, err)
		}

		quit, ok := s.promptQuit()
		if !ok || quit {
			return
		}
		fmt.Fprintln(s.out)
	}
}

// readLine fetches the next input line; ok is false when input is exhausted.
func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(s.in.Text()), true
}

// promptPositiveInt prompts until the user supplies an integer ≥ 1,
// re-prompting on non-numeric or non-positive input. ok is false only when
// input ends before a valid value arrives.
func (s *session) promptPositiveInt(prompt string) (int, bool) {
	fmt.Fprint(s.out, prompt)
	for {
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}

		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 {
			return n, true
		}

		fmt.Fprint(s.out, "Invalid input. "+prompt)
	}
}

// promptQuit asks "Quit (Y/N)" and accepts exactly y or n, case-insensitive,
// re-prompting otherwise. quit reports a yes answer; ok is false when input
// ends first.
func (s *session) promptQuit() (quit, ok bool) {
	fmt.Fprint(s.out, "Quit (Y/N): ")
	for {
		line, okRead := s.readLine()
		if !okRead {
			return false, false
		}

		switch strings.ToLower(line) {
		case "y":
			return true, true
		case "n":
			return false, true
		}

		fmt.Fprint(s.out, "Invalid input: the input must be either Y or N. Quit (Y/N): ")
	}
}

// demo builds two random matrices with the given shapes, times both
// multiplication strategies, and reports whether the results agree cell for
// cell. Any error from the core propagates to the caller unchanged.
func (s *session) demo(rowsA, colsA, rowsB, colsB, workers int) error {
	a, err := parmul.NewMatrix(rowsA, colsA)
	if err != nil {
		return err
	}
	a.FillRandom()

	b, err := parmul.NewMatrix(rowsB, colsB)
	if err != nil {
		return err
	}
	b.FillRandom()

	// Sequential strategy, wall-clock timed
	start := time.Now()
	single, err := parmul.Multiply(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Single-threaded multiplication took %.3f ms.\n", toMillis(time.Since(start)))

	// Parallel strategy, wall-clock timed
	start = time.Now()
	multi, err := parmul.MultiplyParallel(a, b, workers)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Multithreaded multiplication took %.3f ms.\n", toMillis(time.Since(start)))

	// Cell-by-cell comparison of the two results
	fmt.Fprintln(s.out, "Validating results...")
	if equalMatrices(single, multi) {
		fmt.Fprintln(s.out, "Results are identical!")
	} else {
		fmt.Fprintln(s.out, "Results differ!")
	}

	return nil
}

// toMillis converts a duration to fractional milliseconds for reporting.
func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// equalMatrices compares two same-shaped matrices cell for cell through the
// bounds-checked accessor. Both operands here always share a shape (both are
// products of the same pair), so a shape mismatch means a programming error
// and reports as unequal.
func equalMatrices(a, b *parmul.Matrix) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}
