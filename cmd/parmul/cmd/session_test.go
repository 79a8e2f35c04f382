// Package cmd contains tests for the interactive session, driven entirely by
// scripted input so no terminal is required.
package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runScript feeds the given input lines to a fresh session and returns
// everything it printed.
func runScript(t *testing.T, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	newSession(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out).run()

	return out.String()
}

// TestSessionFullCycle runs one complete multiply/compare cycle on small
// matrices and quits; both strategies must agree.
func TestSessionFullCycle(t *testing.T) {
	out := runScript(t,
		"2", // rows of A
		"3", // cols of A
		"3", // rows of B
		"2", // cols of B
		"2", // workers
		"y", // quit
	)

	require.Contains(t, out, "Single-threaded multiplication took") // sequential timing reported
	require.Contains(t, out, "Multithreaded multiplication took")   // parallel timing reported
	require.Contains(t, out, "Validating results...")               // comparison announced
	require.Contains(t, out, "Results are identical!")              // strategies must agree
	require.NotContains(t, out, "Results differ!")                  // and never disagree
}

// TestSessionRepromptsOnBadInt verifies non-numeric and non-positive entries
// are rejected and re-prompted until a valid value arrives.
func TestSessionRepromptsOnBadInt(t *testing.T) {
	out := runScript(t,
		"abc", // non-numeric rows of A
		"0",   // non-positive rows of A
		"-2",  // negative rows of A
		"2",   // finally valid
		"2", "2", "2", "1", // remaining dims and workers
		"y", // quit
	)

	// one initial prompt plus one re-prompt per rejected entry
	require.Equal(t, 3, strings.Count(out, "Invalid input. Enter the number of rows of Matrix A: "))
	require.Contains(t, out, "Results are identical!") // cycle still completes
}

// TestSessionDimensionMismatchContinues verifies a core error is printed and
// the loop continues to the quit prompt instead of terminating.
func TestSessionDimensionMismatchContinues(t *testing.T) {
	out := runScript(t,
		"2", "3", // A is 2x3
		"4", "2", // B is 4x2 — inner dimensions disagree
		"2", // workers
		"n", // don't quit: run a second, valid cycle
		"2", "2", "2", "2", "1",
		"y", // quit
	)

	require.Contains(t, out, "dimension mismatch")     // core error surfaced to the user
	require.Contains(t, out, "Results are identical!") // second cycle ran normally
}

// TestSessionQuitValidation verifies the quit prompt accepts only y/n,
// case-insensitively, and re-prompts otherwise.
func TestSessionQuitValidation(t *testing.T) {
	out := runScript(t,
		"1", "1", "1", "1", "1", // minimal valid cycle
		"maybe", // invalid quit answer
		"Y",     // accepted, case-insensitive
	)

	require.Contains(t, out, "Invalid input: the input must be either Y or N. Quit (Y/N): ")
	require.Equal(t, 1, strings.Count(out, "Validating results...")) // no extra cycle ran
}

// TestSessionEndOfInput verifies the session terminates cleanly when input
// runs out mid-prompt.
func TestSessionEndOfInput(t *testing.T) {
	var out bytes.Buffer
	newSession(strings.NewReader("2\n3\n"), &out).run() // input ends before all dims arrive

	require.Contains(t, out.String(), "Enter the number of rows of Matrix B: ") // stopped at the dry prompt
	require.NotContains(t, out.String(), "Validating results...")               // no cycle completed
}
