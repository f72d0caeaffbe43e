package runner

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coclash/coclash/clash"
)

func run(t *testing.T, cmd string, timeout time.Duration, tc clash.TestCase) Result {
	t.Helper()
	r := New("", cmd, timeout, zerolog.Nop())
	return r.RunTest(context.Background(), tc)
}

func TestRunTestSuccess(t *testing.T) {
	res := run(t, "echo hello", 0, clash.TestCase{TestOut: "hello"})
	assert.Equal(t, Success, res.Outcome)
	assert.True(t, res.Passed())
}

func TestRunTestReadsStdin(t *testing.T) {
	res := run(t, "cat", 0, clash.TestCase{TestIn: "42\n", TestOut: "42"})
	assert.Equal(t, Success, res.Outcome)
}

func TestRunTestWrongOutput(t *testing.T) {
	res := run(t, "echo hello", 0, clash.TestCase{TestOut: "goodbye"})
	assert.Equal(t, WrongOutput, res.Outcome)
	assert.Equal(t, "hello\n", res.Stdout)
}

func TestRunTestRuntimeError(t *testing.T) {
	res := run(t, `sh -c "exit 3"`, 0, clash.TestCase{TestOut: "x"})
	assert.Equal(t, RuntimeError, res.Outcome)
	assert.Error(t, res.Err)
}

func TestCrashAfterCorrectOutputStillPasses(t *testing.T) {
	res := run(t, `sh -c "echo ok; exit 1"`, 0, clash.TestCase{TestOut: "ok"})
	assert.Equal(t, Success, res.Outcome)
}

func TestRunTestTimeout(t *testing.T) {
	res := run(t, "sleep 5", 100*time.Millisecond, clash.TestCase{TestOut: "x"})
	assert.Equal(t, Timeout, res.Outcome)
}

func TestRunTestUnableToRun(t *testing.T) {
	res := run(t, "/no/such/binary", 0, clash.TestCase{TestOut: "x"})
	assert.Equal(t, UnableToRun, res.Outcome)
	assert.Error(t, res.Err)
}

func TestBuild(t *testing.T) {
	r := New("true", "echo x", 0, zerolog.Nop())
	require.NoError(t, r.Build(context.Background()))

	r = New("", "echo x", 0, zerolog.Nop())
	require.NoError(t, r.Build(context.Background()), "empty build command is a no-op")

	r = New("false", "echo x", 0, zerolog.Nop())
	assert.Error(t, r.Build(context.Background()))
}

func TestSuiteStopsEarly(t *testing.T) {
	r := New("", "echo nope", 0, zerolog.Nop())
	tcs := []clash.TestCase{
		{Index: 1, TestOut: "a"},
		{Index: 2, TestOut: "b"},
		{Index: 3, TestOut: "c"},
	}
	seen := 0
	for res := range r.Suite(context.Background(), tcs) {
		seen++
		if !res.Passed() {
			break
		}
	}
	assert.Equal(t, 1, seen)
}

func TestOutputMatches(t *testing.T) {
	cases := []struct {
		actual, expected string
		want             bool
	}{
		{"hello\n", "hello", true},
		{"a \nb\t\n", "a\nb", true},
		{"a\r\nb\r\n", "a\nb", true},
		{"a\nb\n\n\n", "a\nb", true},
		{"a\nb", "a\nc", false},
		{"", "", true},
		{" a", "a", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, OutputMatches(c.actual, c.expected),
			"OutputMatches(%q, %q)", c.actual, c.expected)
	}
}
