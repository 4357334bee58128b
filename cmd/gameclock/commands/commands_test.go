package commands

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCommands_text(t *testing.T) {
	for idx, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"add", "2024-02-28 23:30:00", "01:00:00"}, "2024-02-29 00:30:00\n"},
		{[]string{"add", "2024-02-28", "23:30:00", "01:00:00"}, "2024-02-29 00:30:00\n"},
		{[]string{"add", "2024-02-28", "1:00:00:00"}, "2024-02-29\n"},
		{[]string{"add", "03:04:59", "1:00:00:00"}, "03:04:59 (+1 days)\n"},
		{[]string{"add", "--kind", "duration", "03:04:59", "1:00:00:00"}, "1:03:04:59\n"},
		{[]string{"sub", "00:00:00", "00:00:01"}, "23:59:59 (+1 days)\n"},
		{[]string{"sub", "2024-03-01 00:00:00", "00:00:01"}, "2024-02-29 23:59:59\n"},
		{[]string{"since", "2024-03-01", "2024-02-01"}, "29:00:00:00\n"},
		{[]string{"since", "2024-01-02", "01:00:00", "2024-01-01", "23:00:00"}, "02:00:00\n"},
		{[]string{"since", "06:00:00", "18:00:00"}, "-12:00:00\n"},
		{[]string{"scale", "00:01:00", "7"}, "00:07:00\n"},
		{[]string{"scale", "--div", "00:01:00", "7"}, "00:00:08\n"},
		{[]string{"scale", "00:00:03", "0.5"}, "00:00:02\n"},
		{[]string{"scale", "1098:10:51:05", "94906267.0"}, "104249992199:19:12:35\n"},
		{[]string{"scale", "--", "-00:00:10", "1.5"}, "-00:00:15\n"},
	} {
		got, err := run(t, tc.args...)
		require.NoError(t, err, "case %d", idx)
		assert.Equal(t, tc.want, got, "case %d", idx)
	}
}

func TestCommands_errors(t *testing.T) {
	for idx, args := range [][]string{
		{"add", "2147483647-12-31 23:59:59", "00:00:01"},
		{"add", "bogus", "00:00:01"},
		{"add", "2024-01-01", "not-a-duration"},
		{"since", "2024-01-01", "01:00:00"},
		{"scale", "00:00:01", "0.0", "--div"},
		{"scale", "00:00:01", "0", "--div"},
		{"scale", "00:00:01", "NaN"},
		{"scale", "00:00:01", "x"},
		{"bounds", "extra"},
		{"--output", "json", "bounds"},
		{"--log-level", "loud", "bounds"},
	} {
		_, err := run(t, args...)
		assert.Error(t, err, "case %d: %v", idx, args)
	}
}

func TestCommands_yaml(t *testing.T) {
	got, err := run(t, "-o", "yaml", "add", "23:00:00", "02:00:00")
	require.NoError(t, err)

	var res struct {
		Op      string `yaml:"op"`
		Kind    string `yaml:"kind"`
		Value   string `yaml:"value"`
		Wrapped int64  `yaml:"wrapped_days"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(got), &res))
	assert.Equal(t, "add", res.Op)
	assert.Equal(t, kindTime, res.Kind)
	assert.Equal(t, "01:00:00", res.Value)
	assert.Equal(t, int64(1), res.Wrapped)
}

func TestCommands_envOutput(t *testing.T) {
	t.Setenv("GAMECLOCK_OUTPUT", "yaml")
	got, err := run(t, "bounds")
	require.NoError(t, err)

	var rows []struct {
		Kind string `yaml:"kind"`
		Min  string `yaml:"min"`
		Max  string `yaml:"max"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(got), &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, "-2147483648-01-01 00:00:00", rows[0].Min)
	assert.Equal(t, "2147483647-12-31", rows[1].Max)
	assert.Equal(t, "23:59:59", rows[2].Max)
	assert.Equal(t, "-1568704592609:23:59:59", rows[3].Min)

	// the flag wins over the environment
	got, err = run(t, "--output", "text", "bounds")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^duration\s+-1568704592609:23:59:59\s+1568704592609:23:59:59$`, got)
}

func TestJoinDateTimes(t *testing.T) {
	words, err := joinDateTimes([]string{"2024-01-01", "01:00:00"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "01:00:00"}, words)

	words, err = joinDateTimes([]string{"2024-01-01", "01:00:00", "00:00:05"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01 01:00:00", "00:00:05"}, words)

	_, err = joinDateTimes([]string{"a", "b", "c"}, 2)
	assert.Error(t, err)
}
