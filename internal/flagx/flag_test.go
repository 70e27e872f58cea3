package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	got := FilterArgs([]string{"-a", "localhost:8000", "-x", "1"}, []string{"-a"})
	require.Equal(t, []string{"-a", "localhost:8000"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	got := FilterArgs([]string{"--config=conf.json", "--other=1"}, []string{"--config"})
	require.Equal(t, []string{"--config=conf.json"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	got := FilterArgs([]string{"-v", "-a", "addr"}, []string{"-v", "-a"})
	require.Equal(t, []string{"-v", "-a", "addr"}, got)
}

func TestFilterArgs_NothingAllowed(t *testing.T) {
	got := FilterArgs([]string{"-a", "addr"}, nil)
	require.Empty(t, got)
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"test", "-c", "conf.json", "-a", "addr"}
	require.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"test", "-config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"test", "-a", "addr"}
	require.Equal(t, "", JsonConfigFlags())
}
