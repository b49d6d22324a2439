package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelsArePrefixed(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Infof("dialing %s", "112")
	l.Warnf("no contacts")
	l.Errorf("save failed: %v", os.ErrPermission)

	out := buf.String()
	require.Contains(t, out, "INFO: dialing 112")
	require.Contains(t, out, "WARN: no contacts")
	require.Contains(t, out, "ERROR: save failed: permission denied")
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "safeher.log")
	l, err := Open(path)
	require.NoError(t, err)

	l.Infof("hello")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "INFO: hello")
}
