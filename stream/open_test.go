package stream

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Truman-Xu/crimm/builder"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeGzipFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return path
}

func replayFile(t *testing.T, path string) *builder.Builder {
	t.Helper()
	f, err := Open(path, nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	b := builder.New(nil)
	require.NoError(t, Replay(f, b))
	return b
}

func TestOpenPlainFile(t *testing.T) {
	path := writeFile(t, "records.txt", sampleRecords)
	b := replayFile(t, path)

	st, err := b.Structure()
	require.NoError(t, err)
	require.Equal(t, "1abc", st.ID())
	require.Len(t, st.UnpackedAtoms(), 2)
}

func TestOpenGzipFile(t *testing.T) {
	// Detection is by magic bytes; the name carries no hint.
	path := writeGzipFile(t, "records.txt", sampleRecords)
	b := replayFile(t, path)

	st, err := b.Structure()
	require.NoError(t, err)
	require.Equal(t, "1abc", st.ID())
	require.Len(t, st.UnpackedAtoms(), 2)
}

func TestOpenEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", "")
	_, err := Open(path, nil)
	require.ErrorIs(t, err, ErrEmptyFile)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.txt"), nil)
	require.Error(t, err)
}

func TestOpenCloseTwice(t *testing.T) {
	path := writeFile(t, "records.txt", sampleRecords)
	f, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}
