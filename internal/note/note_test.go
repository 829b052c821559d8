package note

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	testCases := []struct {
		path     string
		expected string
	}{
		{path: "weekly.md", expected: "weekly"},
		{path: "/vault/notes/Issue 12.md", expected: "Issue 12"},
		{path: "archive.tar.gz", expected: "archive.tar"},
		{path: "README", expected: "README"},
		{path: ".hidden", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.expected, Title(tc.path))
		})
	}
}

func TestRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	body := "# Hello\n\nSome \"quoted\" text, ünïcödé and a trailing newline\n"

	require.NoError(t, afero.WriteFile(fs, "/vault/Hello world.md", []byte(body), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/vault/empty.md", nil, 0o644))
	require.NoError(t, fs.MkdirAll("/vault/dir.md", 0o755))

	r := Reader{Fs: fs}

	n, err := r.Read("/vault/Hello world.md")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", n.Title)
	assert.Equal(t, body, n.Body)

	n, err = r.Read("/vault/empty.md")
	require.NoError(t, err)
	assert.Equal(t, "empty", n.Title)
	assert.Empty(t, n.Body)

	_, err = r.Read("/vault/dir.md")
	require.ErrorIs(t, err, ErrIsDirectory)

	_, err = r.Read("/vault/missing.md")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadKeepsInvalidUTF8(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/vault/latin1.md", []byte("caf\xe9"), 0o644))

	n, err := Reader{Fs: fs}.Read("/vault/latin1.md")
	require.NoError(t, err)
	assert.Equal(t, "caf\xe9", n.Body)
}
