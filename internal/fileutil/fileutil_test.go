package fileutil

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topic.txt")
	require.NoError(t, os.WriteFile(path, []byte("cats or dogs\n"), 0o644))

	content, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cats or dogs\n", content)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestReadFilesFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("second"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("first"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	contents, err := ReadFilesFromDirectory(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, contents)
}

func TestEnsureParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c.json")
	require.NoError(t, EnsureParentDirs(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureParentDirsBareName(t *testing.T) {
	assert.NoError(t, EnsureParentDirs("c.json"))
}

func TestDatetimeFilename(t *testing.T) {
	name := DatetimeFilename("", "", ".json")
	assert.Regexp(t, regexp.MustCompile(`^\d{2}-\d{2}-\d{2}-\d{2}-\d{2}\.json$`), name)

	joined := DatetimeFilename("out", "", ".json")
	assert.True(t, strings.HasPrefix(joined, "out"+string(filepath.Separator)))
}
