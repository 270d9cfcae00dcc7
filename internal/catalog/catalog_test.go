package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junhyuk/worddrill/internal/catalog"
	"github.com/junhyuk/worddrill/internal/models"
)

func TestSlice_Clipping(t *testing.T) {
	cat := catalog.New([]models.WordEntry{
		{Meaning: "a", Word: "1"},
		{Meaning: "b", Word: "2"},
		{Meaning: "c", Word: "3"},
	})

	assert.Len(t, cat.Slice(0, 3), 3)
	assert.Len(t, cat.Slice(1, 10), 2)
	assert.Len(t, cat.Slice(-5, 2), 2)
	assert.Empty(t, cat.Slice(3, 10))
	assert.Empty(t, cat.Slice(2, 1))
}

func TestDays(t *testing.T) {
	cat := catalog.New(make([]models.WordEntry, 45))

	assert.Equal(t, 3, cat.Days(20))
	assert.Equal(t, 45, cat.Days(1))
	assert.Equal(t, 0, cat.Days(0))
}

func TestNew_CopiesEntries(t *testing.T) {
	entries := []models.WordEntry{{Meaning: "a", Word: "1"}}
	cat := catalog.New(entries)

	entries[0].Word = "mutated"
	assert.Equal(t, "1", cat.Slice(0, 1)[0].Word)
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeTempFile(t, "words.csv", "meaning,word\n사과,apple\n바나나,banana\n")

	cat, err := catalog.Load(path)
	require.NoError(t, err)

	require.Equal(t, 2, cat.Len())
	entries := cat.Slice(0, 2)
	assert.Equal(t, models.WordEntry{Meaning: "사과", Word: "apple"}, entries[0])
	assert.Equal(t, models.WordEntry{Meaning: "바나나", Word: "banana"}, entries[1])
}

func TestLoad_CSVColumnOrderDoesNotMatter(t *testing.T) {
	path := writeTempFile(t, "words.csv", "word,meaning\napple,사과\n")

	cat, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, models.WordEntry{Meaning: "사과", Word: "apple"}, cat.Slice(0, 1)[0])
}

func TestLoad_CSVHeaderCaseInsensitive(t *testing.T) {
	path := writeTempFile(t, "words.csv", "Meaning,Word\n사과,apple\n")

	cat, err := catalog.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoad_MissingHeader(t *testing.T) {
	path := writeTempFile(t, "words.csv", "front,back\n사과,apple\n")

	_, err := catalog.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "meaning")
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "words.csv", "")

	_, err := catalog.Load(path)
	assert.Error(t, err)
}
