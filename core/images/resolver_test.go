package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFilename(t *testing.T) {
	name := Filename("開く開ける", "https://livedoor.blogimg.jp/edewakaru/abc.png")

	assert.True(t, strings.HasPrefix(name, "開く開ける_"))
	assert.True(t, strings.HasSuffix(name, ".png"))
	// record id + "_" + 8 hex chars + extension
	hash := strings.TrimSuffix(strings.TrimPrefix(name, "開く開ける_"), ".png")
	assert.Len(t, hash, 8)

	// Deterministic: the same (id, URL) pair always maps to one name.
	assert.Equal(t, name, Filename("開く開ける", "https://livedoor.blogimg.jp/edewakaru/abc.png"))

	// Distinct URLs for the same record get distinct names.
	other := Filename("開く開ける", "https://livedoor.blogimg.jp/edewakaru/def.png")
	assert.NotEqual(t, name, other)
}

func TestFilenameDefaultsExtension(t *testing.T) {
	name := Filename("id", "https://livedoor.blogimg.jp/edewakaru/noext")
	assert.True(t, strings.HasSuffix(name, ".jpg"))
}

func TestResolveDownloadsOnce(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("imagebytes"))
	}))
	defer server.Close()

	dir := t.TempDir()
	r, err := New(dir, 0, zap.NewNop())
	require.NoError(t, err)

	imageURL := server.URL + "/pic.jpg"

	filename, err := r.Resolve(context.Background(), "開く開ける", imageURL)
	require.NoError(t, err)
	assert.Equal(t, Filename("開く開ける", imageURL), filename)
	assert.Equal(t, 1, hits)

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, "imagebytes", string(data))

	// Rerun: the existing file short-circuits the network entirely and the
	// bytes on disk stay untouched.
	again, err := r.Resolve(context.Background(), "開く開ける", imageURL)
	require.NoError(t, err)
	assert.Equal(t, filename, again)
	assert.Equal(t, 1, hits, "no second network call")

	data, err = os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, "imagebytes", string(data))
}

func TestResolveFailureReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	dir := t.TempDir()
	r, err := New(dir, 0, zap.NewNop())
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), "id", server.URL+"/pic.jpg")
	require.Error(t, err)

	// Nothing is written for a failed download.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResolveDistinctRecordsNeverCollide(t *testing.T) {
	url := "https://livedoor.blogimg.jp/edewakaru/shared.jpg"
	assert.NotEqual(t, Filename("開く開ける", url), Filename("消える消す", url))
}
