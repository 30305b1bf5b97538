package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPutAndDelete(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/uploads/")
	ctx := context.Background()

	res, err := l.Put(ctx, strings.NewReader("fake image bytes"), PutInput{
		Filename:    "Photo.PNG",
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.Key, ".png"), "extension is lowercased: %s", res.Key)
	assert.Equal(t, "/uploads/"+res.Key, res.URL)

	data, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	require.NoError(t, l.Delete(ctx, res.Key))
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalDeleteIgnoresPathComponents(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/uploads/")
	ctx := context.Background()

	res, err := l.Put(ctx, strings.NewReader("x"), PutInput{Filename: "a.jpg"})
	require.NoError(t, err)

	require.NoError(t, l.Delete(ctx, "../../etc/"+res.Key))
	_, err = os.Stat(filepath.Join(dir, res.Key))
	assert.True(t, os.IsNotExist(err))
}

func TestImageExt(t *testing.T) {
	cases := map[string]string{
		"photo.png":      ".png",
		"photo.JPG":      ".jpg",
		"banner.jpeg":    ".jpeg",
		"anim.gif":       ".gif",
		"hero.webp":      ".webp",
		"payload.php":    "",
		"noextension":    "",
		"archive.tar.gz": "",
	}
	for name, want := range cases {
		assert.Equal(t, want, imageExt(name), name)
	}
}
