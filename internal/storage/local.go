package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Local keeps uploads on disk under BaseDir and serves them from URLPrefix.
// Keys are random, so the client-chosen filename only ever contributes its
// extension.
type Local struct {
	BaseDir   string
	URLPrefix string
}

func NewLocal(baseDir, urlPrefix string) *Local {
	return &Local{BaseDir: baseDir, URLPrefix: urlPrefix}
}

func (l *Local) Put(_ context.Context, r io.Reader, in PutInput) (PutResult, error) {
	if err := os.MkdirAll(l.BaseDir, 0o755); err != nil {
		return PutResult{}, err
	}

	key := uuid.NewString() + imageExt(in.Filename)

	f, err := os.OpenFile(filepath.Join(l.BaseDir, key), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return PutResult{}, err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return PutResult{}, err
	}

	return PutResult{
		Key: key,
		URL: strings.TrimRight(l.URLPrefix, "/") + "/" + key,
	}, nil
}

// Delete strips any path components from the key before touching the
// filesystem, so a crafted key cannot reach outside BaseDir.
func (l *Local) Delete(_ context.Context, key string) error {
	return os.Remove(filepath.Join(l.BaseDir, filepath.Base(key)))
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }

// imageExt returns the lowercased extension when it belongs to a supported
// image format, and the empty string for everything else.
func imageExt(filename string) string {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return ext
	default:
		return ""
	}
}
