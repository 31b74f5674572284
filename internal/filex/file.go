package filex

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates dir (and parents) when missing and returns its absolute
// path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}
	return abs, nil
}

// Info describes a local file the way a document picker would.
type Info struct {
	Name     string
	Size     int64
	MimeType string
	Path     string
}

// Describe stats path and sniffs its MIME type, first from the extension and
// then from the first 512 bytes.
func Describe(path string) (*Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mt == "" {
		mt, err = sniff(path)
		if err != nil {
			return nil, err
		}
	}
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}

	return &Info{Name: filepath.Base(path), Size: fi.Size(), MimeType: mt, Path: path}, nil
}

func sniff(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	return http.DetectContentType(buf[:n]), nil
}
