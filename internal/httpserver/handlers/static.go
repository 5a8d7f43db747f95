package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/MrSnakeDoc/lanscout/internal/httpserver/deps"
)

// faviconFile is looked up in the icons directory.
const faviconFile = "favicon.ico"

// Icons serves files from the icons directory under /icons/.
// Directory listings are disabled.
func Icons(d deps.Deps) http.Handler {
	fs := http.FileServer(noListingFS{http.Dir(d.IconsDir)})
	return http.StripPrefix("/icons/", fs)
}

// Favicon serves favicon.ico from the icons directory.
func Favicon(d deps.Deps) http.HandlerFunc {
	path := filepath.Join(d.IconsDir, faviconFile)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/vnd.microsoft.icon")
		http.ServeFile(w, r, path)
	}
}

// noListingFS hides directories so /icons/ never renders an index.
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
