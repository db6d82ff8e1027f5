package web

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
)

// FileRoute is a GET route serving a single embedded file.
type FileRoute struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// DistServer returns a handler serving files from subdir of fsys with the
// URL prefix stripped. Directories are answered with 404 rather than a
// listing.
func DistServer(fsys fs.FS, subdir, prefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	files := http.StripPrefix(prefix, http.FileServer(http.FS(sub)))

	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, prefix)
		if !isFile(sub, name) {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}
}

func isFile(fsys fs.FS, name string) bool {
	if name == "" || strings.HasSuffix(name, "/") {
		return false
	}
	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(fsys, name)
	return err == nil && !info.IsDir()
}

// PublicFile returns a handler serving one file from subdir of fsys.
func PublicFile(fsys fs.FS, subdir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, path.Join(subdir, name))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		contentType := mime.TypeByExtension(path.Ext(name))
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}
		ServeEmbeddedFile(data, contentType)(w, r)
	}
}

// PublicFileRoutes returns a root-level route for each named file.
func PublicFileRoutes(fsys fs.FS, subdir string, files ...string) []FileRoute {
	routes := make([]FileRoute, 0, len(files))
	for _, name := range files {
		routes = append(routes, FileRoute{
			Method:  http.MethodGet,
			Pattern: "/" + name,
			Handler: PublicFile(fsys, subdir, name),
		})
	}
	return routes
}

// ServeEmbeddedFile returns a handler that writes data with the given content type.
func ServeEmbeddedFile(data []byte, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
