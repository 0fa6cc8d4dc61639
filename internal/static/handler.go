// Package static sirve el build del SPA con fallback a index.html.
package static

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"receita-api/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const DefaultIndex = "index.html"

type Options struct {
	Index  string // documento de entrada del SPA (default index.html)
	Logger logger.Logger
}

// Handler resuelve el path contra fsys:
// - archivo regular existente => se sirve tal cual
// - path con "." inexistente => 404 (no devolver index.html como si fuera .js)
// - cualquier otra ruta => index.html (routing del lado del cliente)
func Handler(fsys fs.FS, opts Options) http.Handler {
	index := strings.TrimSpace(opts.Index)
	if index == "" {
		index = DefaultIndex
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := resolve(r.URL.Path)

		if name != "" && isRegularFile(fsys, name) {
			serveFile(w, fsys, name, log)
			return
		}

		if strings.Contains(name, ".") {
			log.Debug("static asset not found", map[string]any{
				"path":       r.URL.Path,
				"request_id": chimw.GetReqID(r.Context()),
			})
			http.NotFound(w, r)
			return
		}

		if !isRegularFile(fsys, index) {
			log.Error("spa index missing", map[string]any{
				"index":      index,
				"request_id": chimw.GetReqID(r.Context()),
			})
			http.NotFound(w, r)
			return
		}
		serveFile(w, fsys, index, log)
	})
}

// resolve limpia el path de la URL y lo deja relativo a la raíz del FS.
// "/" y "" quedan como "".
func resolve(urlPath string) string {
	p := path.Clean("/" + urlPath)
	return strings.TrimPrefix(p, "/")
}

func isRegularFile(fsys fs.FS, name string) bool {
	if !fs.ValidPath(name) {
		return false
	}
	fi, err := fs.Stat(fsys, name)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

func serveFile(w http.ResponseWriter, fsys fs.FS, name string, log logger.Logger) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		log.Error("static read failed", map[string]any{"file": name, "error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	ct := mime.TypeByExtension(path.Ext(name))
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
