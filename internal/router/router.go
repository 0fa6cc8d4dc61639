package router

import (
	"io/fs"
	"net/http"
	"os"

	_ "receita-api/docs"

	pdfrender "receita-api/internal/adapters/render/fpdf"
	"receita-api/internal/domain/prescriptions"
	"receita-api/internal/middleware"
	"receita-api/internal/platform/logger"
	"receita-api/internal/static"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const DefaultStaticDir = "dist"

type Options struct {
	Logger logger.Logger // nil => nop

	// Opcional: si no viene, os.DirFS("dist") relativo al cwd.
	// STATIC_DIR y compañía los resuelve config, no el router.
	StaticFS    fs.FS
	StaticIndex string

	// Opcional: si no viene, fpdf con layout A4 por defecto.
	Prescriptions *prescriptions.Service
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svc := opts.Prescriptions
	if svc == nil {
		// DefaultLayout siempre es válido
		renderer, err := pdfrender.New(prescriptions.DefaultLayout())
		if err != nil {
			panic(err)
		}
		svc = prescriptions.NewService(renderer, prescriptions.Options{})
	}
	prescriptions.RegisterRoutes(r, svc, log)

	// SPA: todo lo que no matcheó arriba
	fsys := opts.StaticFS
	if fsys == nil {
		fsys = os.DirFS(DefaultStaticDir)
	}
	spa := gzhttp.GzipHandler(static.Handler(fsys, static.Options{
		Index:  opts.StaticIndex,
		Logger: log,
	}))
	r.Get("/*", spa)
	r.Head("/*", spa)

	return r
}
