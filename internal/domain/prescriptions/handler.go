package prescriptions

import (
	"encoding/json"
	"net/http"
	"strconv"

	"receita-api/internal/platform/logger"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api", func(ar chi.Router) {
		ar.Post("/generate-prescription-pdf", generatePDFHandler(svc, log))
	})
}

// Mensajes para el SPA; el detalle queda solo en el log.
const (
	msgInvalidPayload = "JSON inválido ou ausente"
	msgRenderFailed   = "erro ao gerar PDF"
)

// errorResponse es el cuerpo de error que espera el SPA ({"error": "..."}).
type errorResponse struct {
	Error string `json:"error"`
}

// generatePDFHandler godoc
// @Summary Gerar receita em PDF
// @Description Recebe os dados da receita e devolve o PDF como anexo (receita.pdf). Campos ausentes são tratados como texto vazio; documentType padrão "Receita". Uma nova página é aberta quando a lista de medicamentos alcança a margem inferior.
// @Tags prescriptions
// @Accept json
// @Produce application/pdf
// @Param payload body PrescriptionRequest true "Dados da receita"
// @Success 200 {file} file "PDF (Content-Disposition: attachment)"
// @Header 200 {string} X-Document-ID "UUID do documento gerado"
// @Header 200 {integer} X-Page-Count "Quantidade de páginas"
// @Failure 400 {object} errorResponse "payload ausente ou JSON inválido"
// @Failure 500 {object} errorResponse "falha ao gerar PDF"
// @Router /api/generate-prescription-pdf [post]
func generatePDFHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := log.With(map[string]any{"request_id": chimw.GetReqID(r.Context())})

		req, err := DecodeRequest(r.Body)
		if err != nil {
			l.Warn("invalid prescription payload", map[string]any{"error": err.Error()})
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidPayload})
			return
		}

		out, err := svc.Generate(r.Context(), req)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrInvalidPayload) {
				status = http.StatusBadRequest
			}
			l.Error("prescription pdf failed", map[string]any{"error": err.Error()})
			writeJSON(w, status, errorResponse{Error: msgRenderFailed})
			return
		}

		l.Info("prescription pdf generated", map[string]any{
			"document_id": out.ID,
			"pages":       out.Pages,
			"medications": len(req.Medications),
			"size_bytes":  len(out.Content),
			"has_doctor":  req.Doctor != nil,
		})

		h := w.Header()
		h.Set("Content-Type", "application/pdf")
		h.Set("Content-Disposition", "attachment; filename="+out.Filename)
		h.Set("Content-Length", strconv.Itoa(len(out.Content)))
		h.Set("X-Document-ID", out.ID)
		h.Set("X-Page-Count", strconv.Itoa(out.Pages))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out.Content)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (prescriptions/middleware)
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
