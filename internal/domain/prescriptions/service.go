package prescriptions

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

var (
	ErrInvalidPayload = errors.New("invalid prescription payload")
	ErrRender         = errors.New("prescription render failed")
)

// MaxPayloadBytes limita el body; una receita real ocupa pocos KB.
const MaxPayloadBytes = 1 << 20

type Options struct {
	Filename string
	Creator  string
	Location *time.Location
}

type Service struct {
	renderer Renderer
	filename string
	creator  string
	loc      *time.Location

	now   func() time.Time
	newID func() string
}

func NewService(renderer Renderer, opts Options) *Service {
	filename := strings.TrimSpace(opts.Filename)
	if filename == "" {
		filename = "receita.pdf"
	}
	loc := opts.Location
	if loc == nil {
		loc = time.FixedZone("UTC-03:00", -3*3600)
	}
	return &Service{
		renderer: renderer,
		filename: filename,
		creator:  strings.TrimSpace(opts.Creator),
		loc:      loc,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// DecodeRequest lee el JSON del body. Body vacío, "null" o algo que no sea
// un objeto cuentan como payload ausente.
func DecodeRequest(r io.Reader) (PrescriptionRequest, error) {
	if r == nil {
		return PrescriptionRequest{}, errors.Mark(errors.New("missing JSON payload"), ErrInvalidPayload)
	}

	raw, err := io.ReadAll(io.LimitReader(r, MaxPayloadBytes+1))
	if err != nil {
		return PrescriptionRequest{}, errors.Mark(errors.Wrap(err, "read payload"), ErrInvalidPayload)
	}
	if len(raw) > MaxPayloadBytes {
		return PrescriptionRequest{}, errors.Mark(errors.New("payload too large"), ErrInvalidPayload)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return PrescriptionRequest{}, errors.Mark(errors.New("missing JSON payload"), ErrInvalidPayload)
	}

	var req *PrescriptionRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&req); err != nil {
		return PrescriptionRequest{}, errors.Mark(errors.Wrap(err, "invalid JSON payload"), ErrInvalidPayload)
	}
	if req == nil {
		return PrescriptionRequest{}, errors.Mark(errors.New("missing JSON payload"), ErrInvalidPayload)
	}
	if dec.More() {
		return PrescriptionRequest{}, errors.Mark(errors.New("invalid JSON payload: trailing data"), ErrInvalidPayload)
	}
	return *req, nil
}

// Normalize aplica los defaults (documentType = "Receita").
// Campos ausentes quedan como string vacío; no es un error.
func Normalize(req PrescriptionRequest) PrescriptionRequest {
	out := req
	if strings.TrimSpace(out.DocumentType) == "" {
		out.DocumentType = DefaultDocumentType
	}
	if out.Medications == nil {
		out.Medications = []MedicationLine{}
	}
	return out
}

// Generate arma el Document y lo manda a dibujar.
func (s *Service) Generate(ctx context.Context, req PrescriptionRequest) (Rendered, error) {
	doc := Document{
		ID:          s.newID(),
		Request:     Normalize(req),
		GeneratedAt: s.now().In(s.loc),
		Creator:     s.creator,
	}

	content, pages, err := s.renderer.Render(ctx, doc)
	if err != nil {
		return Rendered{}, errors.Mark(errors.Wrapf(err, "render document %s", doc.ID), ErrRender)
	}

	return Rendered{
		ID:       doc.ID,
		Filename: s.filename,
		Content:  content,
		Pages:    pages,
	}, nil
}
