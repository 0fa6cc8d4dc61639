package fpdf

import (
	"bytes"
	"context"
	"strings"

	"receita-api/internal/domain/prescriptions"

	"github.com/cockroachdb/errors"
	gofpdf "github.com/go-pdf/fpdf"
)

const (
	fontFamily = "Helvetica"

	titleAdvance   = 10.0 // el título ocupa más que una línea normal
	sectionGap     = 5.0
	sectionAdvance = 8.0
)

type font struct {
	style string
	size  float64
}

var (
	fontTitle   = font{style: "B", size: 16}
	fontSection = font{style: "B", size: 13}
	fontBody    = font{style: "", size: 11}
	fontFooter  = font{style: "I", size: 9}
)

// Renderer implementa prescriptions.Renderer dibujando directo con fpdf.
type Renderer struct {
	layout prescriptions.Layout
}

func New(layout prescriptions.Layout) (*Renderer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{layout: layout}, nil
}

func (r *Renderer) Render(ctx context.Context, doc prescriptions.Document) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "fpdf: render canceled")
	}

	c := newCanvas(r.layout)
	c.setMetadata(doc)
	c.draw(doc.Request)
	c.footer(prescriptions.FormatGeneratedAt(doc.GeneratedAt))

	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, 0, errors.Wrap(err, "fpdf: output")
	}
	return buf.Bytes(), c.pdf.PageNo(), nil
}

// canvas guarda el estado de una sola generación: documento, cursor y fuente activa.
type canvas struct {
	pdf    *gofpdf.Fpdf
	layout prescriptions.Layout
	tr     func(string) string

	y    float64
	font font
}

func newCanvas(l prescriptions.Layout) *canvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: l.PageWidth, Ht: l.PageHeight},
	})
	pdf.SetMargins(l.MarginLeft, l.MarginTop, l.MarginLeft)
	// La paginación la decide NeedsNewPage, no fpdf.
	pdf.SetAutoPageBreak(false, 0)

	c := &canvas{
		pdf:    pdf,
		layout: l,
		// fuentes core de fpdf son cp1252: acentos (Médico, Endereço) pasan por acá
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
	pdf.AddPage()
	c.y = l.MarginTop
	return c
}

func (c *canvas) setMetadata(doc prescriptions.Document) {
	req := doc.Request
	c.pdf.SetTitle(req.DocumentType+" - "+req.PatientName, true)
	c.pdf.SetSubject(req.DocumentType, true)
	c.pdf.SetKeywords(doc.ID, false)
	if req.Doctor != nil && strings.TrimSpace(req.Doctor.Name) != "" {
		c.pdf.SetAuthor(req.Doctor.Name, true)
	}
	if doc.Creator != "" {
		c.pdf.SetCreator(doc.Creator, true)
	}
	if !doc.GeneratedAt.IsZero() {
		c.pdf.SetCreationDate(doc.GeneratedAt)
		c.pdf.SetModificationDate(doc.GeneratedAt)
	}
}

func (c *canvas) draw(req prescriptions.PrescriptionRequest) {
	l := c.layout

	c.setFont(fontTitle)
	c.text(req.DocumentType)
	c.pdf.SetLineWidth(0.3)
	c.pdf.Line(l.MarginLeft, c.y+2, l.PageWidth-l.MarginLeft, c.y+2)
	c.y += titleAdvance

	c.setFont(fontBody)
	c.line("Local de atendimento: " + req.ServiceLocation)
	c.line("Paciente: " + req.PatientName)
	c.line("CPF: " + prescriptions.FormatCPF(req.PatientCPF))

	c.section("Medicamentos")
	for i, m := range req.Medications {
		c.line(prescriptions.MedicationText(i+1, m))
	}

	if req.Doctor != nil {
		c.section("Médico")
		for _, s := range prescriptions.DoctorLines(*req.Doctor) {
			c.line(s)
		}
	}
}

func (c *canvas) section(title string) {
	c.y += sectionGap
	c.breakIfNeeded()
	c.setFont(fontSection)
	c.text(title)
	c.y += sectionAdvance
	c.setFont(fontBody)
}

// line dibuja una línea de cuerpo y avanza el cursor, abriendo página si hace falta.
func (c *canvas) line(s string) {
	c.breakIfNeeded()
	c.text(s)
	c.y += c.layout.LineHeight
}

func (c *canvas) breakIfNeeded() {
	if !c.layout.NeedsNewPage(c.y) {
		return
	}
	c.pdf.AddPage()
	c.y = c.layout.MarginTop
	c.pdf.SetFont(fontFamily, c.font.style, c.font.size)
}

func (c *canvas) footer(s string) {
	c.setFont(fontFooter)
	c.pdf.SetTextColor(100, 100, 100)
	c.pdf.Text(c.layout.MarginLeft, c.layout.FooterY(), c.tr(s))
	c.pdf.SetTextColor(0, 0, 0)
}

func (c *canvas) text(s string) {
	c.pdf.Text(c.layout.MarginLeft, c.y, c.tr(s))
}

func (c *canvas) setFont(f font) {
	c.font = f
	c.pdf.SetFont(fontFamily, f.style, f.size)
}
