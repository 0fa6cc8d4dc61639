package prescriptions

import "github.com/cockroachdb/errors"

var (
	ErrInvalidLayout = errors.New("invalid layout")
)

// Layout describe la página en milímetros, con origen arriba a la izquierda
// (el cursor crece hacia abajo).
type Layout struct {
	PageWidth  float64
	PageHeight float64

	MarginLeft   float64
	MarginTop    float64
	MarginBottom float64

	LineHeight float64

	// FooterOffset es la distancia del timestamp al borde inferior.
	FooterOffset float64
}

// DefaultLayout es A4 vertical.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:    210,
		PageHeight:   297,
		MarginLeft:   20,
		MarginTop:    20,
		MarginBottom: 25,
		LineHeight:   7,
		FooterOffset: 12,
	}
}

func (l Layout) Validate() error {
	if l.PageWidth <= 0 || l.PageHeight <= 0 {
		return errors.Wrap(ErrInvalidLayout, "page size must be positive")
	}
	if l.LineHeight <= 0 {
		return errors.Wrap(ErrInvalidLayout, "line height must be positive")
	}
	if l.MarginTop < 0 || l.MarginBottom <= 0 || l.MarginLeft < 0 {
		return errors.Wrap(ErrInvalidLayout, "margins must be positive")
	}
	if l.LineHeight > l.MarginBottom {
		return errors.Wrap(ErrInvalidLayout, "line height cannot exceed bottom margin")
	}
	if l.MarginTop+l.LineHeight >= l.PageHeight-l.MarginBottom {
		return errors.Wrap(ErrInvalidLayout, "margins leave no room for content")
	}
	if l.FooterOffset <= 0 || l.FooterOffset > l.MarginBottom {
		return errors.Wrap(ErrInvalidLayout, "footer must sit inside the bottom margin")
	}
	return nil
}

// NeedsNewPage decide si la próxima línea ya cae dentro del margen inferior.
// Sin estado: solo depende de la posición del cursor.
func NeedsNewPage(cursorY, pageHeight, bottomMargin float64) bool {
	return cursorY >= pageHeight-bottomMargin
}

func (l Layout) NeedsNewPage(cursorY float64) bool {
	return NeedsNewPage(cursorY, l.PageHeight, l.MarginBottom)
}

// FooterY es la línea base del timestamp en la última página.
func (l Layout) FooterY() float64 {
	return l.PageHeight - l.FooterOffset
}

// ContentWidth es el ancho útil (margen derecho = izquierdo).
func (l Layout) ContentWidth() float64 {
	return l.PageWidth - 2*l.MarginLeft
}
