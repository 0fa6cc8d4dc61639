package prescriptions

import "context"

// Renderer dibuja un Document y devuelve los bytes del PDF y la cantidad de páginas.
type Renderer interface {
	Render(ctx context.Context, doc Document) (content []byte, pages int, err error)
}
