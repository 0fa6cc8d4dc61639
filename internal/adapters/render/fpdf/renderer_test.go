package fpdf

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"receita-api/internal/domain/prescriptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(meds int, doctor *prescriptions.DoctorInfo) prescriptions.Document {
	req := prescriptions.PrescriptionRequest{
		ServiceLocation: "UBS Centro",
		PatientName:     "Maria da Silva",
		PatientCPF:      "12345678901",
		Doctor:          doctor,
	}
	for i := 0; i < meds; i++ {
		req.Medications = append(req.Medications, prescriptions.MedicationLine{
			Name:           fmt.Sprintf("Medicamento %d", i+1),
			Dosage:         "500mg",
			Quantity:       "1 caixa",
			Administration: "1 comprimido a cada 8 horas",
		})
	}
	return prescriptions.Document{
		ID:          "7b1c6a52-4f5e-4d0a-9a1c-1b2f3e4d5c6a",
		Request:     prescriptions.Normalize(req),
		GeneratedAt: time.Date(2026, 10, 19, 14, 5, 0, 0, time.FixedZone("UTC-03:00", -3*3600)),
		Creator:     "receita-api",
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	r, err := New(prescriptions.DefaultLayout())
	require.NoError(t, err)

	out, pages, err := r.Render(context.Background(), newDoc(2, &prescriptions.DoctorInfo{
		Name:       "João Souza",
		CRM:        "12345-SP",
		ClinicName: "Clínica Saúde",
	}))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "missing PDF header")
	assert.Contains(t, string(out), "%%EOF")
	assert.Equal(t, 1, pages)
	// el ID va en /Keywords sin codificar
	assert.Contains(t, string(out), "7b1c6a52-4f5e-4d0a-9a1c-1b2f3e4d5c6a")
}

func TestRender_EmptyDocument(t *testing.T) {
	r, err := New(prescriptions.DefaultLayout())
	require.NoError(t, err)

	doc := prescriptions.Document{Request: prescriptions.Normalize(prescriptions.PrescriptionRequest{})}
	out, pages, err := r.Render(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
	assert.NotEmpty(t, out)
}

// Layout por defecto: primer medicamento en y=64, corte en 272, 7mm por línea
// => 30 líneas en la página 1 y 36 en las siguientes.
func TestRender_PageCount_DefaultLayout(t *testing.T) {
	r, err := New(prescriptions.DefaultLayout())
	require.NoError(t, err)

	tests := []struct {
		meds  int
		pages int
	}{
		{0, 1},
		{1, 1},
		{30, 1},
		{31, 2},
		{66, 2},
		{67, 3},
		{102, 3},
		{103, 4},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d meds", tt.meds), func(t *testing.T) {
			_, pages, err := r.Render(context.Background(), newDoc(tt.meds, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.pages, pages)
		})
	}
}

func TestRender_PageCount_CustomLayout(t *testing.T) {
	// Página chica: primer medicamento en y=48, corte en 80, 5mm por línea
	// => 7 líneas en la página 1 y 14 en las siguientes.
	layout := prescriptions.Layout{
		PageWidth:    100,
		PageHeight:   100,
		MarginLeft:   10,
		MarginTop:    10,
		MarginBottom: 20,
		LineHeight:   5,
		FooterOffset: 10,
	}
	r, err := New(layout)
	require.NoError(t, err)

	for meds, want := range map[int]int{7: 1, 8: 2, 21: 2, 22: 3} {
		_, pages, err := r.Render(context.Background(), newDoc(meds, nil))
		require.NoError(t, err)
		assert.Equal(t, want, pages, "meds=%d", meds)
	}
}

func TestRender_DoctorSectionBreaksPage(t *testing.T) {
	r, err := New(prescriptions.DefaultLayout())
	require.NoError(t, err)

	// 30 medicamentos llenan la página 1; la sección Médico pasa a la 2.
	_, pages, err := r.Render(context.Background(), newDoc(30, &prescriptions.DoctorInfo{Name: "Ana"}))
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
}

func TestRender_CanceledContext(t *testing.T) {
	r, err := New(prescriptions.DefaultLayout())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = r.Render(ctx, newDoc(1, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_RejectsInvalidLayout(t *testing.T) {
	l := prescriptions.DefaultLayout()
	l.LineHeight = 0

	_, err := New(l)
	require.Error(t, err)
	assert.ErrorIs(t, err, prescriptions.ErrInvalidLayout)
}
