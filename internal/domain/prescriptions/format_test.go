package prescriptions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-01", FormatCPF("12345678901"))
	assert.Equal(t, "123.456.789-01", FormatCPF("123.456.789-01"))
	assert.Equal(t, "1234", FormatCPF("1234"))
	assert.Equal(t, "", FormatCPF(""))
}

func TestFormatGeneratedAt(t *testing.T) {
	loc := time.FixedZone("UTC-03:00", -3*3600)
	ts := time.Date(2026, 10, 19, 17, 5, 0, 0, time.UTC).In(loc)

	assert.Equal(t, "19 de outubro de 2026", FormatLongDate(ts))
	assert.Equal(t, "Gerado em 19 de outubro de 2026 às 14:05 (UTC-03:00)", FormatGeneratedAt(ts))
	assert.Equal(t, "03 de março de 2026", FormatLongDate(time.Date(2026, 3, 3, 0, 0, 0, 0, loc)))
}

func TestMedicationText(t *testing.T) {
	tests := []struct {
		name string
		in   MedicationLine
		want string
	}{
		{
			name: "all fields",
			in:   MedicationLine{Name: "Amoxicilina", Dosage: "500mg", Quantity: "21 cápsulas", Administration: "oral\n8/8h"},
			want: "1. Amoxicilina - 500mg | Qtd: 21 cápsulas | Uso: oral 8/8h",
		},
		{
			name: "name only",
			in:   MedicationLine{Name: "Dipirona"},
			want: "1. Dipirona",
		},
		{
			name: "dosage without name",
			in:   MedicationLine{Dosage: "10 gotas"},
			want: "1. 10 gotas",
		},
		{
			name: "empty",
			in:   MedicationLine{},
			want: "1.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MedicationText(1, tt.in))
		})
	}
}

func TestDoctorLines(t *testing.T) {
	lines := DoctorLines(DoctorInfo{Name: "Ana", CRM: "1-SP", Specialty: "Pediatria", ClinicName: "Clínica"})
	assert.Equal(t, []string{
		"Dr(a). Ana - CRM 1-SP",
		"Especialidade: Pediatria",
		"Clínica: Clínica",
	}, lines)

	withContact := DoctorLines(DoctorInfo{Name: "Ana", Phone: "11 9999-0000", Email: "ana@example.com"})
	assert.Contains(t, withContact, "Tel: 11 9999-0000")
	assert.Contains(t, withContact, "E-mail: ana@example.com")
	assert.Contains(t, withContact, "Clínica: ")
}
