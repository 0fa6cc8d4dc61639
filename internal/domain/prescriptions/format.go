package prescriptions

import (
	"fmt"
	"strings"
	"time"
)

var monthsPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatCPF devuelve 000.000.000-00 si hay exactamente 11 dígitos;
// si no, el valor tal cual vino.
func FormatCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()
	if len(d) != 11 {
		return cpf
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

// FormatLongDate: "19 de outubro de 2026".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), monthsPT[t.Month()-1], t.Year())
}

// FormatGeneratedAt es el texto del rodapé.
func FormatGeneratedAt(t time.Time) string {
	name, _ := t.Zone()
	return fmt.Sprintf("Gerado em %s às %s (%s)", FormatLongDate(t), t.Format("15:04"), name)
}

// MedicationText arma la línea "N. nome - dose | Qtd: x | Uso: y".
// Las partes vacías se omiten.
func MedicationText(n int, m MedicationLine) string {
	head := flatten(m.Name)
	if d := flatten(m.Dosage); d != "" {
		if head != "" {
			head += " - "
		}
		head += d
	}

	parts := []string{fmt.Sprintf("%d. %s", n, head)}
	if q := flatten(m.Quantity); q != "" {
		parts = append(parts, "Qtd: "+q)
	}
	if a := flatten(m.Administration); a != "" {
		parts = append(parts, "Uso: "+a)
	}
	return strings.TrimSpace(strings.Join(parts, " | "))
}

// DoctorLines son las líneas de la sección "Médico", en orden.
func DoctorLines(d DoctorInfo) []string {
	lines := []string{
		strings.TrimSpace(fmt.Sprintf("Dr(a). %s - CRM %s", flatten(d.Name), flatten(d.CRM))),
		"Especialidade: " + flatten(d.Specialty),
		"Clínica: " + flatten(d.ClinicName),
	}
	if v := flatten(d.ClinicAddress); v != "" {
		lines = append(lines, "Endereço: "+v)
	}
	if v := flatten(d.Phone); v != "" {
		lines = append(lines, "Tel: "+v)
	}
	if v := flatten(d.Email); v != "" {
		lines = append(lines, "E-mail: "+v)
	}
	return lines
}

// flatten deja todo en una sola línea (administration suele venir multilínea).
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
