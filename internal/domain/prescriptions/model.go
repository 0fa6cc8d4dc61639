package prescriptions

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

const DefaultDocumentType = "Receita"

// PrescriptionRequest es el payload que manda el SPA al generar la receita.
type PrescriptionRequest struct {
	DocumentType    string           `json:"documentType"`
	ServiceLocation string           `json:"serviceLocation"`
	PatientName     string           `json:"patientName"`
	PatientCPF      string           `json:"patientCPF"`
	Medications     []MedicationLine `json:"medications"`
	Doctor          *DoctorInfo      `json:"doctor"`
}

// UnmarshalJSON exige un objeto en el nivel superior; adentro no se valida
// nada: medications que no sea lista se ignora, lo mismo doctor que no sea objeto.
func (p *PrescriptionRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		DocumentType    text            `json:"documentType"`
		ServiceLocation text            `json:"serviceLocation"`
		PatientName     text            `json:"patientName"`
		PatientCPF      text            `json:"patientCPF"`
		Medications     json.RawMessage `json:"medications"`
		Doctor          json.RawMessage `json:"doctor"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	out := PrescriptionRequest{
		DocumentType:    string(raw.DocumentType),
		ServiceLocation: string(raw.ServiceLocation),
		PatientName:     string(raw.PatientName),
		PatientCPF:      string(raw.PatientCPF),
	}

	if isJSONKind(raw.Medications, '[') {
		var items []json.RawMessage
		if err := json.Unmarshal(raw.Medications, &items); err != nil {
			return err
		}
		for _, it := range items {
			if !isJSONKind(it, '{') {
				continue
			}
			var m MedicationLine
			if err := json.Unmarshal(it, &m); err != nil {
				return err
			}
			out.Medications = append(out.Medications, m)
		}
	}

	if isJSONKind(raw.Doctor, '{') {
		var d DoctorInfo
		if err := json.Unmarshal(raw.Doctor, &d); err != nil {
			return err
		}
		out.Doctor = &d
	}

	*p = out
	return nil
}

// MedicationLine es una línea de la prescripción. Todo texto libre.
type MedicationLine struct {
	Name           string `json:"name"`
	Dosage         string `json:"dosage"`
	Quantity       string `json:"quantity"`
	Administration string `json:"administration"`
}

func (m *MedicationLine) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name           text `json:"name"`
		Dosage         text `json:"dosage"`
		Quantity       text `json:"quantity"`
		Administration text `json:"administration"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*m = MedicationLine{
		Name:           string(raw.Name),
		Dosage:         string(raw.Dosage),
		Quantity:       string(raw.Quantity),
		Administration: string(raw.Administration),
	}
	return nil
}

// DoctorInfo viene del perfil del médico. El perfil guarda las columnas en
// snake_case, por eso clinicName/clinicAddress aceptan también esa forma.
type DoctorInfo struct {
	Name          string `json:"name"`
	CRM           string `json:"crm"`
	Specialty     string `json:"specialty"`
	ClinicName    string `json:"clinicName"`
	ClinicAddress string `json:"clinicAddress"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

func (d *DoctorInfo) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name               text `json:"name"`
		CRM                text `json:"crm"`
		Specialty          text `json:"specialty"`
		ClinicName         text `json:"clinicName"`
		ClinicNameSnake    text `json:"clinic_name"`
		ClinicAddress      text `json:"clinicAddress"`
		ClinicAddressSnake text `json:"clinic_address"`
		Phone              text `json:"phone"`
		Email              text `json:"email"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*d = DoctorInfo{
		Name:          string(raw.Name),
		CRM:           string(raw.CRM),
		Specialty:     string(raw.Specialty),
		ClinicName:    firstNonEmpty(string(raw.ClinicName), string(raw.ClinicNameSnake)),
		ClinicAddress: firstNonEmpty(string(raw.ClinicAddress), string(raw.ClinicAddressSnake)),
		Phone:         string(raw.Phone),
		Email:         string(raw.Email),
	}
	return nil
}

// Document es lo que efectivamente se dibuja: el request normalizado
// más los datos que pone el servidor.
type Document struct {
	ID          string
	Request     PrescriptionRequest
	GeneratedAt time.Time // ya en la zona configurada
	Creator     string
}

// Rendered es el resultado listo para devolver al cliente.
type Rendered struct {
	ID       string
	Filename string
	Content  []byte
	Pages    int
}

// text acepta cualquier valor JSON en un campo de texto libre:
// strings tal cual, números y booleanos como se escribieron, null como "".
// Objetos y listas quedan en su forma JSON compacta.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*t = text(strconv.FormatBool(v))
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, b); err != nil {
			return err
		}
		*t = text(buf.String())
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*t = text(n.String())
	}
	return nil
}

// isJSONKind mira el primer byte significativo ('{' objeto, '[' lista).
func isJSONKind(b json.RawMessage, kind byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == kind
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
