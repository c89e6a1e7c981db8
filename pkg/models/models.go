package models

import (
	"encoding/json"
	"sort"
	"strings"
)

// Role names used by the legacy role-keyed assignee format. They are listed
// first, in this order, when building a human-readable summary.
var rolesConocidos = []string{"barra", "puerta"}

// Personas holds the people assigned to a shift. The stored data uses two
// formats: a flat list of names, or a map from a role label ("barra",
// "puerta") to the names covering that role. Exactly one of Lista or Roles is
// populated.
type Personas struct {
	Lista []string
	Roles map[string][]string
}

// UnmarshalJSON accepts both assignee formats.
func (p *Personas) UnmarshalJSON(data []byte) error {
	var lista []string
	if err := json.Unmarshal(data, &lista); err == nil {
		p.Lista = lista
		p.Roles = nil
		return nil
	}

	var roles map[string][]string
	if err := json.Unmarshal(data, &roles); err != nil {
		return err
	}
	p.Lista = nil
	p.Roles = roles
	return nil
}

// MarshalJSON writes back whichever format the value carries. An empty value
// marshals as an empty list so stored records never contain null assignees.
func (p Personas) MarshalJSON() ([]byte, error) {
	if p.Roles != nil {
		return json.Marshal(p.Roles)
	}
	if p.Lista == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(p.Lista)
}

// Vacia reports whether no one is assigned.
func (p Personas) Vacia() bool {
	if p.Roles != nil {
		for _, nombres := range p.Roles {
			if len(nombres) > 0 {
				return false
			}
		}
		return true
	}
	return len(p.Lista) == 0
}

// Etiqueta renders the assignees as a single display string: a comma-joined
// list, or "barra: Ana, Luca | puerta: Javi" for the role-keyed format.
func (p Personas) Etiqueta() string {
	if p.Roles == nil {
		return strings.Join(p.Lista, ", ")
	}

	var partes []string
	visto := make(map[string]bool)
	for _, rol := range rolesConocidos {
		if nombres, ok := p.Roles[rol]; ok {
			partes = append(partes, rol+": "+strings.Join(nombres, ", "))
			visto[rol] = true
		}
	}

	var resto []string
	for rol := range p.Roles {
		if !visto[rol] {
			resto = append(resto, rol)
		}
	}
	sort.Strings(resto)
	for _, rol := range resto {
		partes = append(partes, rol+": "+strings.Join(p.Roles[rol], ", "))
	}
	return strings.Join(partes, " | ")
}

// Turno is a single shift. Fecha is set on flat records; shifts nested inside
// a Dia leave it empty because the day carries the date.
type Turno struct {
	Fecha      string   `json:"fecha,omitempty"`
	HoraInicio string   `json:"horaInicio"`
	HoraFin    string   `json:"horaFin"`
	Actividad  string   `json:"actividad"`
	Personas   Personas `json:"personas"`
}

// Dia groups the shifts of one calendar date.
type Dia struct {
	Fecha  string  `json:"fecha"`
	Turnos []Turno `json:"turnos"`
}

// Registro is the tagged variant decoded at the storage boundary: stored
// records are either Dia-shaped (a date with a shift list) or a flat Turno
// carrying its own fecha. Exactly one field is non-nil after decoding.
type Registro struct {
	Dia   *Dia
	Turno *Turno
}

// DiaRegistro wraps a Dia as a Registro.
func DiaRegistro(d Dia) Registro { return Registro{Dia: &d} }

// TurnoRegistro wraps a flat Turno as a Registro.
func TurnoRegistro(t Turno) Registro { return Registro{Turno: &t} }

// UnmarshalJSON sniffs the record shape: the presence of a "turnos" key marks
// the Dia format, anything else is treated as a flat Turno.
func (r *Registro) UnmarshalJSON(data []byte) error {
	var sonda struct {
		Turnos json.RawMessage `json:"turnos"`
	}
	if err := json.Unmarshal(data, &sonda); err != nil {
		return err
	}

	if sonda.Turnos != nil {
		var d Dia
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		r.Dia = &d
		r.Turno = nil
		return nil
	}

	var t Turno
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	r.Turno = &t
	r.Dia = nil
	return nil
}

// MarshalJSON writes the wrapped record in its original shape.
func (r Registro) MarshalJSON() ([]byte, error) {
	if r.Dia != nil {
		return json.Marshal(r.Dia)
	}
	return json.Marshal(r.Turno)
}

// Prefill is the suggested date and time window for the next shift after a
// submitted one.
type Prefill struct {
	Fecha      string `json:"fecha"`
	HoraInicio string `json:"horaInicio"`
	HoraFin    string `json:"horaFin"`
}

// GuardarRequest is the batch-save request body.
type GuardarRequest struct {
	NewTurnos []Turno `json:"newTurnos"`
}
