package models

import (
	"encoding/json"
	"testing"
)

func TestPersonasUnmarshal_Ambosformatos(t *testing.T) {
	var plana Personas
	if err := json.Unmarshal([]byte(`["Ana","Luca"]`), &plana); err != nil {
		t.Fatalf("Unmarshal flat list failed: %v", err)
	}
	if len(plana.Lista) != 2 || plana.Roles != nil {
		t.Errorf("Expected flat list of 2, got %+v", plana)
	}

	var roles Personas
	if err := json.Unmarshal([]byte(`{"barra":["Ana"],"puerta":[]}`), &roles); err != nil {
		t.Fatalf("Unmarshal role map failed: %v", err)
	}
	if roles.Roles == nil || len(roles.Roles["barra"]) != 1 {
		t.Errorf("Expected role map with barra, got %+v", roles)
	}
}

func TestPersonasMarshal_ConservaFormato(t *testing.T) {
	plana, err := json.Marshal(Personas{Lista: []string{"Ana"}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(plana) != `["Ana"]` {
		t.Errorf("Expected flat list output, got %s", plana)
	}

	roles, err := json.Marshal(Personas{Roles: map[string][]string{"barra": {"Ana"}}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(roles) != `{"barra":["Ana"]}` {
		t.Errorf("Expected role map output, got %s", roles)
	}

	vacia, err := json.Marshal(Personas{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(vacia) != `[]` {
		t.Errorf("Expected empty list instead of null, got %s", vacia)
	}
}

func TestPersonasEtiqueta(t *testing.T) {
	plana := Personas{Lista: []string{"Ana", "Luca"}}
	if got := plana.Etiqueta(); got != "Ana, Luca" {
		t.Errorf("Expected 'Ana, Luca', got %q", got)
	}

	roles := Personas{Roles: map[string][]string{
		"puerta": {"Javi"},
		"barra":  {"Ana", "Luca"},
	}}
	if got := roles.Etiqueta(); got != "barra: Ana, Luca | puerta: Javi" {
		t.Errorf("Expected barra before puerta, got %q", got)
	}
}

func TestPersonasVacia(t *testing.T) {
	if !(Personas{}).Vacia() {
		t.Error("Expected zero value to be empty")
	}
	if !(Personas{Roles: map[string][]string{"barra": {}}}).Vacia() {
		t.Error("Expected role map with no names to be empty")
	}
	if (Personas{Lista: []string{"Ana"}}).Vacia() {
		t.Error("Expected non-empty list not to be empty")
	}
}

func TestRegistroUnmarshal_DistingueFormas(t *testing.T) {
	var dia Registro
	if err := json.Unmarshal([]byte(`{"fecha":"2024-06-01","turnos":[]}`), &dia); err != nil {
		t.Fatalf("Unmarshal day record failed: %v", err)
	}
	if dia.Dia == nil || dia.Turno != nil {
		t.Errorf("Expected a Dia record, got %+v", dia)
	}

	var turno Registro
	plano := `{"fecha":"2024-06-01","horaInicio":"18:00","horaFin":"20:00","actividad":"Barra","personas":["Ana"]}`
	if err := json.Unmarshal([]byte(plano), &turno); err != nil {
		t.Fatalf("Unmarshal flat record failed: %v", err)
	}
	if turno.Turno == nil || turno.Dia != nil {
		t.Errorf("Expected a flat Turno record, got %+v", turno)
	}
	if turno.Turno.Fecha != "2024-06-01" || turno.Turno.Actividad != "Barra" {
		t.Errorf("Flat record fields lost: %+v", turno.Turno)
	}
}
