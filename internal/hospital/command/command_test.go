package command

import (
	"strings"
	"testing"
)

func TestEmergency_Line(t *testing.T) {
	cmd := Emergency{
		PatientID: "PAC001",
		Init:      10,
		Triage:    3,
		Stability: 250,
		Tests:     []string{"HEMO", "GLIC"},
		Meds:      []string{"INSULINA_K"},
	}
	want := "EMERGENCY PAC001 init: 10 triage: 3 stability: 250 tests: [HEMO,GLIC] meds: [INSULINA_K]"
	if got := cmd.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestEmergency_Line_OptionalFields(t *testing.T) {
	// nil omits the field, empty non-nil renders [].
	omitted := Emergency{PatientID: "PAC002", Init: 0, Triage: 1, Stability: 100}
	if got := omitted.Line(); got != "EMERGENCY PAC002 init: 0 triage: 1 stability: 100" {
		t.Errorf("nil lists should omit fields, got %q", got)
	}

	empty := Emergency{PatientID: "PAC003", Init: 5, Triage: 2, Stability: 150, Tests: []string{}, Meds: []string{}}
	want := "EMERGENCY PAC003 init: 5 triage: 2 stability: 150 tests: [] meds: []"
	if got := empty.Line(); got != want {
		t.Errorf("empty lists should render [], got %q", got)
	}
}

func TestAppointment_Line(t *testing.T) {
	cmd := Appointment{
		PatientID: "PAC010",
		Init:      7,
		Scheduled: 120,
		Doctor:    "CARDIO",
		Tests:     []string{"COLEST"},
	}
	want := "APPOINTMENT PAC010 init: 7 scheduled: 120 doctor: CARDIO tests: [COLEST]"
	if got := cmd.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestSurgery_Line(t *testing.T) {
	cmd := Surgery{
		PatientID: "PAC020",
		Init:      15,
		Type:      "NEURO",
		Scheduled: 200,
		Urgency:   "HIGH",
		Tests:     []string{"HEMO", "PREOP"},
		Meds:      []string{"ANESTESICO_C", "SEDATIVO_D"},
	}
	want := "SURGERY PAC020 init: 15 type: NEURO scheduled: 200 urgency: HIGH tests: [HEMO,PREOP] meds: [ANESTESICO_C,SEDATIVO_D]"
	if got := cmd.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestLabRequest_Line(t *testing.T) {
	cmd := LabRequest{
		LabID:    "LAB005",
		Init:     3,
		Priority: "URGENT",
		Lab:      "LAB2",
		Tests:    []string{"RENAL", "HEPAT"},
	}
	want := "LAB_REQUEST LAB005 init: 3 priority: URGENT lab: LAB2 tests: [RENAL,HEPAT]"
	if got := cmd.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestPharmacyRequest_Line(t *testing.T) {
	cmd := PharmacyRequest{
		RequestID: "REQ007",
		Init:      9,
		Priority:  "NORMAL",
		Items:     []Item{{Med: "VITAMINA_N", Qty: 3}, {Med: "INSULINA_K", Qty: 5}},
	}
	want := "PHARMACY_REQUEST REQ007 init: 9 priority: NORMAL items: [VITAMINA_N:3,INSULINA_K:5]"
	if got := cmd.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestRestockAndStatus_Line(t *testing.T) {
	restock := Restock{Medication: "ANALGESICO_A", Quantity: 50}
	if got := restock.Line(); got != "RESTOCK ANALGESICO_A quantity: 50" {
		t.Errorf("Restock Line() = %q", got)
	}

	status := Status{Component: "PHARMACY"}
	if got := status.Line(); got != "STATUS PHARMACY" {
		t.Errorf("Status Line() = %q", got)
	}

	// The bare malformed query keeps its field position empty.
	malformed := Status{}
	if got := malformed.Line(); got != "STATUS" {
		t.Errorf("empty component should render bare STATUS, got %q", got)
	}
}

func TestRaw_Line(t *testing.T) {
	if got := Raw("RANDOM GARBAGE TEXT").Line(); got != "RANDOM GARBAGE TEXT" {
		t.Errorf("Raw Line() = %q", got)
	}
}

// Re-parsing a line by the documented grammar must recover the field
// values supplied to the variant.
func TestLine_RoundTrip(t *testing.T) {
	cmd := Appointment{
		PatientID: "PAC042",
		Init:      12,
		Scheduled: 90,
		Doctor:    "ORTHO",
		Tests:     []string{"HEMO", "GLIC"},
	}
	fields := strings.Fields(cmd.Line())

	want := []string{"APPOINTMENT", "PAC042", "init:", "12", "scheduled:", "90", "doctor:", "ORTHO", "tests:", "[HEMO,GLIC]"}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d: %v", len(fields), len(want), fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, fields[i], want[i])
		}
	}

	tests := strings.Split(strings.Trim(fields[9], "[]"), ",")
	if len(tests) != 2 || tests[0] != "HEMO" || tests[1] != "GLIC" {
		t.Errorf("test list did not round-trip: %v", tests)
	}
}
