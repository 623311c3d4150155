// Package command models the hospital processor's line commands as typed
// variants and serializes them to the wire grammar. Field order is fixed
// here so individual builders cannot drift.
package command

import (
	"fmt"
	"strings"
)

// Command is one line of the generated artifact.
type Command interface {
	// Line renders the command in the processor's line grammar.
	Line() string
}

// Item pairs a medication with a requested quantity.
type Item struct {
	Med string
	Qty int
}

// Emergency is a triage intake event.
//
// Tests and Meds are optional: a nil slice omits the field entirely,
// an empty non-nil slice renders as "[]".
type Emergency struct {
	PatientID string
	Init      int
	Triage    int
	Stability int
	Tests     []string
	Meds      []string
}

func (c Emergency) Line() string {
	parts := []string{
		fmt.Sprintf("EMERGENCY %s", c.PatientID),
		fmt.Sprintf("init: %d", c.Init),
		fmt.Sprintf("triage: %d", c.Triage),
		fmt.Sprintf("stability: %d", c.Stability),
	}
	if c.Tests != nil {
		parts = append(parts, "tests: "+formatList(c.Tests))
	}
	if c.Meds != nil {
		parts = append(parts, "meds: "+formatList(c.Meds))
	}
	return strings.Join(parts, " ")
}

// Appointment is a scheduled consultation.
type Appointment struct {
	PatientID string
	Init      int
	Scheduled int
	Doctor    string
	Tests     []string // nil omits the field
}

func (c Appointment) Line() string {
	parts := []string{
		fmt.Sprintf("APPOINTMENT %s", c.PatientID),
		fmt.Sprintf("init: %d", c.Init),
		fmt.Sprintf("scheduled: %d", c.Scheduled),
		fmt.Sprintf("doctor: %s", c.Doctor),
	}
	if c.Tests != nil {
		parts = append(parts, "tests: "+formatList(c.Tests))
	}
	return strings.Join(parts, " ")
}

// Surgery is a scheduled operation. Tests and Meds are required fields
// of the grammar and always render.
type Surgery struct {
	PatientID string
	Init      int
	Type      string
	Scheduled int
	Urgency   string
	Tests     []string
	Meds      []string
}

func (c Surgery) Line() string {
	return strings.Join([]string{
		fmt.Sprintf("SURGERY %s", c.PatientID),
		fmt.Sprintf("init: %d", c.Init),
		fmt.Sprintf("type: %s", c.Type),
		fmt.Sprintf("scheduled: %d", c.Scheduled),
		fmt.Sprintf("urgency: %s", c.Urgency),
		"tests: " + formatList(c.Tests),
		"meds: " + formatList(c.Meds),
	}, " ")
}

// LabRequest asks a laboratory to run tests.
type LabRequest struct {
	LabID    string
	Init     int
	Priority string
	Lab      string
	Tests    []string
}

func (c LabRequest) Line() string {
	return strings.Join([]string{
		fmt.Sprintf("LAB_REQUEST %s", c.LabID),
		fmt.Sprintf("init: %d", c.Init),
		fmt.Sprintf("priority: %s", c.Priority),
		fmt.Sprintf("lab: %s", c.Lab),
		"tests: " + formatList(c.Tests),
	}, " ")
}

// PharmacyRequest asks the pharmacy to dispense quantities of medications.
type PharmacyRequest struct {
	RequestID string
	Init      int
	Priority  string
	Items     []Item // nil omits the field
}

func (c PharmacyRequest) Line() string {
	parts := []string{
		fmt.Sprintf("PHARMACY_REQUEST %s", c.RequestID),
		fmt.Sprintf("init: %d", c.Init),
		fmt.Sprintf("priority: %s", c.Priority),
	}
	if c.Items != nil {
		parts = append(parts, "items: "+formatItems(c.Items))
	}
	return strings.Join(parts, " ")
}

// Restock replenishes pharmacy stock for one medication.
type Restock struct {
	Medication string
	Quantity   int
}

func (c Restock) Line() string {
	return fmt.Sprintf("RESTOCK %s quantity: %d", c.Medication, c.Quantity)
}

// Status queries one subsystem. An empty Component models the malformed
// bare "STATUS" query.
type Status struct {
	Component string
}

func (c Status) Line() string {
	if c.Component == "" {
		return "STATUS"
	}
	return "STATUS " + c.Component
}

// Raw is a pre-formed line outside the grammar, used for unknown-command
// probes.
type Raw string

func (c Raw) Line() string {
	return string(c)
}

// formatList renders [a,b,c]; the empty list renders as [].
func formatList(items []string) string {
	return "[" + strings.Join(items, ",") + "]"
}

// formatItems renders [med:qty,med:qty].
func formatItems(items []Item) string {
	pairs := make([]string, len(items))
	for i, item := range items {
		pairs[i] = fmt.Sprintf("%s:%d", item.Med, item.Qty)
	}
	return "[" + strings.Join(pairs, ",") + "]"
}
