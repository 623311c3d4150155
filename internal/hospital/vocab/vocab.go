// Package vocab holds the hospital processor's domain vocabulary: the
// canonical valid value sets, the matching known-invalid pools used to
// probe the processor's validation paths, and the lab/test compatibility
// map. Everything here is read-only for the process lifetime.
package vocab

// Medications accepted by the pharmacy stock.
var Medications = []string{
	"ANALGESICO_A", "ANTIBIOTICO_B", "ANESTESICO_C", "SEDATIVO_D",
	"ANTIINFLAMATORIO_E", "CARDIOVASCULAR_F", "NEUROLOGICO_G", "ORTOPEDICO_H",
	"HEMOSTATIC_I", "ANTICOAGULANTE_J", "INSULINA_K", "ANALGESICO_FORTE_L",
	"ANTIBIOTICO_FORTE_M", "VITAMINA_N", "SUPLEMENTO_O",
}

// PreOpTest is the clearance test required on every valid surgery.
// It is only reachable through the BOTH lab type or the surgery path.
const PreOpTest = "PREOP"

// Tests by laboratory capability.
var (
	// TestsLab1 are the tests the hematology lab validates.
	TestsLab1 = []string{"HEMO", "GLIC"}

	// TestsLab2 are the tests the biochemistry lab validates.
	TestsLab2 = []string{"COLEST", "RENAL", "HEPAT"}

	// AllTests is the union of both labs plus PREOP.
	AllTests = []string{"HEMO", "GLIC", "COLEST", "RENAL", "HEPAT", PreOpTest}
)

// Specialties double as doctor specialties and surgery types.
var Specialties = []string{"CARDIO", "ORTHO", "NEURO"}

// UrgencyLevels for surgery.
var UrgencyLevels = []string{"LOW", "MEDIUM", "HIGH"}

// Priority sets differ per request type: the lab queue has no HIGH tier.
var (
	PharmacyPriorities = []string{"URGENT", "HIGH", "NORMAL"}
	LabPriorities      = []string{"URGENT", "NORMAL"}
)

// LabTypes identify which laboratory a request targets.
var LabTypes = []string{"LAB1", "LAB2", "BOTH"}

// StatusComponents are the subsystems a STATUS query may address.
var StatusComponents = []string{"ALL", "TRIAGE", "SURGERY", "PHARMACY", "LAB"}

// Known-invalid pools. Each pool is disjoint from its valid counterpart;
// vocab_test.go enforces this as the sets evolve.
var (
	InvalidMedications = []string{"ASPIRINA", "PARACETAMOL", "IBUPROFENO", "INVALID_MED", ""}

	InvalidTests = []string{"XRAY", "MRI", "ECG", "INVALID_TEST", ""}

	InvalidSpecialties = []string{"PLASTIC", "GENERAL", "DENTAL", "INVALID", ""}

	InvalidUrgencyLevels = []string{"CRITICAL", "EXTREME", "NONE", "INVALID", ""}

	// InvalidPriorities is shared by pharmacy and lab probes. HIGH is not
	// listed here because it is valid for pharmacy; lab builders add it as
	// their own extra probe.
	InvalidPriorities = []string{"SUPER", "EXTREME", "NONE", "INVALID", ""}

	InvalidLabTypes = []string{"LAB3", "HEMATOLOGY", "INVALID", ""}

	InvalidStatusComponents = []string{"INVALID", "HOSPITAL", ""}
)

// Malformed identifier pools: wrong prefix, wrong digit count, bare
// prefix, alphabetic, empty.
var (
	InvalidPatientIDs = []string{"P001", "PATIENT001", "001", "ABC", "PAC", "PAC-001", ""}
	InvalidRequestIDs = []string{"R001", "REQUEST001", "001", "REQ", "PAC001", ""}
	InvalidLabIDs     = []string{"L001", "LABORATORY001", "001", "LAB", "PAC001", ""}
)

// UnknownCommands are complete lines outside the processor's grammar,
// used to exercise its unknown-command handling.
var UnknownCommands = []string{
	"ADMIT PAC001",
	"DISCHARGE PAC001",
	"TRANSFER PAC001 TO SURGERY",
	"CANCEL SURGERY PAC001",
	"PATIENT_INFO PAC001",
	"LIST_PATIENTS",
	"INVALID_COMMAND",
	"RANDOM GARBAGE TEXT",
	"123456",
	"",
}

// TestsFor returns the tests the given lab type validates. BOTH covers
// every test including PREOP; unknown lab types fall back to the full
// pool so callers never receive an empty domain.
func TestsFor(labType string) []string {
	switch labType {
	case "LAB1":
		return TestsLab1
	case "LAB2":
		return TestsLab2
	default:
		return AllTests
	}
}

// IsValidTestFor reports whether a single test belongs to the
// compatibility set of the given lab type.
func IsValidTestFor(labType, test string) bool {
	for _, t := range TestsFor(labType) {
		if t == test {
			return true
		}
	}
	return false
}
