package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mrsinham/hospforge/cmd/hospforge/wizard"
	"github.com/mrsinham/hospforge/internal/hospital"
	"github.com/mrsinham/hospforge/internal/hospital/scenario"
	"github.com/mrsinham/hospforge/internal/hospital/synth"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Check for wizard subcommand (before flag.Parse)
	if len(os.Args) > 1 && os.Args[1] == "wizard" {
		// Extract --from flag if present
		var fromConfig string
		for i, arg := range os.Args[2:] {
			if arg == "--from" && i+3 < len(os.Args) {
				fromConfig = os.Args[i+3]
			}
		}
		if err := wizard.Run(fromConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Define command-line flags
	scenarioName := flag.String("scenario", "", "Scenario to generate: triage, appointments, surgery, labpharm, depletion, chaos (required)")
	numCommands := flag.Int("num-commands", 0, "Number of commands to generate (default: scenario-specific)")
	output := flag.String("output", "", "Output file path (default: commands_<scenario>_<seed>.txt, seed omitted when auto-derived)")
	outputDir := flag.String("output-dir", ".", "Output directory for the auto-named file")
	seed := flag.Int64("seed", 0, "Seed for reproducibility (optional, auto-generated if not specified)")

	// Validity options
	mode := flag.String("mode", "mixed", "Validity mode: strict (only valid commands), mixed (probabilistic corruption)")
	listInvalidRate := flag.Float64("list-invalid-rate", 0, fmt.Sprintf("Chance a list field blends invalid values (default: %g)", synth.DefaultListInvalidRate))
	fieldInvalidRate := flag.Float64("field-invalid-rate", 0, fmt.Sprintf("Chance a scalar field turns invalid (default: %g)", synth.DefaultFieldInvalidRate))

	// Scenario shape options
	chaos := flag.Float64("chaos", 0, "Pressure bias in [0,1]: tighter arrivals, more urgent commands")
	overlapRatio := flag.Float64("overlap-ratio", 0, "Chance a scheduling command reuses an assigned slot (default: 0.4)")
	emergencyRatio := flag.Float64("emergency-ratio", 0, "Emergency share of the triage mix (default: 0.65)")

	// Interactive wizard and config options
	interactive := flag.Bool("interactive", false, "Launch interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := flag.String("config", "", "Load configuration from YAML file")
	saveConfig := flag.String("save-config", "", "Save configuration to YAML file (after generation)")

	quiet := flag.Bool("quiet", false, "Suppress progress output")
	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	// Informational flags win over every other action
	if *showVersion {
		fmt.Printf("hospforge %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	// Handle interactive mode
	if *interactive {
		if err := wizard.Run(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Handle config file loading
	if *configFile != "" {
		state, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		opts, err := wizard.ToOptions(state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting config: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("hospforge")
		fmt.Println("=========")
		fmt.Printf("Loading config from %s\n\n", *configFile)

		res, err := hospital.Generate(opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating commands: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("\n✓ Generation complete!")
		fmt.Printf("  Artifact: %s (%d commands)\n", res.Path, res.NumCommands)
		os.Exit(0)
	}

	// Validate required arguments
	if *scenarioName == "" {
		fmt.Fprintf(os.Stderr, "Error: --scenario is required\n")
		printUsage()
		os.Exit(1)
	}

	scenarioLower := strings.ToLower(*scenarioName)
	if !scenario.IsValid(scenarioLower) {
		fmt.Fprintf(os.Stderr, "Error: invalid scenario %q, valid options: %v\n", *scenarioName, scenario.AllScenarios())
		os.Exit(1)
	}

	parsedMode, err := synth.ParseMode(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *numCommands < 0 {
		fmt.Fprintf(os.Stderr, "Error: --num-commands must be >= 0\n")
		printUsage()
		os.Exit(1)
	}

	// Create generator options
	opts := hospital.Options{
		Scenario:         scenario.Scenario(scenarioLower),
		NumCommands:      *numCommands,
		OutputDir:        *outputDir,
		OutputPath:       *output,
		Seed:             *seed,
		Mode:             parsedMode,
		ListInvalidRate:  *listInvalidRate,
		FieldInvalidRate: *fieldInvalidRate,
		Chaos:            *chaos,
		OverlapRatio:     *overlapRatio,
		EmergencyRatio:   *emergencyRatio,
		Quiet:            *quiet,
	}

	if !*quiet {
		fmt.Println("hospforge")
		fmt.Println("=========")
		fmt.Println()
	}

	res, err := hospital.Generate(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating commands: %v\n", err)
		os.Exit(1)
	}

	// Save config if requested
	if *saveConfig != "" {
		state := wizard.FromOptions(opts)
		if err := wizard.SaveToYAML(state, *saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
		} else if !*quiet {
			fmt.Printf("Configuration saved to %s\n", *saveConfig)
		}
	}

	if !*quiet {
		fmt.Println("\n✓ Generation complete!")
		fmt.Printf("  Artifact: %s (%d commands, seed %d)\n", res.Path, res.NumCommands, res.Seed)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  hospforge --scenario <NAME> [options]")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}

func printHelp() {
	fmt.Println("hospforge")
	fmt.Println("=========")
	fmt.Println()
	fmt.Println("Generate hospital command streams for stress-testing operations processors.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  hospforge --scenario <NAME> [options]")
	fmt.Println("  hospforge wizard")
	fmt.Println()
	fmt.Println("Required arguments:")
	fmt.Println("  --scenario <NAME>     Scenario to generate:")
	fmt.Println("                        triage       - emergency flood with routine appointments mixed in")
	fmt.Println("                        appointments - booking stream with deliberate slot collisions")
	fmt.Println("                        surgery      - operations competing for shared slots by urgency")
	fmt.Println("                        labpharm     - shuffled laboratory and pharmacy request mix")
	fmt.Println("                        depletion    - drain pharmacy stock, restock, verify recovery")
	fmt.Println("                        chaos        - every command type in one disordered stream")
	fmt.Println()
	fmt.Println("Optional arguments:")
	fmt.Println("  --num-commands <N>    Number of commands (default: scenario-specific)")
	fmt.Println("  --output <FILE>       Output file path (default: commands_<scenario>_<seed>.txt,")
	fmt.Println("                        seed omitted from the name when auto-derived)")
	fmt.Println("  --output-dir <DIR>    Directory for the auto-named file (default: '.')")
	fmt.Println("  --seed <N>            Seed for reproducibility (auto-generated if not specified)")
	fmt.Println()
	fmt.Println("Validity options:")
	fmt.Println("  --mode <MODE>         strict = only valid commands, mixed = probabilistic")
	fmt.Println("                        corruption of fields and lists (default: mixed)")
	fmt.Printf("  --list-invalid-rate <R>\n")
	fmt.Printf("                        Chance a list field blends invalid values (default: %g)\n", synth.DefaultListInvalidRate)
	fmt.Printf("  --field-invalid-rate <R>\n")
	fmt.Printf("                        Chance a scalar field turns invalid (default: %g)\n", synth.DefaultFieldInvalidRate)
	fmt.Println()
	fmt.Println("Scenario shape options:")
	fmt.Println("  --chaos <R>           Pressure bias in [0,1]: compresses inter-arrival gaps and")
	fmt.Println("                        skews mixes toward urgent commands (default: 0)")
	fmt.Println("  --overlap-ratio <R>   Chance a scheduling command reuses an already assigned")
	fmt.Println("                        slot (default: 0.4)")
	fmt.Println("  --emergency-ratio <R> Emergency share of the triage mix (default: 0.65)")
	fmt.Println()
	fmt.Println("Config options:")
	fmt.Println("  --config <FILE>       Load configuration from YAML file")
	fmt.Println("  --save-config <FILE>  Save configuration to YAML file after generation")
	fmt.Println("  -i, --interactive     Launch interactive wizard")
	fmt.Println()
	fmt.Println("  --quiet               Suppress progress output")
	fmt.Println("  --help                Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Flood the triage queue with 60 mixed-validity commands")
	fmt.Println("  hospforge --scenario triage")
	fmt.Println()
	fmt.Println("  # Strictly valid appointment stream with heavy slot reuse")
	fmt.Println("  hospforge --scenario appointments --mode strict --overlap-ratio 0.8")
	fmt.Println()
	fmt.Println("  # Reproducible chaos run")
	fmt.Println("  hospforge --scenario chaos --num-commands 500 --chaos 0.9 --seed 42")
	fmt.Println()
	fmt.Println("  # Pharmacy depletion cycle into a fixed file")
	fmt.Println("  hospforge --scenario depletion --output depletion.txt")
	fmt.Println()
	fmt.Println("  # Save the run's settings for replay")
	fmt.Println("  hospforge --scenario surgery --seed 7 --save-config surgery.yaml")
	fmt.Println("  hospforge --config surgery.yaml")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Println("  One command per line in the processor's grammar, for example:")
	fmt.Println("    EMERGENCY PAC001 init: 0 triage: 3 stability: 250 tests: [HEMO] meds: [INSULINA_K]")
	fmt.Println("    SURGERY PAC002 init: 5 type: CARDIO scheduled: 150 urgency: HIGH tests: [PREOP] meds: [ANESTESICO_C]")
	fmt.Println()
	fmt.Println("Reproducibility:")
	fmt.Println("  Using the same seed ensures an identical command stream across runs.")
	fmt.Println("  The same output path also derives a consistent seed.")
}
