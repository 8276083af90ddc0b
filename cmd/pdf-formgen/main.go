package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/a3tai/pdf-formgen/internal/config"
	"github.com/a3tai/pdf-formgen/internal/fixtures"
	"github.com/a3tai/pdf-formgen/internal/pdf/inspect"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.SetOutput(os.Stderr)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating PDFs: %v\n", err)
		os.Exit(1)
	}
}

// run generates all fixture documents and optionally verifies them.
func run(cfg *config.Config) error {
	fmt.Println("Generating test PDF forms...")

	generator := fixtures.NewGenerator()
	results, err := generator.GenerateAll(cfg.OutputDir)
	if err != nil {
		return err
	}

	if cfg.Verify {
		if err := verifyResults(results); err != nil {
			return err
		}
	}

	printSummary(cfg.OutputDir)
	return nil
}

// verifyResults re-opens each generated file and confirms it parses and
// carries form fields.
func verifyResults(results []fixtures.Result) error {
	validator := inspect.NewValidator(0)
	extractor := inspect.NewExtractor(false)

	for _, result := range results {
		if result.Err != nil {
			continue
		}
		if err := validator.ValidateFile(result.Path); err != nil {
			return fmt.Errorf("verification failed for %s: %w", result.File, err)
		}
		fields, err := extractor.ExtractFile(result.Path)
		if err != nil {
			return fmt.Errorf("verification failed for %s: %w", result.File, err)
		}
		if len(fields) == 0 {
			return fmt.Errorf("verification failed for %s: no form fields found", result.File)
		}
		fmt.Printf("Verified: %s (%d form fields)\n", result.File, len(fields))
	}

	return nil
}

// printSummary prints the closing report after successful generation.
func printSummary(dir string) {
	fmt.Printf("\nAll test forms have been generated in: %s\n", dir)
	fmt.Println("\nGenerated PDFs:")
	fmt.Println("- basic-form.pdf: Simple form with basic field types")
	fmt.Println("- text-fields.pdf: Various text field configurations")
	fmt.Println("- choice-fields.pdf: Dropdowns, radio buttons, and checkboxes")
	fmt.Println("- mixed-form.pdf: Realistic form with mixed field types")
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("pdf-formgen\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
