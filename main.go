package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Sandunbit/hotel-maintenance-agent/internal/api"
	"github.com/Sandunbit/hotel-maintenance-agent/internal/extractor"
	"github.com/Sandunbit/hotel-maintenance-agent/internal/models"
	"github.com/Sandunbit/hotel-maintenance-agent/internal/parser"
	"github.com/Sandunbit/hotel-maintenance-agent/internal/report"
	"github.com/Sandunbit/hotel-maintenance-agent/internal/rules"
	"github.com/Sandunbit/hotel-maintenance-agent/internal/store"
	"github.com/Sandunbit/hotel-maintenance-agent/internal/writer"
)

const version = "1.0.0"

func main() {
	modeFlag := flag.String("mode", "auto", "Input mode: jobs, materials, duplicates (auto-detected if omitted)")
	rulesFlag := flag.String("rules", "", "Path to YAML rule table (built-in table if omitted)")
	storeFlag := flag.String("store", "jobs.csv", "Job log path: a .csv file or a .db SQLite database")
	outputFlag := flag.String("output", "", "Output CSV file path for materials/duplicates reports")
	serveFlag := flag.Bool("serve", false, "Start the HTTP API instead of processing files")
	addrFlag := flag.String("addr", ":8080", "Listen address for --serve")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Hotel Maintenance Agent

Extracts structured job records from pasted maintenance-ticket text,
derives the consumable materials they require, and filters duplicate
debit amounts out of bank-statement text.

Usage:
  hotel-maintenance-agent [flags] <input.txt> [input2.txt ...]
  hotel-maintenance-agent --serve [--addr=:8080]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Extract jobs from a pasted ticket dump and append them to the log
  hotel-maintenance-agent --mode=jobs tickets.txt

  # Materials shopping list for a pasted job list
  hotel-maintenance-agent --mode=materials --output=materials.csv tickets.txt

  # Duplicate debits from statement text or a statement PDF
  hotel-maintenance-agent --mode=duplicates statement.txt
  hotel-maintenance-agent --mode=duplicates statement.pdf

  # Run the HTTP API backed by SQLite
  hotel-maintenance-agent --serve --store=jobs.db
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("hotel-maintenance-agent v%s\n", version)
		os.Exit(0)
	}

	table, err := loadRules(*rulesFlag)
	if err != nil {
		fatalf("Rule table error: %v\n", err)
	}

	if *serveFlag {
		recStore, err := openStore(*storeFlag)
		if err != nil {
			fatalf("Store error: %v\n", err)
		}
		defer recStore.Close()

		app := api.NewApp(&api.Server{Store: recStore, Rules: table})
		fmt.Printf("Listening on %s (job log: %s)\n", *addrFlag, *storeFlag)
		if err := app.Listen(*addrFlag); err != nil {
			fatalf("Server error: %v\n", err)
		}
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(inputPath, *modeFlag, *storeFlag, *outputFlag, table); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(inputPath, mode, storePath, outputPath string, table *rules.Table) error {
	text, err := readInput(inputPath)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to process in %s", inputPath)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	if mode == "auto" {
		switch parser.DetectKind(text) {
		case models.InputStatement:
			mode = "duplicates"
		default:
			mode = "jobs"
		}
		fmt.Printf("  Auto-detected input: %s\n", mode)
	}

	switch mode {
	case "jobs":
		return processJobs(text, storePath)
	case "materials":
		return processMaterials(text, outputPath, inputPath, table)
	case "duplicates":
		return processDuplicates(text, outputPath, inputPath)
	default:
		return fmt.Errorf("unknown mode %q. Supported: jobs, materials, duplicates", mode)
	}
}

func processJobs(text, storePath string) error {
	result := parser.ExtractJobs(text, time.Now())
	fmt.Printf("  Found %d job(s), skipped %d line(s)\n", len(result.Jobs), result.Skipped)
	if len(result.Jobs) == 0 {
		fmt.Println("  Warning: no valid job entries found.")
		return nil
	}

	recStore, err := openStore(storePath)
	if err != nil {
		return err
	}
	defer recStore.Close()

	if err := recStore.Append(context.Background(), result.Jobs); err != nil {
		return fmt.Errorf("append to job log: %w", err)
	}

	for _, j := range result.Jobs {
		fmt.Printf("  Room %-8s %s\n", j.Room, j.Description)
	}
	fmt.Printf("  Appended to %s\n", storePath)
	return nil
}

func processMaterials(text, outputPath, inputPath string, table *rules.Table) error {
	result := parser.ExtractJobs(text, time.Now())
	fmt.Printf("  Found %d job(s), skipped %d line(s)\n", len(result.Jobs), result.Skipped)
	if len(result.Jobs) == 0 {
		fmt.Println("  Warning: no valid job entries found.")
		return nil
	}

	needed := table.MaterialsNeeded(report.Descriptions(result.Jobs))
	if len(needed) == 0 {
		fmt.Println("  No materials matched the job list.")
		return nil
	}

	items := make([]string, 0, len(needed))
	for item := range needed {
		items = append(items, item)
	}
	sort.Strings(items)
	for _, item := range items {
		fmt.Printf("  %-24s %d\n", item, needed[item])
	}

	return writeReport(outputPath, inputPath, "-materials", func(buf *bytes.Buffer) error {
		w := &writer.CSVWriter{IncludeHeader: true}
		return w.WriteMaterials(buf, needed)
	})
}

func processDuplicates(text, outputPath, inputPath string) error {
	result := parser.ExtractEntries(text)
	fmt.Printf("  Found %d debit entr(ies), skipped %d line(s)\n", len(result.Entries), result.Skipped)
	if len(result.Entries) == 0 {
		fmt.Println("  Warning: no valid debit entries found.")
		return nil
	}

	groups := report.GroupDuplicates(result.Entries)
	if len(groups) == 0 {
		fmt.Println("  No duplicate debit amounts found.")
		return nil
	}

	for _, g := range groups {
		fmt.Printf("  %.2f x%d\n", g.Amount, len(g.Entries))
		for _, e := range g.Entries {
			fmt.Printf("    %s\n", e.Counterparty)
		}
	}

	return writeReport(outputPath, inputPath, "-duplicates", func(buf *bytes.Buffer) error {
		w := &writer.CSVWriter{IncludeHeader: true}
		return w.WriteDuplicates(buf, groups)
	})
}

// writeReport renders a report to outputPath, defaulting to the input
// filename with a suffix and .csv extension.
func writeReport(outputPath, inputPath, suffix string, render func(*bytes.Buffer) error) error {
	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + suffix + ".csv"
	}

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("CSV generation failed: %w", err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("CSV write failed: %w", err)
	}
	fmt.Printf("  Output: %s\n", outPath)
	return nil
}

// readInput loads pasted text from a file, extracting first when the
// input is a statement PDF.
func readInput(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("input file not found: %s", path)
	}

	if strings.ToLower(filepath.Ext(path)) == ".pdf" {
		text, err := extractor.ExtractTextCombined(path)
		if err != nil {
			return "", fmt.Errorf("PDF extraction failed: %w", err)
		}
		return text, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func loadRules(path string) (*rules.Table, error) {
	if path == "" {
		return rules.DefaultTable(), nil
	}
	return rules.LoadTable(path)
}

// openStore picks the store implementation from the path extension:
// .db/.sqlite opens SQLite, anything else is the flat CSV log.
func openStore(path string) (store.RecordStore, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return store.OpenSQLite(path)
	default:
		return store.NewCSVStore(path), nil
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
