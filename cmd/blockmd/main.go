package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/editorkit/blocktools/blocktool"
	"github.com/editorkit/blocktools/mdcallout"
)

const (
	presetBalanced = "balanced"
	presetStrict   = "strict"
	presetPlain    = "plain"
)

func presetExportConfig(preset string) (mdcallout.ExportConfig, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetBalanced:
		return mdcallout.ExportConfig{}, nil
	case presetStrict:
		return mdcallout.ExportConfig{
			CalloutStyle: mdcallout.CalloutGitHub,
		}, nil
	case presetPlain:
		return mdcallout.ExportConfig{
			CalloutStyle: mdcallout.CalloutNone,
		}, nil
	default:
		return mdcallout.ExportConfig{}, fmt.Errorf("unknown preset %q (allowed: balanced, strict, plain)", preset)
	}
}

func presetImportConfig(preset string) (mdcallout.ImportConfig, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetBalanced:
		return mdcallout.ImportConfig{}, nil
	case presetStrict:
		return mdcallout.ImportConfig{
			CalloutDetection: mdcallout.DetectGitHub,
		}, nil
	case presetPlain:
		return mdcallout.ImportConfig{
			CalloutDetection: mdcallout.DetectNone,
		}, nil
	default:
		return mdcallout.ImportConfig{}, fmt.Errorf("unknown preset %q (allowed: balanced, strict, plain)", preset)
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func printWarnings(warnings []blocktool.Warning) {
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", warning.Type, warning.Message)
	}
}

func main() {
	reverse := flag.Bool("reverse", false, "Convert Markdown to a block document instead")
	preset := flag.String("preset", presetBalanced, "Preset: balanced|strict|plain")
	sanitize := flag.Bool("sanitize", false, "Apply each block's sanitize policy before converting")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: blockmd [options] [input-file|-]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	data, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	if *reverse {
		cfg, err := presetImportConfig(*preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid preset: %v\n", err)
			os.Exit(1)
		}

		importer, err := mdcallout.NewImporter(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
			os.Exit(1)
		}

		result, err := importer.Convert(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting input: %v\n", err)
			os.Exit(1)
		}
		printWarnings(result.Warnings)

		doc := result.Document
		if *sanitize {
			scrubbed, warnings := blocktool.ScrubDocument(doc)
			printWarnings(warnings)
			doc = scrubbed
		}

		pretty, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting block document: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(pretty))
		return
	}

	cfg, err := presetExportConfig(*preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid preset: %v\n", err)
		os.Exit(1)
	}

	exporter, err := mdcallout.NewExporter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	doc, err := blocktool.ParseDocument(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing input: %v\n", err)
		os.Exit(1)
	}

	if *sanitize {
		scrubbed, warnings := blocktool.ScrubDocument(doc)
		printWarnings(warnings)
		doc = scrubbed
	}

	result, err := exporter.Convert(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting input: %v\n", err)
		os.Exit(1)
	}
	printWarnings(result.Warnings)

	fmt.Print(result.Markdown)
}
