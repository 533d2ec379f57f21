package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-roomassign/pkg/orchestrator"
	"github.com/goliatone/go-roomassign/pkg/roster"
)

func main() {
	rooms := flag.String("rooms", "", "path to the rooms file (JSON or YAML)")
	students := flag.String("students", "", "path to the students file (JSON or YAML)")
	output := flag.String("output-file", "", "output path; format inferred from its extension")
	format := flag.String("format", "", "output format: json, xml, yaml, html, both, or all; writes <output-file><ext> per format")
	force := flag.Bool("force", false, "overwrite existing output files without prompting")
	flag.Parse()

	if *rooms == "" || *students == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *output == "" {
		fmt.Fprintln(os.Stderr, "roomassign-cli: --output-file is required")
		flag.Usage()
		os.Exit(2)
	}

	req := orchestrator.Request{
		Rooms:    roster.SourceFromFile(*rooms),
		Students: roster.SourceFromFile(*students),
		Output:   *output,
	}

	switch strings.ToLower(strings.TrimSpace(*format)) {
	case "":
	case "both":
		req.Formats = []string{"json", "xml"}
	case "all":
		req.Formats = []string{"json", "xml", "yaml", "html"}
	default:
		req.Format = strings.ToLower(strings.TrimSpace(*format))
	}

	if !*force {
		if err := confirmOverwrite(targetPaths(req)); err != nil {
			log.Fatalf("%v", err)
		}
	}

	gen := orchestrator.New()
	if err := gen.Run(context.Background(), req); err != nil {
		log.Fatalf("Failed to assign rooms: %v", err)
	}

	for _, path := range targetPaths(req) {
		fmt.Printf("Assignments written to %s\n", path)
	}
}

// targetPaths mirrors the orchestrator's destination layout: the output
// path as-is in single-format mode, base plus per-format extension in
// multi-format mode.
func targetPaths(req orchestrator.Request) []string {
	if len(req.Formats) == 0 {
		return []string{req.Output}
	}
	paths := make([]string, 0, len(req.Formats))
	for _, format := range req.Formats {
		paths = append(paths, req.Output+"."+format)
	}
	return paths
}

func confirmOverwrite(paths []string) error {
	var existing []string
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	overwrite := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Overwrite %s?", strings.Join(existing, ", ")),
	}
	if err := survey.AskOne(prompt, &overwrite); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return errors.New("aborted")
		}
		return fmt.Errorf("confirm overwrite: %w", err)
	}
	if !overwrite {
		return errors.New("aborted: output files left untouched")
	}
	return nil
}
