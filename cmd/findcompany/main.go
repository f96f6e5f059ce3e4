package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/Van0SS/rag-challenge-2/internal/app"
	"github.com/Van0SS/rag-challenge-2/internal/metadata"
)

const maxCandidates = 5

func main() {
	pdfMeta := flag.String("pdf-meta", "", "path to the PDF metadata JSON file (overrides PDF_META)")
	fuzzy := flag.Bool("fuzzy", false, "enable fuzzy matching for company names")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: findcompany [-pdf-meta path] [-fuzzy] <company name>")
		os.Exit(2)
	}
	name := flag.Arg(0)

	deps, err := app.BuildLookup(app.Overrides{PDFMetaPath: *pdfMeta})
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}

	if desc, ok := deps.Meta.Exact(name); ok {
		fmt.Printf("Found exact match for %q:\n", name)
		printDescriptor(desc)
		return
	}

	if !*fuzzy {
		fmt.Printf("No exact match found for %q. Use -fuzzy to enable fuzzy matching.\n", name)
		return
	}

	fmt.Printf("No exact match found for %q. Trying fuzzy matching...\n", name)
	matches := deps.Meta.Matches(name)
	if len(matches) == 0 {
		fmt.Printf("No matches found for %q.\n", name)
		return
	}

	fmt.Printf("Found %d potential matches:\n", len(matches))
	if len(matches) > maxCandidates {
		matches = matches[:maxCandidates]
	}
	for i, m := range matches {
		fmt.Printf("\n%d. %q (score: %d):\n", i+1, m.Descriptor.CompanyName, m.Score)
		fmt.Printf("   SHA1: %s\n", m.Descriptor.SHA1)
		fmt.Printf("   Industry: %s\n", m.Descriptor.MajorIndustry)
	}

	if err := selectMatch(matches); err != nil {
		deps.Log.Error("interactive selection failed", "err", err)
		os.Exit(1)
	}
}

// selectMatch asks which candidate to expand until a valid choice or quit.
func selectMatch(matches []metadata.Match) error {
	rl, err := readline.New("\nEnter the number of the match to show full details (or 'q' to quit): ")
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			// Interrupt or EOF ends the session.
			return nil
		}
		choice := strings.TrimSpace(line)
		if strings.EqualFold(choice, "q") {
			return nil
		}
		n, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Println("Invalid input. Please enter a number or 'q'.")
			continue
		}
		if n < 1 || n > len(matches) {
			fmt.Println("Invalid choice. Please try again.")
			continue
		}
		fmt.Println("\nFull metadata:")
		printDescriptor(matches[n-1].Descriptor)
		return nil
	}
}

func printDescriptor(desc metadata.Descriptor) {
	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode descriptor: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
