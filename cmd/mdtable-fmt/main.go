package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mkarren/mdtable/internal/table"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: mdtable-fmt [options] <file.md>

Reformats every markdown table in a document with aligned columns.
Tables that fail validation are reported on stderr and left untouched.

Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Print the reformatted document to stdout
  mdtable-fmt notes.md

  # Rewrite the file in place
  mdtable-fmt -write notes.md
`)
	}

	write := flag.Bool("write", false, "Rewrite the file in place instead of printing to stdout")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	out, problems := formatDocument(string(data))
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "%s:%s\n", args[0], p)
	}

	if *write {
		if err := os.WriteFile(args[0], []byte(out), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Print(out)
}

// formatDocument reformats every valid table in the document. Each
// formatted table occupies the same lines it was parsed from, so the scan
// can keep working off the original text.
func formatDocument(text string) (string, []string) {
	lines := strings.Split(text, "\n")
	var problems []string

	line := 0
	for line < len(lines) {
		tbl := table.Locate(text, line)
		if tbl == nil {
			line++
			continue
		}
		report := table.Validate(tbl)
		if !report.IsValid {
			for _, e := range report.Errors {
				problems = append(problems, fmt.Sprintf("%d: %s", tbl.StartLine+1, e))
			}
			line = tbl.EndLine + 1
			continue
		}
		for _, w := range report.Warnings {
			problems = append(problems, fmt.Sprintf("%d: warning: %s", tbl.StartLine+1, w))
		}
		copy(lines[tbl.StartLine:], strings.Split(table.Format(tbl), "\n"))
		line = tbl.EndLine + 1
	}

	return strings.Join(lines, "\n"), problems
}
