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
		fmt.Fprintf(os.Stderr, `Usage: mdtable-csv [options] <input> [output]

Converts between markdown tables and CSV.

Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Arguments:
  input    Markdown file (default) or CSV file (with -from-csv)
  output   Output path (optional, defaults to stdout)

Examples:
  # Extract the first table of a markdown file as CSV
  mdtable-csv notes.md table.csv

  # Extract the table at a specific line
  mdtable-csv -line 42 notes.md

  # Turn a CSV file into a markdown table
  mdtable-csv -from-csv data.csv table.md
`)
	}

	fromCSV := flag.Bool("from-csv", false, "Convert CSV input to a markdown table")
	line := flag.Int("line", -1, "Line of the table to extract (default: first table)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	var out string
	if *fromCSV {
		out, err = csvToMarkdown(string(data))
	} else {
		out, err = markdownToCSV(string(data), *line)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) > 1 {
		if err := os.WriteFile(args[1], []byte(out), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Print(out)
}

func csvToMarkdown(data string) (string, error) {
	tbl, err := table.ImportCSV(data)
	if err != nil {
		return "", err
	}
	return table.Format(tbl) + "\n", nil
}

func markdownToCSV(text string, line int) (string, error) {
	var tbl *table.Table
	if line >= 0 {
		tbl = table.Locate(text, line)
		if tbl == nil {
			return "", fmt.Errorf("no table at line %d", line)
		}
	} else {
		tbl = firstTable(text)
		if tbl == nil {
			return "", fmt.Errorf("no table found in input")
		}
	}
	return table.ExportCSV(tbl)
}

// firstTable scans the document top to bottom for the first parseable
// table.
func firstTable(text string) *table.Table {
	lineCount := strings.Count(text, "\n") + 1
	for line := 0; line < lineCount; line++ {
		if tbl := table.Locate(text, line); tbl != nil {
			return tbl
		}
	}
	return nil
}
