package cmd

import (
	"fmt"
	"io"

	"dirscope/pkg/models"

	"github.com/fatih/color"
)

func mark(checked bool) string {
	if checked {
		return color.New(color.FgGreen).Sprint("[x]")
	}
	return "[ ]"
}

// printSelection writes a titled picker listing
func printSelection(w io.Writer, title string, options []models.SelectionOption) {
	fmt.Fprintf(w, "%s (%d):\n", title, len(options))
	for _, option := range options {
		fmt.Fprintf(w, "  %s %s\n", mark(option.Checked), option.Name)
	}
}

// printIgnoreOptions writes ignore options with their kind and default state
func printIgnoreOptions(w io.Writer, options []models.IgnoreOptionDefinition) {
	fmt.Fprintf(w, "Ignore options (%d):\n", len(options))
	for _, option := range options {
		fmt.Fprintf(w, "  %s %s (%s)\n", mark(option.DefaultChecked), option.ID, option.Kind)
	}
}

// printAccessNotice warns about folders that could not be read
func printAccessNotice(w io.Writer, rootPath string, rootDenied, hadDenied bool) {
	switch {
	case rootDenied:
		color.New(color.FgRed, color.Bold).Fprintf(w, "Access denied: %s cannot be read. Try again with sufficient permissions.\n", rootPath)
	case hadDenied:
		color.New(color.FgYellow).Fprintln(w, "Some folders could not be read; they are listed without contents.")
	}
}
