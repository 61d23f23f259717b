package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yigit/campusconnect/internal/app/models/dto"
)

// Palette shared with the web stylesheet
var (
	primary     = lipgloss.Color("#1D4ED8")
	accent      = lipgloss.Color("#059669")
	muted       = lipgloss.Color("#6B7280")
	destructive = lipgloss.Color("#DC2626")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primary)
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	tagStyle     = lipgloss.NewStyle().Foreground(accent)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(destructive)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)
)

// printToasts writes one line per toast, styled by variant
func printToasts(w io.Writer, toasts ...dto.Toast) {
	for _, t := range toasts {
		style, mark := successStyle, "✓"
		if t.IsError() {
			style, mark = errorStyle, "✗"
		}
		line := style.Render(mark + " " + t.Title)
		if t.Description != "" {
			line += " " + t.Description
		}
		fmt.Fprintln(w, line)
	}
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

// printField writes "label: value", skipping empty values
func printField(w io.Writer, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(w, "%s %s\n", mutedStyle.Render(label+":"), value)
}

func renderTags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = tagStyle.Render("#" + t)
	}
	return strings.Join(out, " ")
}
