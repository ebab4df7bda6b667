package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	priorityHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	priorityMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	priorityLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	countdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	expiredStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	headerStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// StylePriority colors a priority label.
func StylePriority(label string) string {
	if !ansiEnabled() {
		return label
	}
	switch label {
	case "high":
		return priorityHighStyle.Render(label)
	case "low":
		return priorityLowStyle.Render(label)
	default:
		return priorityMediumStyle.Render(label)
	}
}

// StyleDone colors a completion marker.
func StyleDone(label string) string {
	if !ansiEnabled() {
		return label
	}
	return completedStyle.Render(label)
}

// StyleCountdown colors a recovery countdown, with expired entries
// rendered in the warning style.
func StyleCountdown(label string, expired bool) string {
	if !ansiEnabled() {
		return label
	}
	if expired {
		return expiredStyle.Render(label)
	}
	return countdownStyle.Render(label)
}

// StyleHeader renders a section heading.
func StyleHeader(label string) string {
	if !ansiEnabled() {
		return label
	}
	return headerStyle.Render(label)
}

// StyleMuted renders secondary text.
func StyleMuted(label string) string {
	if !ansiEnabled() {
		return label
	}
	return mutedStyle.Render(label)
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
