// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// levelColors are the tokyonight (dark) and tokyonight-day (light) colours for the levels relcat logs at
var levelColors = map[log.Level]lipgloss.AdaptiveColor{
	log.DebugLevel: {Light: "#2e7de9", Dark: "#7aa2f7"},
	log.InfoLevel:  {Light: "#007197", Dark: "#7dcfff"},
	log.WarnLevel:  {Light: "#8c6c3e", Dark: "#e0af68"},
	log.ErrorLevel: {Light: "#f52a65", Dark: "#f7768e"},
}

// DefaultStyles returns the log styles used by the relcat CLI
//
// Release names and paths are bold so a warning points at what it is about
func DefaultStyles() *log.Styles {
	styles := log.DefaultStyles()

	for level, color := range levelColors {
		styles.Levels[level] = styles.Levels[level].Foreground(color)
	}

	subject := lipgloss.NewStyle().Bold(true)
	styles.Keys["release"] = subject
	styles.Values["release"] = subject
	styles.Keys["path"] = subject
	styles.Keys["err"] = lipgloss.NewStyle().Foreground(levelColors[log.ErrorLevel])

	return styles
}
