package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fll-tools/teamgen/internal/config"
	"github.com/fll-tools/teamgen/internal/errors"
	"github.com/fll-tools/teamgen/pkg/toast"
)

// pixelsPerColumn approximates a terminal cell width in CSS pixels.
const pixelsPerColumn = 8

func previewCmd(a *app) *cobra.Command {
	var (
		message  string
		category string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw a notification in the terminal",
		Example: `  teamgen preview --message "Saved!" --category success
  teamgen preview -m "Could not reach the generator" --category error`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := toast.Category(category)
			if !cat.Valid() {
				return errors.New("E200").WithDetailf("%q", category)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, previewBox(a.cfg.Toast, message, cat))
			info(out, "%s notification, hidden after %s", cat, a.cfg.Toast.Duration)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "Team name generated!", "Notification text")
	cmd.Flags().StringVar(&category, "category", string(toast.CategoryInfo), "Notification category: info, success, error")

	return cmd
}

// previewBox renders message the way the stylesheet paints it: white bold
// text on the category color, capped at the configured max width.
func previewBox(t config.Toast, message string, category toast.Category) string {
	color := lipgloss.Color(t.Colors.Color(category))
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(color).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color)

	if cols := columns(t.MaxWidth); cols > 0 && lipgloss.Width(message)+4 > cols {
		style = style.Width(cols)
	}
	return style.Render(message)
}

// columns converts a CSS pixel length to terminal columns. Other units
// yield 0.
func columns(length string) int {
	px, ok := strings.CutSuffix(strings.TrimSpace(length), "px")
	if !ok {
		return 0
	}
	n, err := strconv.ParseFloat(px, 64)
	if err != nil || n <= 0 {
		return 0
	}
	return int(n) / pixelsPerColumn
}
