package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metroroute/itinerary"
	"github.com/katalvlaran/metroroute/planner"
	"github.com/katalvlaran/metroroute/transit"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	walkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	totalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

func newRouteCmd(root *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "route <origin> <destination>",
		Short: "Plan one trip and print it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.load()
			if err != nil {
				return err
			}
			it, err := a.planner.Plan(cmd.Context(), planner.Query{Origin: args[0], Destination: args[1]})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(it)
			}
			renderItinerary(out, it, a.network)

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the itinerary as JSON")

	return cmd
}

// renderItinerary prints it for a terminal, coloring each leg with its line color.
func renderItinerary(w io.Writer, it *itinerary.Itinerary, net *transit.Network) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s → %s", it.Origin, it.Destination)))

	switch it.Mode {
	case itinerary.ModeStay:
		fmt.Fprintln(w, dimStyle.Render("origin and destination are the same station"))
		return
	case itinerary.ModeWalk:
		fmt.Fprintln(w, walkStyle.Render(fmt.Sprintf("walking is faster: %.2f min", it.TotalMinutes)))
		if it.RailOnlyMinutes != nil {
			fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("by metro: %.2f min", *it.RailOnlyMinutes)))
		}
		return
	}

	for _, s := range it.Steps {
		label := s.Kind
		if s.Line != "" {
			label = s.Line
		}
		style := dimStyle
		if l, ok := net.Line(s.Line); ok && l.Color != "" {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(l.Color)).Bold(true)
		} else if s.Kind == itinerary.KindWalk {
			style = walkStyle
		}
		fmt.Fprintf(w, "  %s %s → %s %s\n",
			style.Render(fmt.Sprintf("[%s]", label)), s.From, s.To,
			dimStyle.Render(fmt.Sprintf("%.2f min", s.Minutes)))
	}
	if len(it.Instructions) > 0 {
		fmt.Fprintln(w, "  "+strings.Join(it.Instructions, "; "))
	}
	fmt.Fprintln(w, totalStyle.Render(fmt.Sprintf("total %.2f min", it.TotalMinutes)),
		dimStyle.Render(fmt.Sprintf("(walking %.2f min)", it.WalkingMinutes)))
}
