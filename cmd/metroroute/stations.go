package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metroroute/transit"
)

func newStationsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stations",
		Short: "List stations and the lines serving them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := root.load()
			if err != nil {
				return err
			}
			printStations(cmd.OutOrStdout(), a.network)

			return nil
		},
	}
}

func printStations(w io.Writer, net *transit.Network) {
	for _, st := range net.Stations() {
		fmt.Fprintf(w, "%s\t%s\n", st.Name, dimStyle.Render(strings.Join(st.Lines, ", ")))
	}
}
