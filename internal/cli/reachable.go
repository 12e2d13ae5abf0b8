package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// reachableCommand creates the reachability query command.
func (c *CLI) reachableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reachable <station>",
		Short: "List every station reachable from a starting point",
		Long: `List every station reachable from a starting point over unblocked
tracks, in breadth-first order. Useful after reporting track failures to
see which parts of the network are cut off.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			net, err := c.loadNetwork(cfg)
			if err != nil {
				return err
			}

			start, err := resolveStation(net, args[0])
			if err != nil {
				return err
			}

			ids, err := net.Reachable(start)
			if err != nil {
				return err
			}

			for _, id := range ids {
				s, err := net.Station(id)
				if err != nil {
					continue
				}
				fmt.Printf("%3d  %-16s %s\n", s.ID, s.Name, StyleDim.Render(string(s.Line)))
			}
			printDetail("%d of %d stations reachable", len(ids), net.StationCount())

			if len(ids) < net.StationCount() {
				printWarning("%d stations are cut off", net.StationCount()-len(ids))
			}
			return nil
		},
	}
}
