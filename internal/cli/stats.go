package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCommand creates the network statistics command.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show network statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			net, err := c.loadNetwork(cfg)
			if err != nil {
				return err
			}

			stats := net.Stats()
			fmt.Println(StyleTitle.Render("Network statistics"))
			printKeyValue("stations", fmt.Sprintf("%d", stats.Stations))
			printKeyValue("tracks", fmt.Sprintf("%d", stats.Tracks))
			printKeyValue("avg degree", fmt.Sprintf("%.2f", stats.AvgDegree))
			if stats.Hub >= 0 {
				hub, err := net.Station(stats.Hub)
				if err == nil {
					printKeyValue("busiest", fmt.Sprintf("%s (%d tracks)", hub.Name, stats.HubDegree))
				}
			}
			return nil
		},
	}
}
