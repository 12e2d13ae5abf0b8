package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/railnav/railnav/pkg/railnet"
)

// stationsCommand creates the stations listing command.
func (c *CLI) stationsCommand() *cobra.Command {
	var lineFilter string

	cmd := &cobra.Command{
		Use:   "stations [query]",
		Short: "List stations, optionally filtered by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			net, err := c.loadNetwork(cfg)
			if err != nil {
				return err
			}

			var query string
			if len(args) == 1 {
				query = strings.ToLower(args[0])
			}

			count := 0
			for _, s := range net.Stations() {
				if lineFilter != "" && s.Line != railnet.Line(lineFilter) {
					continue
				}
				if query != "" && !strings.Contains(strings.ToLower(s.Name), query) {
					continue
				}
				label := fmt.Sprintf("%3d  %-16s %s", s.ID, s.Name, s.Line)
				if s.Interchange {
					label += " " + StyleHighlight.Render("(interchange)")
				}
				fmt.Println(label)
				count++
			}
			printDetail("%d stations", count)
			return nil
		},
	}

	cmd.Flags().StringVar(&lineFilter, "line", "", "only show stations on this line (western, central, harbour)")
	return cmd
}
