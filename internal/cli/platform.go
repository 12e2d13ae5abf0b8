package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/railnav/railnav/pkg/platform"
)

// platformCommand creates the platform allocation command.
func (c *CLI) platformCommand() *cobra.Command {
	var slots int

	cmd := &cobra.Command{
		Use:   "platform <station>",
		Short: "Simulate platform allocation at a station",
		Long: `Simulate platform allocation at a station: each service departing
from the station claims a platform slot in arrival order, and services
beyond the slot count are held outside the station. Slots default to the
configured per-station capacity.`,
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

			station, err := resolveStation(net, args[0])
			if err != nil {
				return err
			}

			if slots == 0 {
				slots = cfg.Platform.Slots
			}
			if slots < 1 {
				return fmt.Errorf("platform slots must be at least 1, got %d", slots)
			}
			alloc := platform.New(slots)

			board := seedBoard(net)
			var held []int
			for _, t := range board.Upcoming() {
				if t.Origin != station {
					continue
				}
				if err := alloc.Assign(t.ID); err != nil {
					if errors.Is(err, platform.ErrCapacityExceeded) {
						held = append(held, t.ID)
						continue
					}
					return err
				}
				printInfo("Train %d (%s) assigned to a platform", t.ID, t.Name)
			}

			printDetail("%d/%d platform slots in use", alloc.Len(), alloc.Cap())
			for _, id := range held {
				printWarning("Train %d held outside: all platforms occupied", id)
			}

			// Departures free platforms in arrival order.
			for alloc.Len() > 0 {
				id, err := alloc.Release()
				if err != nil {
					return err
				}
				printDetail("Train %d departed, platform freed", id)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&slots, "slots", 0, "platform slots at the station (default from config)")
	return cmd
}
