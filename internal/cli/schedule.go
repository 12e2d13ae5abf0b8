package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/railnav/railnav/pkg/railnet"
	"github.com/railnav/railnav/pkg/schedule"
)

// scheduleCommand creates the departure board command.
func (c *CLI) scheduleCommand() *cobra.Command {
	var peak bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the departure board",
		Long: `Show the departure board in departure-time order.

With --peak, extra peak-hour services are injected from the busiest
terminals before listing, mirroring what operations does during the
morning rush.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			net, err := c.loadNetwork(cfg)
			if err != nil {
				return err
			}

			board := seedBoard(net)
			if peak {
				origin := 0
				if id, ok := net.Lookup("Churchgate"); ok {
					origin = id
				}
				added := board.PeakBoost(origin, 901, []int{485, 500})
				printInfo("Injected %d peak specials", len(added))
			}

			fmt.Println(StyleTitle.Render("Departures"))
			for _, t := range board.Upcoming() {
				origin := fmt.Sprintf("station %d", t.Origin)
				if s, err := net.Station(t.Origin); err == nil {
					origin = s.Name
				}
				status := string(t.Status)
				if t.Status == schedule.StatusOnTime {
					status = StyleSuccess.Render(status)
				} else {
					status = StyleWarning.Render(status)
				}
				fmt.Printf("  %s  %-18s %-14s %s\n", StyleNumber.Render(t.Clock()), t.Name, origin, status)
			}
			printDetail("%d services", board.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&peak, "peak", false, "inject extra peak-hour services")
	return cmd
}

// seedBoard builds the standard daily board against the loaded network.
func seedBoard(net *railnet.Network) *schedule.Board {
	board := schedule.New()

	add := func(id int, name, originName string, departure int) {
		origin := 0
		if sid, ok := net.Lookup(originName); ok {
			origin = sid
		}
		board.Add(schedule.Train{ID: id, Name: name, Departure: departure, Origin: origin})
	}

	add(101, "Fast Local (W)", "Churchgate", 480)
	add(102, "Slow Local (C)", "CST", 495)
	add(103, "Harbour Spl", "Panvel", 510)
	return board
}
