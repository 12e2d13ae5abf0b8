package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/railnav/railnav/pkg/railnet"
)

// routeCommand creates the route query command.
func (c *CLI) routeCommand() *cobra.Command {
	var senior bool

	cmd := &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Find the fastest route between two stations",
		Long: `Find the fastest route between two stations.

Stations can be given by name or by numeric id:

  railnav route Churchgate Thane
  railnav route 0 17

The route minimizes total travel time. Blocked tracks are never used.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			net, err := c.loadNetwork(cfg)
			if err != nil {
				return err
			}

			from, err := resolveStation(net, args[0])
			if err != nil {
				return err
			}
			to, err := resolveStation(net, args[1])
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			route, ok, err := net.ShortestRoute(from, to)
			if err != nil {
				return err
			}
			if !ok {
				printWarning("No route between %s and %s (tracks blocked or disconnected)", args[0], args[1])
				return nil
			}
			prog.done(fmt.Sprintf("Routed %s to %s", args[0], args[1]))

			printRoute(net, route, cfg.farePolicy(), senior)
			return nil
		},
	}

	cmd.Flags().BoolVar(&senior, "senior", false, "show the senior citizen fare")
	return cmd
}

// resolveStation turns a station name or numeric id into a station id.
func resolveStation(net *railnet.Network, arg string) (int, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		if _, err := net.Station(id); err != nil {
			return 0, fmt.Errorf("station %d: %w", id, err)
		}
		return id, nil
	}
	if id, ok := net.Lookup(arg); ok {
		return id, nil
	}
	return 0, fmt.Errorf("no station named %q", arg)
}

// printRoute prints the hop-by-hop path with times and fares.
func printRoute(net *railnet.Network, route railnet.Route, policy railnet.FarePolicy, senior bool) {
	names := make([]string, len(route.Path))
	for i, id := range route.Path {
		s, err := net.Station(id)
		if err != nil {
			names[i] = strconv.Itoa(id)
			continue
		}
		names[i] = s.Name
	}

	fmt.Println(StyleTitle.Render("Fastest route"))
	fmt.Println("  " + strings.Join(names, StyleDim.Render(" "+iconArrow+" ")))
	printKeyValue("time", fmt.Sprintf("%d min", route.Time))
	printKeyValue("distance", fmt.Sprintf("%d km", route.Dist))
	if senior {
		printKeyValue("fare", fmt.Sprintf("Rs %d (senior)", policy.SeniorFare(route.Dist)))
	} else {
		printKeyValue("fare", fmt.Sprintf("Rs %d", policy.Fare(route.Dist)))
	}
}
