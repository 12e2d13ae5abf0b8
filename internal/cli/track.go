package cli

import (
	"github.com/spf13/cobra"

	"github.com/railnav/railnav/pkg/errors"
	"github.com/railnav/railnav/pkg/railnet"
)

// trackCommand creates the track management command.
func (c *CLI) trackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Manage tracks: add new connections or report failures",
	}

	cmd.AddCommand(c.trackAddCommand())
	cmd.AddCommand(c.trackBlockCommand())
	return cmd
}

// trackAddCommand creates the "track add" subcommand.
func (c *CLI) trackAddCommand() *cobra.Command {
	var (
		timeMin int
		distKm  int
		line    string
	)

	cmd := &cobra.Command{
		Use:   "add <from> <to>",
		Short: "Add a track between two stations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateLineName(line); err != nil {
				return err
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			net, err := c.loadNetwork(cfg)
			if err != nil {
				return err
			}

			u, err := resolveStation(net, args[0])
			if err != nil {
				return err
			}
			v, err := resolveStation(net, args[1])
			if err != nil {
				return err
			}

			if err := net.AddTrack(u, v, timeMin, distKm, railnet.Line(line)); err != nil {
				return err
			}
			if err := c.saveNetwork(cfg, net); err != nil {
				return err
			}

			printSuccess("Added track %s %s %s (%d min, %d km)", args[0], iconArrow, args[1], timeMin, distKm)
			return nil
		},
	}

	cmd.Flags().IntVar(&timeMin, "time", 5, "travel time in minutes")
	cmd.Flags().IntVar(&distKm, "dist", 3, "distance in kilometers")
	cmd.Flags().StringVar(&line, "line", "western", "line the track belongs to")
	return cmd
}

// trackBlockCommand creates the "track block" subcommand.
func (c *CLI) trackBlockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "block <from> <to>",
		Short: "Report a track failure, removing it from routing",
		Long: `Report a track failure between two adjacent stations. All tracks
between the pair (both directions, including parallel tracks) become
impassable immediately: the very next route query avoids them.`,
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

			u, err := resolveStation(net, args[0])
			if err != nil {
				return err
			}
			v, err := resolveStation(net, args[1])
			if err != nil {
				return err
			}

			if err := net.BlockTrack(u, v); err != nil {
				return err
			}
			if err := c.saveNetwork(cfg, net); err != nil {
				return err
			}

			c.Logger.Info("track blocked", "from", args[0], "to", args[1])
			printSuccess("Blocked all tracks between %s and %s", args[0], args[1])
			printNextStep("Check connectivity", "railnav reachable "+args[0])
			return nil
		},
	}
}
