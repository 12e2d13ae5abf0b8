package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/railnav/railnav/pkg/ticket"
)

// ticketCommand creates the ticket booking command.
func (c *CLI) ticketCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Book tickets and check fares",
	}

	cmd.AddCommand(c.ticketBookCommand())
	cmd.AddCommand(c.ticketFareCommand())
	return cmd
}

// ticketBookCommand creates the "ticket book" subcommand.
func (c *CLI) ticketBookCommand() *cobra.Command {
	var (
		passenger string
		age       int
		typ       string
	)

	cmd := &cobra.Command{
		Use:   "book <from> <to>",
		Short: "Book a ticket between two stations",
		Long: `Book a ticket between two stations. The fare is priced from the
actual routed distance. Passengers over 60 automatically receive the
senior concession.`,
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

			office := ticket.NewOffice(net, cfg.farePolicy())
			tk, err := office.Book(passenger, age, ticket.PassengerType(typ), from, to)
			if errors.Is(err, ticket.ErrUnreachable) {
				printError("No route between %s and %s, cannot price a fare", args[0], args[1])
				return nil
			}
			if err != nil {
				return err
			}

			issued := office.ProcessAll()
			if len(issued) != 1 {
				return fmt.Errorf("expected one issued ticket, got %d", len(issued))
			}

			printSuccess("Ticket issued")
			printKeyValue("id", tk.ID.String())
			printKeyValue("passenger", tk.Passenger)
			printKeyValue("type", string(tk.Type))
			printKeyValue("journey", fmt.Sprintf("%s %s %s (%d km)", args[0], iconArrow, args[1], tk.DistKm))
			printKeyValue("fare", fmt.Sprintf("Rs %d", tk.Fare))
			return nil
		},
	}

	cmd.Flags().StringVar(&passenger, "passenger", "", "passenger name (required)")
	cmd.Flags().IntVar(&age, "age", 30, "passenger age")
	cmd.Flags().StringVar(&typ, "type", "general", "passenger type: general, ladies, senior")
	_ = cmd.MarkFlagRequired("passenger")
	return cmd
}

// ticketFareCommand creates the "ticket fare" subcommand.
func (c *CLI) ticketFareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fare <from> <to>",
		Short: "Show the fare between two stations without booking",
		Args:  cobra.ExactArgs(2),
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

			route, ok, err := net.ShortestRoute(from, to)
			if err != nil {
				return err
			}
			if !ok {
				printWarning("No route between %s and %s", args[0], args[1])
				return nil
			}

			policy := cfg.farePolicy()
			printKeyValue("distance", fmt.Sprintf("%d km", route.Dist))
			printKeyValue("fare", fmt.Sprintf("Rs %d", policy.Fare(route.Dist)))
			printKeyValue("senior", fmt.Sprintf("Rs %d", policy.SeniorFare(route.Dist)))
			return nil
		},
	}
}
