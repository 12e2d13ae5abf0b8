package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/railnav/railnav/pkg/cache"
	"github.com/railnav/railnav/pkg/netmap"
	"github.com/railnav/railnav/pkg/railnet"
)

// mapCacheTTL bounds how long rendered artifacts are kept.
const mapCacheTTL = 30 * 24 * time.Hour

// mapCommand creates the network map rendering command.
func (c *CLI) mapCommand() *cobra.Command {
	var (
		format  string
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Render the network as a map image",
		Long: `Render the network as a map image using Graphviz.

Stations are colored by line, interchanges are double-bordered and
blocked tracks are drawn dashed. Rendered artifacts are cached locally,
keyed by a fingerprint of the network, so an unchanged network renders
instantly on subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "svg" && format != "png" && format != "dot" {
				return fmt.Errorf("unsupported format %q (svg, png, dot)", format)
			}
			if output == "" {
				output = "network." + format
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			net, err := c.loadNetwork(cfg)
			if err != nil {
				return err
			}

			return c.runMap(cmd.Context(), net, format, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default network.<format>)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")
	return cmd
}

// runMap renders the map, using the artifact cache where possible.
func (c *CLI) runMap(ctx context.Context, net *railnet.Network, format, output string, noCache bool) error {
	dot := netmap.ToDOT(net)
	if format == "dot" {
		if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printFile(output)
		return nil
	}

	store, err := newCache(noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	fingerprint, err := networkFingerprint(net)
	if err != nil {
		return fmt.Errorf("fingerprint network: %w", err)
	}
	key := cache.NewDefaultKeyer().MapKey(fingerprint, cache.MapKeyOpts{Format: format, Layout: "neato"})

	data, hit, err := store.Get(ctx, key)
	if err != nil {
		c.Logger.Debug("cache lookup failed", "err", err)
	}
	if !hit {
		spinner := newSpinnerWithContext(ctx, "Rendering network map...")
		spinner.Start()

		switch format {
		case "svg":
			data, err = netmap.RenderSVG(ctx, dot)
		case "png":
			data, err = netmap.RenderPNG(ctx, dot)
		}
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("render map: %w", err)
		}
		spinner.Stop()

		if err := store.Set(ctx, key, data, mapCacheTTL); err != nil {
			c.Logger.Debug("cache store failed", "err", err)
		}
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	stats := net.Stats()
	printSuccess("Rendered network map")
	printStats(stats.Stations, stats.Tracks, hit)
	printFile(output)
	return nil
}
