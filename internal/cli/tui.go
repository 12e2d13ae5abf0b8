package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/railnav/railnav/pkg/railnet"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the interactive route browser.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively pick two stations and see the fastest route",
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

			model := newBrowseModel(net, cfg.farePolicy())
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return fmt.Errorf("run browser: %w", err)
			}

			m, ok := final.(browseModel)
			if !ok || m.from < 0 || m.to < 0 {
				return nil
			}
			route, found, err := net.ShortestRoute(m.from, m.to)
			if err != nil {
				return err
			}
			if !found {
				fromName, _ := net.Station(m.from)
				toName, _ := net.Station(m.to)
				printWarning("No route between %s and %s", fromName.Name, toName.Name)
				return nil
			}
			printRoute(net, route, cfg.farePolicy(), false)
			return nil
		},
	}
}

// browsePhase tracks which endpoint is being picked.
type browsePhase int

const (
	phasePickFrom browsePhase = iota
	phasePickTo
)

// browseModel is the bubbletea model for interactive station selection.
type browseModel struct {
	stations []railnet.Station
	policy   railnet.FarePolicy

	phase  browsePhase
	cursor int
	offset int
	height int

	from int
	to   int
}

func newBrowseModel(net *railnet.Network, policy railnet.FarePolicy) browseModel {
	return browseModel{
		stations: net.Stations(),
		policy:   policy,
		height:   15,
		from:     -1,
		to:       -1,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.from, m.to = -1, -1
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.stations)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			id := m.stations[m.cursor].ID
			if m.phase == phasePickFrom {
				m.from = id
				m.phase = phasePickTo
				return m, nil
			}
			m.to = id
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	title := "Select origin station"
	if m.phase == phasePickTo {
		from := m.stations[m.from]
		title = fmt.Sprintf("From %s, select destination", from.Name)
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.stations) {
		end = len(m.stations)
	}

	for i := m.offset; i < end; i++ {
		s := m.stations[i]

		cursor := "  "
		line := fmt.Sprintf("%-16s %s", s.Name, s.Line)
		if s.Interchange {
			line += " ⇄"
		}
		if i == m.cursor {
			cursor = "▸ "
			line = listSelectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	if end < len(m.stations) {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("\n  … %d more", len(m.stations)-end)))
	}
	return b.String()
}
