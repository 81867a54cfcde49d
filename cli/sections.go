package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/reikouwu/House-Liber-Arce/engine/section"
	"github.com/spf13/cobra"
)

var categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

func SectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Print the section catalogue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, err := cmd.Flags().GetBool("json")
			if err != nil {
				return err
			}
			registry := section.DefaultRegistry()
			if asJSON {
				return writeSectionsJSON(cmd.OutOrStdout(), registry)
			}
			return writeSectionsText(cmd.OutOrStdout(), registry)
		},
	}
	cmd.Flags().Bool("json", false, "Print the catalogue as JSON")
	return cmd
}

func writeSectionsJSON(w io.Writer, registry *section.Registry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(registry.Categories())
}

func writeSectionsText(w io.Writer, registry *section.Registry) error {
	for _, category := range registry.Categories() {
		if _, err := fmt.Fprintln(w, categoryStyle.Render(category.Name)); err != nil {
			return err
		}
		for _, channel := range category.Channels {
			if _, err := fmt.Fprintf(w, "  %s\n", channel.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
