package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTemplatesCommand() *cobra.Command {
	var templateDir string
	var activeID string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(templateDir)
			if err != nil {
				return err
			}
			if activeID != "" {
				if _, err := activate(catalog, activeID); err != nil {
					return err
				}
			}
			active, _ := catalog.Active()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLABEL\tPAGE\tFIELDS")
			for _, t := range catalog.All() {
				marker := ""
				if t.ID == active.ID {
					marker = " (active)"
				}
				fmt.Fprintf(w, "%s%s\t%s\t%gx%g%s\t%d\n",
					t.ID, marker, t.Label, t.Page.Width, t.Page.Height, t.Page.Unit, len(t.Fields))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&templateDir, "template-dir", "templates", "directory of template YAML files")
	cmd.Flags().StringVar(&activeID, "active", "", "mark this template id active")

	return cmd
}
