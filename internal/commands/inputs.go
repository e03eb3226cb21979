package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/checkpress-dev/checkpress/internal/inputs"
)

func newInputsCommand() *cobra.Command {
	inputsCmd := &cobra.Command{
		Use:   "inputs",
		Short: "Manage saved custom field values",
	}
	inputsCmd.AddCommand(newInputsSetCommand())
	inputsCmd.AddCommand(newInputsListCommand())
	return inputsCmd
}

func newInputsSetCommand() *cobra.Command {
	var file string
	var templateID string

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save a custom field value for a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := inputs.Open(file)
			if err != nil {
				return err
			}
			store.Set(templateID, args[0], args[1])
			return store.Save()
		},
	}

	cmd.Flags().StringVar(&file, "file", "inputs.yaml", "custom inputs YAML file")
	cmd.Flags().StringVar(&templateID, "template", "default_tw_bank", "template id")

	return cmd
}

func newInputsListCommand() *cobra.Command {
	var file string
	var templateID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved custom field values for a template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := inputs.Open(file)
			if err != nil {
				return err
			}
			values := store.Get(templateID)

			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tVALUE")
			for _, k := range keys {
				fmt.Fprintf(w, "%s\t%s\n", k, values[k])
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&file, "file", "inputs.yaml", "custom inputs YAML file")
	cmd.Flags().StringVar(&templateID, "template", "default_tw_bank", "template id")

	return cmd
}
