package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/checkpress-dev/checkpress/internal/normalize"
)

func newInspectCommand() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "inspect <workbook.xlsx>",
		Short: "Normalize a workbook and print the parsed records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], opts)
		},
	}

	addMappingFlags(cmd, &opts)
	return cmd
}

func runInspect(cmd *cobra.Command, path string, opts renderOptions) error {
	sheet, err := loadSheet(path, opts.sheetName)
	if err != nil {
		return err
	}

	result := normalize.New(opts.mapping, opts.dateFormat).Normalize(sheet.Rows)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPAYEE\tAMOUNT\tAMOUNT (UPPER)\tDATE\tMEMO")
	for i, rec := range result.Records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, rec.Payee, rec.AmountFormatted, rec.AmountCJK, rec.Date, rec.Memo)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, e := range result.Errors {
		fmt.Fprintln(cmd.ErrOrStderr(), e)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d record(s), %d error(s)\n", len(result.Records), len(result.Errors))
	return nil
}
