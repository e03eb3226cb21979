package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/checkpress-dev/checkpress/internal/inputs"
	"github.com/checkpress-dev/checkpress/internal/model"
	"github.com/checkpress-dev/checkpress/internal/normalize"
	"github.com/checkpress-dev/checkpress/internal/render"
	"github.com/checkpress-dev/checkpress/internal/template"
	"github.com/checkpress-dev/checkpress/internal/workbook"
)

type renderOptions struct {
	templateDir string
	templateID  string
	outDir      string
	inputsFile  string
	sheetName   string
	dateFormat  string
	mapping     normalize.Mapping
}

func newRenderCommand() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <workbook.xlsx>",
		Short: "Render a workbook as printable check pages (SVG)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	addMappingFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.templateID, "template", "", "template id (default: bundled default)")
	cmd.Flags().StringVar(&opts.outDir, "out", "out", "output directory for SVG pages")
	cmd.Flags().StringVar(&opts.inputsFile, "inputs", "", "custom inputs YAML file")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts renderOptions) error {
	sheet, err := loadSheet(path, opts.sheetName)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(opts.templateDir)
	if err != nil {
		return err
	}
	active, err := activate(catalog, opts.templateID)
	if err != nil {
		return err
	}

	var custom map[string]string
	if opts.inputsFile != "" {
		store, err := inputs.Open(opts.inputsFile)
		if err != nil {
			return err
		}
		custom = store.Get(active.ID)
	}

	result := normalize.New(opts.mapping, opts.dateFormat).Normalize(sheet.Rows)
	for _, e := range result.Errors {
		fmt.Fprintln(cmd.ErrOrStderr(), e)
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	pages := render.LayoutAll(active, result.Records, custom)
	for i, page := range pages {
		name := filepath.Join(opts.outDir, fmt.Sprintf("check-%04d.svg", i+1))
		if err := writePage(name, page); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d page(s) to %s\n", len(pages), opts.outDir)
	return nil
}

func writePage(name string, page render.Page) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err := render.WriteSVG(f, page); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// addMappingFlags registers the flags shared by render and inspect.
func addMappingFlags(cmd *cobra.Command, opts *renderOptions) {
	cmd.Flags().StringVar(&opts.templateDir, "template-dir", "templates", "directory of template YAML files")
	cmd.Flags().StringVar(&opts.sheetName, "sheet", "", "worksheet name (default: first sheet)")
	cmd.Flags().StringVar(&opts.dateFormat, "date-format", "", "date output pattern (default YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.mapping.Payee, "payee-column", "", "payee column header")
	cmd.Flags().StringVar(&opts.mapping.Amount, "amount-column", "", "amount column header")
	cmd.Flags().StringVar(&opts.mapping.Date, "date-column", "date", "date column header")
	cmd.Flags().StringVar(&opts.mapping.Memo, "memo-column", "memo", "memo column header")
}

func loadSheet(path, name string) (model.Sheet, error) {
	sheets, err := workbook.Open(path)
	if err != nil {
		return model.Sheet{}, err
	}
	if len(sheets) == 0 {
		return model.Sheet{}, fmt.Errorf("workbook %s has no sheets", path)
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s.Name == name {
			return s, nil
		}
	}
	return model.Sheet{}, fmt.Errorf("workbook %s has no sheet %q", path, name)
}

func loadCatalog(dir string) (*template.Catalog, error) {
	extra, err := template.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return template.NewCatalog(extra...), nil
}

func activate(catalog *template.Catalog, id string) (model.Template, error) {
	if id == "" {
		active, ok := catalog.Active()
		if !ok {
			return model.Template{}, fmt.Errorf("catalog has no active template")
		}
		return active, nil
	}
	active, ok := catalog.SetActive(id)
	if !ok || active.ID != id {
		return model.Template{}, fmt.Errorf("unknown template %q", id)
	}
	return active, nil
}
