package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sheetmetrics/core"
	"github.com/npillmayer/sheetmetrics/core/dimen"
	"github.com/npillmayer/sheetmetrics/core/font"
	"github.com/npillmayer/sheetmetrics/core/font/fontregistry"
	"github.com/npillmayer/sheetmetrics/engine/sizing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	probeSize   string
	probeBold   bool
	probeItalic bool
	probeSteps  bool
)

var probeCmd = &cobra.Command{
	Use:   "probe <typeface>",
	Short: "Measure a typeface",
	Long: `Measure the maximum digit width of a typeface and print the default
column width and row height derived from it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := parseFontSize(probeSize)
		if err != nil {
			return err
		}
		sizer := sizing.NewSizer(configuration())
		r := sizer.Size(args[0], size, font.VariantOf(probeBold, probeItalic))
		if tracing.TraceLevelFromString(traceLevel) == tracing.LevelDebug {
			fontregistry.GlobalRegistry().LogFontList()
		}
		switch r.Metrics.Substitution {
		case core.EFALLBACK:
			pterm.Warning.Printfln("%s %s is not installed, measured %s",
				r.Metrics.Typeface, r.Metrics.Variant, r.Metrics.Resolved)
		case core.EMISSING:
			pterm.Warning.Printfln("%s is not installed, measured %s",
				r.Metrics.Typeface, r.Metrics.Resolved)
		}
		return renderResult(r, probeSteps)
	},
}

func init() {
	probeCmd.Flags().StringVar(&probeSize, "size", "11", "Font size, in points or with a unit [pt|mm|pc|px]")
	probeCmd.Flags().BoolVar(&probeBold, "bold", false, "Measure the bold variant")
	probeCmd.Flags().BoolVar(&probeItalic, "italic", false, "Measure the italic variant")
	probeCmd.Flags().BoolVar(&probeSteps, "steps", false, "Print the column step table")
	rootCmd.AddCommand(probeCmd)
}

func renderResult(r sizing.Result, steps bool) error {
	m := r.Metrics
	data := pterm.TableData{
		{"Property", "Value"},
		{"Typeface", m.Typeface},
		{"Size", fmt.Sprintf("%gpt", m.Size)},
		{"Variant", m.Variant.String()},
		{"Measured font", m.Resolved},
		{"Font family", m.Family},
		{"Resolution", fmt.Sprintf("%d dpi", m.DPI)},
		{"Max digit width", fmt.Sprintf("%d px", m.MaxDigitWidth)},
		{"Overridden", fmt.Sprintf("%v", m.Overridden)},
		{"Column width", fmt.Sprintf("%d px = %.4f chars", r.Column.Pixels, r.Column.Chars)},
		{"Column width (EMU)", fmt.Sprintf("%d", r.Column.EMU)},
		{"Default column width", fmt.Sprintf("%.6f", r.DefaultColWidth())},
		{"Row height", fmt.Sprintf("%gpt = %.0f px", r.Row.Points, r.Row.EMU.Pixels(m.DPI))},
		{"Row height (EMU)", fmt.Sprintf("%d", r.Row.EMU)},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	if !steps {
		return nil
	}
	table := pterm.TableData{{"Pixels", "Step", "1/256"}}
	for i, s := range m.ColumnSteps {
		table = append(table, []string{
			fmt.Sprintf("%d", i), fmt.Sprintf("%.6f", s), fmt.Sprintf("%d", int(s*256)),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(table).Render()
}

// parseFontSize reads a font size. Plain numbers are points, other sizes
// carry a unit, e.g. "4mm".
func parseFontSize(text string) (float64, error) {
	if pt, err := strconv.ParseFloat(text, 64); err == nil {
		return pt, nil
	}
	d, err := dimen.ParseDimen(text)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "cannot read font size %q", text)
	}
	return d.Points(), nil
}
