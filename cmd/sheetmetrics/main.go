/*
Command sheetmetrics measures typefaces the way spreadsheet applications do
and derives default column widths and row heights from the measurements.

	sheetmetrics probe Calibri --size 11
	sheetmetrics size book.xlsx
	sheetmetrics format '#,##0.00;[Red](#,##0.00)' 1234.5 -7
	sheetmetrics theme book.xlsx

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/sheetmetrics/core"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'sheetmetrics.cli'
func tracer() tracing.Trace {
	return tracing.Select("sheetmetrics.cli")
}

var tracerKeys = []string{
	"sheetmetrics.cli",
	"sheetmetrics.core",
	"sheetmetrics.numfmt",
	"sheetmetrics.theme",
	"sheetmetrics.font",
	"sheetmetrics.resources",
	"sheetmetrics.glyphs",
	"sheetmetrics.sizing",
	"sheetmetrics.xlsx",
}

// options set by persistent flags
var (
	traceLevel  string
	dpi         int
	fontpath    string
	systemFonts bool
	shaper      string
)

var rootCmd = &cobra.Command{
	Use:   "sheetmetrics",
	Short: "Measure typefaces for spreadsheet layout",
	Long: `Measure the maximum digit width of typefaces and derive the default
column width and row height of worksheets from it.

Commands:
  probe   Measure a typeface and print its column step table.
  size    Write default column widths and row heights into a workbook.
  format  Render sample values under a number format code.
  theme   Print the resolved theme colours of a workbook.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupTracing(traceLevel)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	flags.IntVar(&dpi, "dpi", 96, "Display resolution in dots per inch")
	flags.StringVar(&fontpath, "fontpath", "", "List of directories to search for font files")
	flags.BoolVar(&systemFonts, "system-fonts", true, "Search the fonts installed on the system")
	flags.StringVar(&shaper, "shaper", "", "Measure advances by shaping text [harfbuzz|monospace]")
}

func main() {
	initDisplay()
	if err := rootCmd.Execute(); err != nil {
		core.UserError(err)
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " Warn",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range tracerKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("error configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	return nil
}

// configuration collects the settings given by flags.
func configuration() schuko.Configuration {
	conf := testconfig.Conf{
		"display-dpi":  strconv.Itoa(dpi),
		"system-fonts": strconv.FormatBool(systemFonts),
	}
	if fontpath != "" {
		conf["fontpath"] = fontpath
	}
	if shaper != "" {
		conf["shaper"] = shaper
	}
	return conf
}
