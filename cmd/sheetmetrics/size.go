package main

import (
	"github.com/npillmayer/sheetmetrics/backend/xlsx"
	"github.com/npillmayer/sheetmetrics/core"
	"github.com/npillmayer/sheetmetrics/engine/sizing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

var (
	sizeOutput string
	sizeDryRun bool
)

var sizeCmd = &cobra.Command{
	Use:   "size <workbook.xlsx>",
	Short: "Write default sizes into a workbook",
	Long: `Measure the body typeface of a workbook and write the derived default
column width and row height into every worksheet. The workbook is changed in
place unless an output file is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := excelize.OpenFile(args[0])
		if err != nil {
			return core.WrapError(err, core.EMISSING, "cannot open workbook %q", args[0])
		}
		defer f.Close()
		r, err := xlsx.SizeWorkbook(f, sizing.NewSizer(configuration()))
		if err != nil {
			return err
		}
		if err := renderResult(r, false); err != nil {
			return err
		}
		if sizeDryRun {
			return nil
		}
		if sizeOutput != "" {
			err = f.SaveAs(sizeOutput)
		} else {
			err = f.Save()
		}
		if err != nil {
			return core.WrapError(err, core.EINVALID, "cannot save workbook")
		}
		pterm.Info.Printfln("sized %d sheets", len(f.GetSheetList()))
		return nil
	},
}

func init() {
	sizeCmd.Flags().StringVarP(&sizeOutput, "output", "o", "", "Write the sized workbook to this file")
	sizeCmd.Flags().BoolVar(&sizeDryRun, "dry-run", false, "Measure only, do not save")
	rootCmd.AddCommand(sizeCmd)
}
