package main

import (
	"fmt"

	"github.com/npillmayer/sheetmetrics/backend/xlsx"
	"github.com/npillmayer/sheetmetrics/core"
	"github.com/npillmayer/sheetmetrics/core/theme"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

var themeTint float64

var themeCmd = &cobra.Command{
	Use:   "theme <workbook.xlsx>",
	Short: "Print the theme colours of a workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := excelize.OpenFile(args[0])
		if err != nil {
			return core.WrapError(err, core.EMISSING, "cannot open workbook %q", args[0])
		}
		defer f.Close()
		th := xlsx.WorkbookTheme(f)
		pterm.Info.Printfln("%s: headings in %s, body in %s", th.Name, th.MajorFont, th.MinorFont)
		data := pterm.TableData{{"Index", "Slot", "Colour", fmt.Sprintf("Tint %+.2f", themeTint)}}
		for i := 0; i < int(theme.SlotCount); i++ {
			slot, _ := theme.SlotForIndex(i)
			data = append(data, []string{
				fmt.Sprintf("%d", i),
				slot.String(),
				th.Resolve(slot).Hex(),
				th.ResolveTinted(slot, themeTint).Hex(),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	themeCmd.Flags().Float64Var(&themeTint, "tint", 0.4, "Tint to apply, from -1 (darker) to 1 (lighter)")
	rootCmd.AddCommand(themeCmd)
}
