package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/sheetmetrics/core"
	"github.com/npillmayer/sheetmetrics/core/cellref"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address <reference>",
	Short: "Decode a cell reference or range",
	Long: `Decode an A1-style cell reference or range, optionally qualified by a
sheet name, e.g. "C7", "$A$1:B10" or "'Q1 2024'!A1:B10".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := decodeReference(args[0])
		if err != nil {
			return err
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)
}

func decodeReference(text string) (pterm.TableData, error) {
	data := pterm.TableData{{"Property", "Value"}}
	if strings.Contains(text, ":") {
		sheet, r, ok := cellref.ParseQualifiedRange(text)
		if !ok {
			return nil, core.Error(core.EINVALID, "not a cell range: %q", text)
		}
		rows, cols := r.Size()
		data = append(data,
			[]string{"Sheet", sheet},
			[]string{"Start", fmt.Sprintf("row %d, column %d (%s)", r.Start.Row, r.Start.Column,
				cellref.ColumnIndexToName(r.Start.Column))},
			[]string{"End", fmt.Sprintf("row %d, column %d (%s)", r.End.Row, r.End.Column,
				cellref.ColumnIndexToName(r.End.Column))},
			[]string{"Size", fmt.Sprintf("%d × %d", rows, cols)},
			[]string{"Absolute", cellref.FormatCellRange(r.Start.Row, r.Start.Column,
				r.End.Row, r.End.Column, true, sheet)},
		)
		return data, nil
	}
	sheet, a, ok := cellref.ParseQualifiedReference(text)
	if !ok {
		return nil, core.Error(core.EINVALID, "not a cell reference: %q", text)
	}
	data = append(data,
		[]string{"Sheet", sheet},
		[]string{"Row", fmt.Sprintf("%d", a.Row)},
		[]string{"Column", fmt.Sprintf("%d (%s)", a.Column, cellref.ColumnIndexToName(a.Column))},
		[]string{"Absolute", cellref.FormatCellReference(a.Row, a.Column, true, sheet)},
	)
	return data, nil
}
