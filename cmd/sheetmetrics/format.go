package main

import (
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/sheetmetrics/core/numfmt"
	"github.com/npillmayer/sheetmetrics/engine/sizing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	date1904  bool
	formatMDW int
)

var formatCmd = &cobra.Command{
	Use:   "format <code> [value ...]",
	Short: "Render sample values under a format code",
	Long: `Render values under a number format code, as they would be shown in a cell.
Values which are not numbers are rendered as text. Without values, an
interactive prompt reads one value per line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fm := numfmt.Formatter{Date1904: date1904}
		hf := numfmt.Translate(args[0])
		pterm.Info.Printfln("%q translates to %q (date: %v)", hf.Code, hf.String(), hf.IsDate())
		if len(args) > 1 {
			data := pterm.TableData{{"Value", "Rendered"}}
			var samples []string
			for _, v := range args[1:] {
				s := render(fm, args[0], v)
				samples = append(samples, s)
				data = append(data, []string{v, s})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				return err
			}
			pterm.Info.Printfln("column width to fit the samples: %.4f",
				sizing.FitWidth(samples, formatMDW))
			return nil
		}
		return formatREPL(fm, args[0])
	},
}

func init() {
	formatCmd.Flags().BoolVar(&date1904, "1904", false, "Use the 1904 date system")
	formatCmd.Flags().IntVar(&formatMDW, "mdw", 7, "Maximum digit width in pixels, for fitting")
	rootCmd.AddCommand(formatCmd)
}

func render(fm numfmt.Formatter, code, value string) string {
	if x, err := strconv.ParseFloat(value, 64); err == nil {
		return fm.Render(x, code)
	}
	return fm.RenderText(value, code)
}

func formatREPL(fm numfmt.Formatter, code string) error {
	repl, err := readline.New("value > ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		pterm.Println(render(fm, code, line))
	}
	return nil
}
