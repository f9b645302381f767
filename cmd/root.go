package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alessandrocasali86-boop/lumen-nidi-tda/check"
	"github.com/alessandrocasali86-boop/lumen-nidi-tda/constants"
	"github.com/alessandrocasali86-boop/lumen-nidi-tda/document"
	"github.com/alessandrocasali86-boop/lumen-nidi-tda/interval"
	"github.com/alessandrocasali86-boop/lumen-nidi-tda/model"
	"github.com/alessandrocasali86-boop/lumen-nidi-tda/util"
)

var (
	lumenPath       string
	nidiPath        string
	outPath         string
	requireExplicit bool
	checkNidiPanel1 bool
)

var rootCmd = &cobra.Command{
	Use:   "extract-rests",
	Short: "Extracts rest sequences from two JSON event documents",
	Long: `Extracts rest sequences from two JSON event documents.

Rests come from explicit rest events when the document has them, otherwise
they are inferred from gaps between active events. Durations are reported in
eighth-note units; intervals in the document's quarter units.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&lumenPath, "lumen", "", "path to the Lumen JSON document")
	rootCmd.Flags().StringVar(&nidiPath, "nidi", "", "path to the Nidi panel-1 JSON document")
	rootCmd.Flags().StringVar(&outPath, "out", "", "optional path to save results as JSON")
	rootCmd.Flags().BoolVar(&requireExplicit, "require-explicit", false, "only accept explicit rest events, never infer from gaps")
	rootCmd.Flags().BoolVar(&checkNidiPanel1, "check-nidi-panel1", false, "validate Nidi rests against the expected 18-rest sequence")
	rootCmd.MarkFlagRequired("lumen")
	rootCmd.MarkFlagRequired("nidi")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// AnalyzeDocument runs the pipeline over one document: load, locate the
// event list, extract rest intervals, convert to eighth units.
func AnalyzeDocument(label, path string, requireExplicit bool) (model.RestReport, error) {
	doc, err := document.Load(path)
	if err != nil {
		return model.RestReport{}, err
	}
	events, ok := document.FindEventList(doc)
	if !ok {
		return model.RestReport{}, fmt.Errorf("could not find an event list in %s JSON", label)
	}
	rests := interval.ExtractRests(events, requireExplicit)
	report := model.RestReport{
		RestsEighth:          interval.EighthDurations(rests),
		RestIntervalsQuarter: make([][2]float64, 0, len(rests)),
	}
	for _, r := range rests {
		report.RestIntervalsQuarter = append(report.RestIntervalsQuarter,
			[2]float64{util.Round6(r.Start), util.Round6(r.End)})
	}
	return report, nil
}

// SaveResult writes the result document as indented JSON.
func SaveResult(doc model.ResultDocument, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func formatRests(rests []float64) string {
	parts := make([]string, 0, len(rests))
	for _, r := range rests {
		parts = append(parts, strconv.FormatFloat(r, 'g', -1, 64))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func printTag(attr color.Attribute, tag, msg string) {
	color.Set(attr)
	fmt.Print(tag)
	color.Unset()
	fmt.Printf(" %s\n", msg)
}

func run() error {
	lumen, err := AnalyzeDocument("Lumen", lumenPath, requireExplicit)
	if err != nil {
		return err
	}
	nidi, err := AnalyzeDocument("Nidi", nidiPath, requireExplicit)
	if err != nil {
		return err
	}

	fmt.Println("rests_lumen =", formatRests(lumen.RestsEighth))
	fmt.Println("rests_nidi  =", formatRests(nidi.RestsEighth))
	printTag(color.FgGreen, "[INFO]", fmt.Sprintf("Lumen: %d rests (coalesced)", len(lumen.RestsEighth)))
	printTag(color.FgGreen, "[INFO]", fmt.Sprintf("Nidi : %d rests (coalesced)", len(nidi.RestsEighth)))

	if checkNidiPanel1 {
		check.ValidateExpected("Nidi panel 1", nidi.RestsEighth, constants.ExpectedNidiPanel1Eighth)
	}

	if outPath != "" {
		if err := SaveResult(model.ResultDocument{Lumen: lumen, Nidi: nidi}, outPath); err != nil {
			return err
		}
		printTag(color.FgMagenta, "[OK]", "Saved -> "+outPath)
	}
	return nil
}
