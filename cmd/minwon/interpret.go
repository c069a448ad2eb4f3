package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"minwon-analytics/internal/analysis"
	"minwon-analytics/internal/analysis/interpreter"
)

const intentDateLayout = "2006-01-02"

var interpretCmd = &cobra.Command{
	Use:   "interpret <query>",
	Short: "Print the structured intent of a question",
	Long: `Interpret extracts the search keyword, date range, target channel and
breakdown flags from a free-text question. No upstream calls are made.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInterpret,
}

func init() {
	rootCmd.AddCommand(interpretCmd)
}

type intentView struct {
	SearchKeyword           string `yaml:"search_keyword"`
	DateFrom                string `yaml:"date_from"`
	DateTo                  string `yaml:"date_to"`
	TargetChannel           string `yaml:"target_channel"`
	AllChannels             bool   `yaml:"all_channels"`
	UseInstitutionBreakdown bool   `yaml:"use_institution_breakdown"`
	UseRelatedKeywords      bool   `yaml:"use_related_keywords"`
}

func newIntentView(in analysis.Intent) intentView {
	return intentView{
		SearchKeyword:           in.SearchKeyword,
		DateFrom:                in.DateFrom.Format(intentDateLayout),
		DateTo:                  in.DateTo.Format(intentDateLayout),
		TargetChannel:           string(in.TargetChannel),
		AllChannels:             in.AllChannels,
		UseInstitutionBreakdown: in.UseInstitutionBreakdown,
		UseRelatedKeywords:      in.UseRelatedKeywords,
	}
}

func runInterpret(cmd *cobra.Command, args []string) error {
	loc, err := location(cmd)
	if err != nil {
		return err
	}

	intent := interpreter.Interpret(strings.Join(args, " "), time.Now().In(loc))
	return printYAML(cmd.OutOrStdout(), newIntentView(intent))
}
