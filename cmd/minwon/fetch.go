package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"minwon-analytics/internal/analysis"
	"minwon-analytics/internal/analysis/repository"
)

const (
	flagDateLayout = "20060102"
	timeSuffix     = "000000"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Call a single Open API source and print its evidence",
	Long: `Fetch calls one statistics source directly and prints the normalized
evidence list as YAML. Dates are yyyyMMdd; the time-series source receives
them at midnight.`,
}

// fetchParams are the flag values shared by every fetch subcommand.
type fetchParams struct {
	Keyword string
	From    string
	To      string
	Target  analysis.Channel
}

type fetchFunc func(ctx context.Context, repo repository.StatisticsRepository, p fetchParams) ([]analysis.EvidenceItem, error)

type fetchSource struct {
	use   string
	short string
	run   fetchFunc
}

var fetchSources = []fetchSource{
	{
		use:   "doc-count",
		short: "Document count of the target channel",
		run: func(ctx context.Context, repo repository.StatisticsRepository, p fetchParams) ([]analysis.EvidenceItem, error) {
			return repo.DocCount(ctx, repository.DocCountOptions{
				SearchWord: p.Keyword,
				DateFrom:   p.From,
				DateTo:     p.To,
				Target:     p.Target,
			})
		},
	},
	{
		use:   "time-series",
		short: "Monthly keyword trend",
		run: func(ctx context.Context, repo repository.StatisticsRepository, p fetchParams) ([]analysis.EvidenceItem, error) {
			return repo.TimeSeries(ctx, repository.TimeSeriesOptions{
				SearchWord: p.Keyword,
				DateFrom:   p.From + timeSuffix,
				DateTo:     p.To + timeSuffix,
				Target:     p.Target,
			})
		},
	},
	{
		use:   "institution",
		short: "Complaint counts per processing institution",
		run: func(ctx context.Context, repo repository.StatisticsRepository, p fetchParams) ([]analysis.EvidenceItem, error) {
			return repo.Institution(ctx, repository.InstitutionOptions{
				SearchWord: p.Keyword,
				DateFrom:   p.From,
				DateTo:     p.To,
				Target:     p.Target,
			})
		},
	},
	{
		use:   "keywords",
		short: "Related keywords (word cloud)",
		run: func(ctx context.Context, repo repository.StatisticsRepository, p fetchParams) ([]analysis.EvidenceItem, error) {
			return repo.RelatedKeywords(ctx, repository.RelatedKeywordsOptions{
				SearchWord: p.Keyword,
				DateFrom:   p.From,
				DateTo:     p.To,
				Target:     p.Target,
			})
		},
	},
	{
		use:   "statutes",
		short: "Statutes related to the keyword",
		run: func(ctx context.Context, repo repository.StatisticsRepository, p fetchParams) ([]analysis.EvidenceItem, error) {
			return repo.Statutes(ctx, repository.StatutesOptions{
				SearchWord: p.Keyword,
				DateFrom:   p.From,
				DateTo:     p.To,
				Target:     p.Target,
			})
		},
	},
}

func init() {
	fetchCmd.PersistentFlags().String("keyword", "", "search keyword")
	fetchCmd.PersistentFlags().String("from", "", "range start (yyyyMMdd, required)")
	fetchCmd.PersistentFlags().String("to", "", "range end (yyyyMMdd, required)")
	fetchCmd.PersistentFlags().String("target", string(analysis.DefaultChannel), "channel: pttn, dfpt, saeol or prpl")

	for _, src := range fetchSources {
		fetchCmd.AddCommand(&cobra.Command{
			Use:   src.use,
			Short: src.short,
			Args:  cobra.NoArgs,
			RunE:  fetchRunE(src.run),
		})
	}

	rootCmd.AddCommand(fetchCmd)
}

func fetchRunE(run fetchFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, err := readFetchParams(cmd)
		if err != nil {
			return err
		}

		l := newLogger(cmd)
		repo, cleanup, err := newRepository(cmd, l)
		if err != nil {
			return err
		}
		defer cleanup()

		items, err := run(cmd.Context(), repo, p)
		if err != nil {
			return err
		}
		return printYAML(cmd.OutOrStdout(), items)
	}
}

func readFetchParams(cmd *cobra.Command) (fetchParams, error) {
	keyword, _ := cmd.Flags().GetString("keyword")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	target, _ := cmd.Flags().GetString("target")
	return newFetchParams(keyword, from, to, target)
}

func newFetchParams(keyword, from, to, target string) (fetchParams, error) {
	fromDate, err := time.Parse(flagDateLayout, from)
	if err != nil {
		return fetchParams{}, fmt.Errorf("--from must be yyyyMMdd: %q", from)
	}
	toDate, err := time.Parse(flagDateLayout, to)
	if err != nil {
		return fetchParams{}, fmt.Errorf("--to must be yyyyMMdd: %q", to)
	}
	if toDate.Before(fromDate) {
		return fetchParams{}, fmt.Errorf("--to %s is before --from %s", to, from)
	}

	ch := analysis.Channel(target)
	if !ch.IsValid() {
		return fetchParams{}, fmt.Errorf("unknown target channel %q", target)
	}

	return fetchParams{Keyword: keyword, From: from, To: to, Target: ch}, nil
}
