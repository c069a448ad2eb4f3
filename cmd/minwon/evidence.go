package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"minwon-analytics/internal/analysis/usecase"
)

var evidenceCmd = &cobra.Command{
	Use:   "evidence <query>",
	Short: "Gather and render the statistics a question asks for",
	Long: `Evidence interprets the question, fetches every selected source
concurrently and prints the rendered statistics block the summarizer would
receive. Use --yaml for the raw evidence list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEvidence,
}

func init() {
	evidenceCmd.Flags().Bool("yaml", false, "print the evidence list as YAML")

	rootCmd.AddCommand(evidenceCmd)
}

func runEvidence(cmd *cobra.Command, args []string) error {
	loc, err := location(cmd)
	if err != nil {
		return err
	}

	l := newLogger(cmd)
	repo, cleanup, err := newRepository(cmd, l)
	if err != nil {
		return err
	}
	defer cleanup()

	uc := usecase.New(l, repo, nil, nil, usecase.Settings{Location: loc})

	intent := uc.Interpret(strings.Join(args, " "))
	items, err := uc.Aggregate(cmd.Context(), intent)
	if err != nil {
		return err
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		return printYAML(cmd.OutOrStdout(), items)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), usecase.FormatStatistics(items))
	return err
}
