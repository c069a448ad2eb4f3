// Package main is the entry point for the minwon CLI. It runs the analysis
// pipeline up to the rendered statistics block, without the summarizer.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"minwon-analytics/config"
	"minwon-analytics/internal/analysis/repository"
	"minwon-analytics/internal/analysis/repository/publicapi"
	"minwon-analytics/pkg/log"
)

const defaultTimezone = "Asia/Seoul"

// rootCmd is the base command for the minwon CLI.
var rootCmd = &cobra.Command{
	Use:   "minwon",
	Short: "Query complaint statistics from the public complaint big-data Open API",
	Long: `minwon interprets free-text questions about civil complaints and fetches the
matching statistics from the public complaint big-data Open API.

interpret shows the structured intent of a question, evidence gathers and
renders every statistic the question asks for, and fetch calls one source
directly.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./config/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().String("timezone", defaultTimezone, "timezone used to resolve the default date range")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log upstream calls to stderr")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command) log.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:    "debug",
		Mode:     log.ModeDebug,
		Encoding: log.EncodingConsole,
	})
}

func location(cmd *cobra.Command) (*time.Location, error) {
	tz, _ := cmd.Flags().GetString("timezone")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return loc, nil
}

// newRepository loads config.yaml and builds the Open API repository. The
// returned cleanup releases idle connections.
func newRepository(cmd *cobra.Command, l log.Logger) (repository.StatisticsRepository, func(), error) {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	client := publicapi.NewClient(publicapi.Config{
		BaseURL:    cfg.PublicAPI.BaseURL,
		ServiceKey: cfg.PublicAPI.ServiceKey,
		Timeout:    cfg.PublicAPI.Timeout,
	}, l)
	return publicapi.New(client, l), client.CloseIdleConnections, nil
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
