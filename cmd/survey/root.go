package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"policy-survey-api/internal/config"
	"policy-survey-api/internal/dataset"
	"policy-survey-api/internal/model"
	"policy-survey-api/internal/query"
)

type options struct {
	dataPath   string
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "survey",
		Short: "Query policy support rates from a survey data file",
		Long: `survey runs the same queries as the HTTP API against a local data file
and prints the result as JSON.

Examples:
  # Overall support
  survey --data data/policy_survey_data.csv support

  # Support among women with a low income
  survey --data data/policy_survey_data.csv support-by --gender F --income Low

  # Support per education level
  survey --data responses.db grouped --by education`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.dataPath, "data", "d", "", "CSV or SQLite data file (defaults to the configured data_path)")
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Config file")

	rootCmd.AddCommand(
		newSupportCmd(opts),
		newSupportByCmd(opts),
		newGroupedCmd(opts),
	)
	return rootCmd
}

func newSupportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "support",
		Short: "Overall support rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), svc.OverallSupport())
		},
	}
}

func newSupportByCmd(opts *options) *cobra.Command {
	var spec model.FilterSpec

	cmd := &cobra.Command{
		Use:   "support-by",
		Short: "Support rate of respondents matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			result, err := svc.SupportBy(spec)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&spec.Gender, string(model.ColumnGender), "", "Filter by gender")
	cmd.Flags().StringVar(&spec.Race, string(model.ColumnRace), "", "Filter by race")
	cmd.Flags().StringVar(&spec.AgeGroup, string(model.ColumnAgeGroup), "", "Filter by age group")
	cmd.Flags().StringVar(&spec.Education, string(model.ColumnEducation), "", "Filter by education level")
	cmd.Flags().StringVar(&spec.Income, string(model.ColumnIncome), "", "Filter by income category")
	return cmd
}

func newGroupedCmd(opts *options) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "grouped",
		Short: "Support rate per value of a demographic column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			result, err := svc.Grouped(by)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&by, "by", "", fmt.Sprintf("Column to group by, one of %v", query.ValidColumns()))
	_ = cmd.MarkFlagRequired("by")
	return cmd
}

// service loads the dataset named by --data, falling back to configuration
func (o *options) service() (*query.Service, error) {
	path := o.dataPath
	if path == "" {
		cfg, err := config.Load(o.configFile)
		if err != nil {
			return nil, err
		}
		path = cfg.DataPath
	}

	ds, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	return query.NewService(ds), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
