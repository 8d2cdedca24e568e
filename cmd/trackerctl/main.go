// Package main provides the offline CLI for local Excel workbooks.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker"
	"apply-tracker/internal/tracker/repository/xlsx"
	"apply-tracker/internal/tracker/usecase"
	"apply-tracker/pkg/log"
	"apply-tracker/pkg/notify"
)

var (
	filePath    string
	sheetName   string
	groupBy     string
	analysisOut string
	masterSheet string
	keyColumn   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trackerctl",
		Short: "Manage the Applied column of a local application tracker workbook",
		Long: `trackerctl provisions the Applied checkbox column and reports
application stats for an .xlsx tracker workbook, without running the server.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "Path to the tracker workbook (.xlsx)")
	rootCmd.PersistentFlags().StringVarP(&sheetName, "sheet", "s", "Sheet1", "Worksheet name")
	_ = rootCmd.MarkPersistentFlagRequired("file")

	provisionCmd := &cobra.Command{
		Use:   "provision",
		Short: "Ensure the Applied checkbox column exists and covers all rows",
		Args:  cobra.NoArgs,
		RunE:  runProvision,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Count applied vs. total applications",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	statsCmd.Flags().StringVar(&groupBy, "group-by", "", "Header of the breakdown column (e.g. Company)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report the application funnel with a per-status breakdown",
		Args:  cobra.NoArgs,
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVarP(&analysisOut, "output", "o", "", "Write the report as CSV to this path")

	filterCmd := &cobra.Command{
		Use:   "filter",
		Short: "Remove rows already applied to on the master worksheet",
		Args:  cobra.NoArgs,
		RunE:  runFilter,
	}
	filterCmd.Flags().StringVar(&masterSheet, "master", "", "Worksheet holding the applied rows")
	filterCmd.Flags().StringVar(&keyColumn, "key", tracker.DefaultFilterKey, "Header of the matching key column")
	_ = filterCmd.MarkFlagRequired("master")

	rootCmd.AddCommand(provisionCmd, statsCmd, analyzeCmd, filterCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup opens the workbook and wires the tracker use case around it.
func setup() (*xlsx.Repository, tracker.UseCase, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("file not found: %s", filePath)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         "production",
		Encoding:     "console",
		ColorEnabled: false,
	})

	repo, err := xlsx.Open(filePath, logger)
	if err != nil {
		return nil, nil, err
	}

	uc := usecase.New(logger, repo, notify.NewLog(logger))
	return repo, uc, nil
}

func runProvision(cmd *cobra.Command, args []string) error {
	repo, uc, err := setup()
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx := context.Background()
	sc := model.Scope{UserID: "cli"}

	output, err := uc.EnsureAppliedColumn(ctx, sc, tracker.EnsureColumnInput{SheetID: sheetName})
	if err != nil {
		return fmt.Errorf("provisioning failed: %w", err)
	}

	if err := repo.Save(); err != nil {
		return err
	}

	if output.Created {
		fmt.Printf("Added %q column at column %d (%d checkbox rows)\n", tracker.AppliedHeader, output.Column, output.CheckboxRows)
	} else {
		fmt.Printf("%q column already present at column %d (%d checkbox rows)\n", tracker.AppliedHeader, output.Column, output.CheckboxRows)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	repo, uc, err := setup()
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx := context.Background()
	sc := model.Scope{UserID: "cli"}

	output, err := uc.Stats(ctx, sc, tracker.StatsInput{SheetID: sheetName, GroupBy: groupBy})
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	fmt.Printf("Applications: %d\n", output.TotalRows)
	fmt.Printf("Applied:      %d\n", output.Applied)
	fmt.Printf("Not applied:  %d\n", output.NotApplied)

	if output.GroupColumn != "" {
		fmt.Printf("\nApplied by %s:\n", output.GroupColumn)
		for _, g := range output.Groups {
			fmt.Printf("  %-24s %d\n", g.Group, g.Count)
		}
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	repo, uc, err := setup()
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx := context.Background()
	sc := model.Scope{UserID: "cli"}

	output, err := uc.Analyze(ctx, sc, tracker.AnalyzeInput{SheetID: sheetName})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	fmt.Printf("Total applied: %d\n", output.TotalApplied)
	fmt.Printf("Interviews:    %d (%.1f%%)\n", output.Interviews, output.InterviewRate)
	fmt.Printf("Offers:        %d (%.1f%%)\n", output.Offers, output.OfferRate)
	fmt.Printf("Ghosted:       %d (%.1f%%)\n", output.Ghosted, output.GhostedRate)

	if len(output.Statuses) > 0 {
		fmt.Println("\nBy status:")
		for _, s := range output.Statuses {
			fmt.Printf("  %-24s %d\n", s.Status, s.Count)
		}
	}

	if analysisOut != "" {
		if err := writeAnalysisCSV(analysisOut, output); err != nil {
			return err
		}
		fmt.Printf("\nReport written to %s\n", analysisOut)
	}
	return nil
}

// writeAnalysisCSV exports the funnel as Metric,Value rows.
func writeAnalysisCSV(path string, out tracker.AnalyzeOutput) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	records := [][]string{
		{"Metric", "Value"},
		{"total_applied", strconv.Itoa(out.TotalApplied)},
		{"interviews", strconv.Itoa(out.Interviews)},
		{"offers", strconv.Itoa(out.Offers)},
		{"ghosted", strconv.Itoa(out.Ghosted)},
		{"interview_rate", strconv.FormatFloat(out.InterviewRate, 'f', 2, 64)},
		{"offer_rate", strconv.FormatFloat(out.OfferRate, 'f', 2, 64)},
		{"ghosted_rate", strconv.FormatFloat(out.GhostedRate, 'f', 2, 64)},
	}
	for _, s := range out.Statuses {
		records = append(records, []string{"status:" + s.Status, strconv.Itoa(s.Count)})
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func runFilter(cmd *cobra.Command, args []string) error {
	repo, uc, err := setup()
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx := context.Background()
	sc := model.Scope{UserID: "cli"}

	output, err := uc.FilterApplied(ctx, sc, tracker.FilterInput{
		TargetSheetID: sheetName,
		MasterSheetID: masterSheet,
		KeyColumn:     keyColumn,
	})
	if err != nil {
		return fmt.Errorf("filtering failed: %w", err)
	}

	if err := repo.Save(); err != nil {
		return err
	}

	fmt.Printf("Applied on %s: %d\n", masterSheet, output.MasterApplied)
	fmt.Printf("Removed:       %d\n", output.Removed)
	fmt.Printf("Remaining:     %d\n", output.Remaining)
	return nil
}
