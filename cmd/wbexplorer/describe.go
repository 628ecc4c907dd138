package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wbexplorer.org/internal/dashboard"
	"wbexplorer.org/internal/indicator"
	"wbexplorer.org/internal/selection"
)

func describeSubcommand(opts *options) *cobra.Command {
	var x, y string
	cmd := &cobra.Command{
		Use:   "describe [dataset-key...]",
		Short: "Print summary statistics (and optionally a correlation) for the default countries",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := opts.loadApplication(opts.logger(os.Stderr))
			if err != nil {
				return err
			}
			return describe(cmd.OutOrStdout(), application.Catalog, application.Config.DefaultCountries, args, x, y)
		},
	}
	cmd.Flags().StringVar(&x, "x", "", "Dataset key on the correlation X axis")
	cmd.Flags().StringVar(&y, "y", "", "Dataset key on the correlation Y axis")
	return cmd
}

func describe(w io.Writer, catalog *indicator.Catalog, countries, keys []string, x, y string) error {
	if len(keys) == 0 {
		keys = catalog.Keys()
	}

	for _, key := range keys {
		ds, ok := catalog.Get(key)
		if !ok {
			return fmt.Errorf("unknown dataset %q (available: %s)", key, strings.Join(catalog.Keys(), ", "))
		}
		if err := writeSummary(w, ds, selection.Intersect(countries, ds.Table.Countries())); err != nil {
			return err
		}
	}

	if x == "" && y == "" {
		return nil
	}

	view := dashboard.Build(catalog, dashboard.Selection{Countries: countries, CorrelationX: x, CorrelationY: y})
	for _, m := range view.Messages {
		if _, err := fmt.Fprintf(w, "%s: %s\n", m.Level, m.Text); err != nil {
			return err
		}
	}
	if c := view.Correlation; c != nil {
		_, err := fmt.Fprintf(w, "%s vs %s: r = %s, p = %s, n = %d\n", c.Y.Label, c.X.Label, c.RText, c.PText, c.N)
		return err
	}
	return nil
}

func writeSummary(w io.Writer, ds *indicator.Dataset, countries []string) error {
	first, last, _ := ds.Table.YearRange()
	if _, err := fmt.Fprintf(w, "%s [%s] %d-%d, %d observations\n", ds.AxisLabel(), ds.Table.IndicatorCode(), first, last, ds.Table.Len()); err != nil {
		return err
	}

	table := dashboard.Summarize(ds, countries)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "country\t%s\t\n", strings.Join(table.Columns, "\t"))
	for _, row := range table.Rows {
		fmt.Fprintf(tw, "%s\t%s\t\n", row.Country, strings.Join(row.Values, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
