package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"trainer-market-service/internal/adapters/repositories"
	"trainer-market-service/internal/domain"
	"trainer-market-service/internal/services"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var (
	citiesStates   []string
	citiesMaxCrime float64
	citiesLean     string
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "Print the cities matching a filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		explorer, err := openExplorer(cmd.Context())
		if err != nil {
			return err
		}

		lean, err := domain.ParseLeanFilter(citiesLean)
		if err != nil {
			return err
		}

		states := citiesStates
		if !cmd.Flags().Changed("state") {
			states = explorer.States()
		}

		v := explorer.View(cmd.Context(), domain.NewFilterCriteria(states, citiesMaxCrime, lean))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d of %d cities match the criteria.\n\n", v.Matched, v.Total)
		if v.Matched > 0 {
			formatCities(out, v.Filtered)
		}
		return nil
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print the target market shortlist",
	RunE: func(cmd *cobra.Command, args []string) error {
		explorer, err := openExplorer(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		recs := explorer.Recommendations()
		if len(recs) == 0 {
			fmt.Fprintln(out, services.NoRecommendationsNotice)
			return nil
		}

		fmt.Fprintln(out, "Top picks for launching a premium personal-training studio:")
		for _, r := range recs {
			fmt.Fprintf(out, "- %s: CrimeIndex %d, TrainerDensity %.1f, %d gyms, %d trainers\n",
				r.Label(), r.CrimeIndex, r.TrainerDensity, r.Gyms, r.Trainers)
		}
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print median metrics over the full table",
	RunE: func(cmd *cobra.Command, args []string) error {
		explorer, err := openExplorer(cmd.Context())
		if err != nil {
			return err
		}

		s := explorer.Summary()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Cities\t%d\n", s.CityCount)
		fmt.Fprintf(w, "States\t%v\n", s.States)
		fmt.Fprintf(w, "Median gyms / city\t%.0f\n", s.MedianGyms)
		fmt.Fprintf(w, "Median trainers / city\t%.0f\n", s.MedianTrainers)
		fmt.Fprintf(w, "Median crime index\t%.0f (higher is safer)\n", s.MedianCrimeIndex)
		return w.Flush()
	},
}

func init() {
	citiesCmd.Flags().StringSliceVar(&citiesStates, "state", nil, "state codes to include (default: all)")
	citiesCmd.Flags().Float64Var(&citiesMaxCrime, "max-crime", services.DefaultMaxTotalCrimePer1k, "max total crime per 1k residents")
	citiesCmd.Flags().StringVar(&citiesLean, "lean", string(domain.LeanAny), "Any, Democratic-leaning or Republican-leaning")

	rootCmd.AddCommand(citiesCmd, recommendCmd, summaryCmd)
}

func openExplorer(ctx context.Context) (*services.Explorer, error) {
	repo, closeRepo, err := repositories.Open(ctx, cfg.Store)
	if err != nil {
		return nil, eris.Wrap(err, "open explorer")
	}
	defer closeRepo()

	ds, err := repositories.LoadDataset(ctx, repo)
	if err != nil {
		return nil, err
	}
	return services.NewExplorer(ds), nil
}

func formatCities(w io.Writer, recs []domain.CityRecord) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CITY\tSTATE\tGYMS\tTRAINERS\tTRAINER DENSITY\tTOTAL CRIME/1K\tCRIME INDEX\tLEAN\tMAYOR")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.1f\t%.2f\t%d\t%s\t%s\n",
			r.City, r.State, r.Gyms, r.Trainers, r.TrainerDensity,
			r.TotalCrimePer1k, r.CrimeIndex, r.Lean, r.Mayor)
	}
	tw.Flush()
}
