package main

import (
	"errors"
	"fmt"

	"therapist-directory/cmd/bootstrap"
	"therapist-directory/internal/delivery/cli"
	"therapist-directory/internal/delivery/dto"
	"therapist-directory/internal/domain/entity"
	"therapist-directory/internal/usecase"
	"therapist-directory/pkg/validator"

	"github.com/spf13/cobra"
)

var (
	searchReq   dto.SearchTherapistRequest
	searchTheme string
	noRating    bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Filter the directory and print matching therapists",
	Long: `Filter the directory and print matching therapists as cards.

Bands:
  --experience  0-5 | 5-10 | 10-15 | 15+
  --fee         under-2000 | 2000-4000 | 4000-6000 | above-6000
  --mode        In-person | Online | Both`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	flags := searchCmd.Flags()
	flags.StringVarP(&searchReq.Search, "search", "s", "", "text matched against name, expertise and education")
	flags.StringVar(&searchReq.City, "city", "", "exact city")
	flags.StringVar(&searchReq.Gender, "gender", "", "exact gender")
	flags.StringVar(&searchReq.Experience, "experience", "", "experience band")
	flags.StringVar(&searchReq.Fee, "fee", "", "fee band")
	flags.StringVar(&searchReq.Mode, "mode", "", "consultation mode")
	flags.StringVar(&searchTheme, "theme", string(entity.ThemeLight), "light or dark")
	flags.BoolVar(&noRating, "no-rating", false, "omit the star rating")
}

func runSearch(cmd *cobra.Command, args []string) error {
	v := validator.NewValidator()
	if err := v.Validate(&searchReq); err != nil {
		for _, msg := range v.FormatValidationErrors(err) {
			fmt.Fprintln(cmd.ErrOrStderr(), msg)
		}
		return errors.New("invalid filters")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app, err := bootstrap.NewDirectory(cfg, bootstrap.Options{DisableRating: noRating, LogOutput: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	defer app.Close()

	printer := cli.NewCardPrinter(cmd.OutOrStdout(), entity.ParseTheme(searchTheme))

	result, err := app.Directory.Search(cmd.Context(), &searchReq)
	if err != nil {
		var datasetErr *usecase.DatasetError
		if errors.As(err, &datasetErr) {
			printer.PrintError(datasetErr.Message())
		}
		return err
	}

	return printer.Print(result)
}
