package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbagde424/ElectionAT-sub001/internal/app"
	"github.com/hbagde424/ElectionAT-sub001/internal/seed"
)

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Load geography, parties and election years from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := seed.Load(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(a *app.App) error {
				counts, err := seed.New(a.Log, a.Repos, a.Services).Run(cmd.Context(), f)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded: %s\n", counts)
				return nil
			})
		},
	}
}
