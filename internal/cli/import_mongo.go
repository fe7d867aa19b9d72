package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hbagde424/ElectionAT-sub001/internal/app"
	"github.com/hbagde424/ElectionAT-sub001/internal/legacy/mongoimport"
)

func importMongoCommand() *cobra.Command {
	var uri, database string
	var collections []string
	cmd := &cobra.Command{
		Use:   "import-mongo",
		Short: "Copy records from the legacy MongoDB database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				if uri == "" {
					uri = a.Cfg.MongoURI
				}
				if database == "" {
					database = a.Cfg.MongoDB
				}
				src, err := mongoimport.Connect(cmd.Context(), uri, database)
				if err != nil {
					return err
				}
				defer func() { _ = src.Close(context.Background()) }()

				results, err := mongoimport.New(a.Log, src, a.Repos, a.Services).Run(cmd.Context(), collections...)
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "COLLECTION\tIMPORTED\tEXISTING\tLINKED\tFAILED")
				for _, r := range results {
					fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", r.Collection, r.Imported, r.Existing, r.Linked, r.Failed)
				}
				_ = w.Flush()
				return err
			})
		},
	}
	cmd.Flags().StringVar(&uri, "uri", "", "MongoDB connection string (defaults to MONGO_URI)")
	cmd.Flags().StringVar(&database, "db", "", "database name (defaults to MONGO_DB)")
	cmd.Flags().StringSliceVar(&collections, "collection", nil, "limit the import to these collections")
	return cmd
}
