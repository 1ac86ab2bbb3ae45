package cmd

import (
	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search EXPRESSION",
	Short: "Search files across all buckets",
	Long:  `Searches files in every bucket with a service-side expression, e.g. "mimeType='image/png' AND size>1024".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, logg, err := newStorage()
		if err != nil {
			return err
		}
		defer logg.Sync()

		env, err := st.SearchFiles(cmd.Context(), args[0], listOptionsFromFlags(cmd))
		if err != nil {
			return err
		}
		return printEnvelope(cmd.OutOrStdout(), env)
	},
}

func init() {
	addListFlags(searchCmd)
	RootCmd.AddCommand(searchCmd)
}
