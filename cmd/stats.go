package cmd

import (
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show file count and size statistics for the whole storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, logg, err := newStorage()
		if err != nil {
			return err
		}
		defer logg.Sync()

		env, err := st.GetStats(cmd.Context())
		if err != nil {
			return err
		}
		return printEnvelope(cmd.OutOrStdout(), env)
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)
}
