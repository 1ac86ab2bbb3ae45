package cmd

import (
	"storage-sdk/feature/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bucketsCmd groups the bucket commands
var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "Create and list storage buckets",
}

// bucketsCreateCmd represents the buckets create command
var bucketsCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a bucket",
	Long:  `Creates a bucket. Buckets are public unless --private is given. The service rejects duplicate names and the reserved name "root".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, logg, err := newStorage()
		if err != nil {
			return err
		}
		defer logg.Sync()

		private, _ := cmd.Flags().GetBool("private")
		logg.Debug("Creating bucket", zap.String("name", args[0]), zap.Bool("public", !private))

		env, err := st.CreateBucket(cmd.Context(), args[0], !private)
		if err != nil {
			return err
		}
		return printEnvelope(cmd.OutOrStdout(), env)
	},
}

// bucketsListCmd represents the buckets list command
var bucketsListCmd = &cobra.Command{
	Use:   "list [EXPRESSION]",
	Short: "List buckets, optionally filtered by an expression",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, logg, err := newStorage()
		if err != nil {
			return err
		}
		defer logg.Sync()

		var listArgs []storage.ListArg
		if len(args) == 1 {
			listArgs = append(listArgs, storage.Expression(args[0]))
		}
		if opts := listOptionsFromFlags(cmd); opts != nil {
			listArgs = append(listArgs, opts)
		}

		env, err := st.ListBuckets(cmd.Context(), listArgs...)
		if err != nil {
			return err
		}
		return printEnvelope(cmd.OutOrStdout(), env)
	},
}

func init() {
	bucketsCreateCmd.Flags().Bool("private", false, "Make files in the bucket private by default")
	addListFlags(bucketsListCmd)

	bucketsCmd.AddCommand(bucketsCreateCmd)
	bucketsCmd.AddCommand(bucketsListCmd)
	RootCmd.AddCommand(bucketsCmd)
}
