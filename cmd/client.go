package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"storage-sdk/core/config"
	"storage-sdk/core/logger"
	"storage-sdk/core/transport"
	"storage-sdk/feature/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newStorage loads configuration and builds the facade over the HTTP transport.
func newStorage() (*storage.Storage, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := transport.NewClient(cfg.Client, logg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return storage.New(client), logg, nil
}

// printEnvelope writes env as indented JSON and turns envelope errors into a
// command error so the process exits non-zero.
func printEnvelope(w io.Writer, env *transport.Envelope) error {
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return env.Err()
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 0, "Maximum number of results (with --offset)")
	cmd.Flags().Int("offset", 0, "Number of results to skip (with --limit)")
	cmd.Flags().Int("page", 0, "Page number (with --size)")
	cmd.Flags().Int("size", 0, "Page size (with --page)")
	cmd.Flags().String("sort-by", "", "Field to sort on")
	cmd.Flags().String("sort-direction", "", "Sort direction: asc or desc")
	cmd.Flags().Bool("with-total", false, "Include the total count in the response")
}

// listOptionsFromFlags returns nil when no list flag was set.
func listOptionsFromFlags(cmd *cobra.Command) *storage.ListOptions {
	flags := cmd.Flags()
	changed := false
	for _, name := range []string{"limit", "offset", "page", "size", "sort-by", "sort-direction", "with-total"} {
		if flags.Changed(name) {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	opts := &storage.ListOptions{}
	opts.Limit, _ = flags.GetInt("limit")
	opts.Offset, _ = flags.GetInt("offset")
	opts.Page, _ = flags.GetInt("page")
	opts.Size, _ = flags.GetInt("size")
	opts.SortBy, _ = flags.GetString("sort-by")
	direction, _ := flags.GetString("sort-direction")
	opts.SortDirection = storage.SortDirection(direction)
	opts.WithTotal, _ = flags.GetBool("with-total")
	return opts
}
