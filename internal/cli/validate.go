package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jointaug/pipeline"
)

// newValidateCmd creates the validate command, which parses and builds a
// pipeline file and lists its stages.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config]",
		Short: "Parse and build a pipeline file (.toml, .yaml, .yml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd, args[0])
		},
	}
}

func runValidate(ctx context.Context, cmd *cobra.Command, path string) error {
	logger := loggerFromContext(ctx)

	cfg, err := pipeline.Load(path)
	if err != nil {
		return err
	}
	pipe, err := cfg.Build()
	if err != nil {
		return err
	}

	for i, st := range pipe.Stages() {
		logger.Debug("stage", "index", i, "kind", st.Kind(), "transform", st.String())
	}
	logger.Info("pipeline ok", "path", path, "stages", pipe.Len(), "seed", cfg.Seed)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), pipe.String())
	return err
}
