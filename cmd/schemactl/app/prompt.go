package app

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ThiRaBrTNK/Radarr/pkg/prompt"
)

const keyAdvanced = "advanced"

func (a *app) promptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt <kind>",
		Short: "Interactively fill a settings kind and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := lookupKind(args[0])
			if err != nil {
				return err
			}
			fields, err := defaultFields(kind)
			if err != nil {
				return err
			}

			collector := prompt.New(
				prompt.WithDriver(a.driver),
				prompt.WithAdvanced(a.v.GetBool(keyAdvanced)),
				prompt.WithLogger(a.logger.Named("prompt")),
			)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			collected, err := collector.Collect(ctx, fields)
			if err != nil {
				return err
			}
			bound, err := kind.Schema.BindValue(collected)
			if err != nil {
				return err
			}
			a.logger.Debug("settings collected", zap.String("kind", kind.Name))
			return a.writeJSON(bound)
		},
	}
	cmd.Flags().Bool(keyAdvanced, false, "Also prompt for advanced settings")
	if err := a.v.BindPFlag(keyAdvanced, cmd.Flags().Lookup(keyAdvanced)); err != nil {
		panic(err)
	}
	return cmd
}
