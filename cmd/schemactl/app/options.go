package app

import (
	"github.com/spf13/cobra"

	"github.com/ThiRaBrTNK/Radarr/pkg/settings"
)

func (a *app) optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options [catalog]",
		Short: "Print the select options of a catalog, or list catalogs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			registry := settings.Catalogs()
			if len(args) == 0 {
				return a.writeJSON(registry.Names())
			}
			options, err := registry.ResolveName(args[0])
			if err != nil {
				return err
			}
			return a.writeJSON(options)
		},
	}
}
