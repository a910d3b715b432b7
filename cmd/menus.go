package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alantheprice/calcmenu/pkg/exercises"
)

// newMenuCmd creates the subcommand that runs one catalogue menu.
func newMenuCmd(def exercises.Definition) *cobra.Command {
	name := def.Name
	return &cobra.Command{
		Use:   name,
		Short: "Open the " + def.Title,
		Long:  "Open the " + def.Title + ": " + def.Summary + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runMenu(cmd, cfg, name)
		},
	}
}

func init() {
	for _, def := range exercises.Definitions() {
		rootCmd.AddCommand(newMenuCmd(def))
	}
}
