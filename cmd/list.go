package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alantheprice/calcmenu/pkg/exercises"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available menus",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printCatalog(cmd.OutOrStdout())
	},
}

func printCatalog(w io.Writer) {
	title := cases.Title(language.Und)
	for _, def := range exercises.Definitions() {
		fmt.Fprintf(w, "%-8s %s\n", title.String(def.Name), def.Summary)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
