package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wayfind-dev/wayfind/internal/demo"
	"github.com/wayfind-dev/wayfind/pkg/route"
	"github.com/wayfind-dev/wayfind/pkg/store"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the demo application's route table",
		Long: `Print the demo application's route table in match order.

Routes match top to bottom; the first structural match wins.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes := store.NewMemoryStore()
			defer notes.Close()
			app, err := demo.NewApp(notes)
			if err != nil {
				return err
			}

			table := route.NewTable()
			app.Register(table.MustAdd)

			for i, def := range table.Routes() {
				params := def.Pattern().ParamNames()
				line := fmt.Sprintf("%2d  %s", i+1, def.Pattern().String())
				if len(params) > 0 {
					line += "  (params: " + strings.Join(params, ", ") + ")"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
