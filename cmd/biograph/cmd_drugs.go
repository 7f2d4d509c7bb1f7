package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDrugsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drugs",
		Short: "List available drug treatments",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := loadTaxonomy(cmd)
			if err != nil {
				return err
			}

			if jsonOut(cmd) {
				return printJSON(map[string]interface{}{
					"drugs": tables.Drugs,
					"count": len(tables.Drugs),
				})
			}

			for _, d := range tables.Drugs {
				fmt.Printf("%s (%s)\n", d.Name, d.ID)
				fmt.Printf("  mechanism: %s\n", d.Mechanism)
				fmt.Printf("  pathways:  %s\n", strings.Join(d.TargetPathways, ", "))
				if len(d.TargetOmics) > 0 {
					layers := make([]string, 0, len(d.TargetOmics))
					for _, o := range d.TargetOmics {
						layers = append(layers, string(o))
					}
					fmt.Printf("  layers:    %s\n", strings.Join(layers, ", "))
				}
				fmt.Println()
			}
			return nil
		},
	}
}
