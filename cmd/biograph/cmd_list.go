package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored graph snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			infos, err := st.ListGraphs(context.Background())
			if err != nil {
				return err
			}

			if jsonOut(cmd) {
				return printJSON(map[string]interface{}{
					"graphs": infos,
					"count":  len(infos),
				})
			}

			if len(infos) == 0 {
				fmt.Println("No snapshots stored.")
				return nil
			}
			for _, info := range infos {
				kind := "baseline"
				if info.Drug != "" {
					kind = "perturbed (" + info.Drug + ")"
				}
				fmt.Printf("  %-24s %-24s %5d nodes %5d links  %s\n",
					info.Name, kind, info.NodeCount, info.LinkCount,
					info.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteGraph(context.Background(), args[0]); err != nil {
				return err
			}
			if jsonOut(cmd) {
				return printJSON(map[string]string{"deleted": args[0]})
			}
			fmt.Printf("Deleted snapshot %q\n", args[0])
			return nil
		},
	}
}
