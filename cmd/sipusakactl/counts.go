package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func countsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Print the dashboard summary counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services()
			if err != nil {
				return err
			}

			counts, err := svc.Dashboard.Counts(cmd.Context())
			if err != nil {
				return fmt.Errorf("counts: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Pegawai\t%d\n", counts.Employees)
			fmt.Fprintf(w, "Pasangan\t%d\n", counts.Partners)
			fmt.Fprintf(w, "Wali\t%d\n", counts.Walis)
			fmt.Fprintf(w, "Anak\t%d\n", counts.Children)
			fmt.Fprintf(w, "Rumah\t%d\n", counts.Homes)
			fmt.Fprintf(w, "UMKM\t%d\n", counts.Umkm)
			if counts.Staff != nil {
				fmt.Fprintf(w, "Staf\t%d\n", *counts.Staff)
			} else {
				fmt.Fprintf(w, "Staf\t-\n")
			}
			return w.Flush()
		},
	}
}
