package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/dto"
)

func exportCmd(opts *options) *cobra.Command {
	var (
		out  string
		q    dto.TableQueryRequest
		desc bool
	)

	cmd := &cobra.Command{
		Use:   "export <entity>",
		Short: "Write an entity table to an .xlsx file",
		Long: `Export writes the table of one entity to a spreadsheet, applying the same
search, filters and sort as the dashboard's table view.

Entities: employees, partners, walis, children, homes, umkm, staff.

  sipusakactl export children --filter gender:P --sort-column childrenName
  sipusakactl export employees --search-column employeeName --search-term budi -o pegawai.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if desc {
				q.SortOrder = "descend"
			}

			svc, err := opts.services()
			if err != nil {
				return err
			}

			buf, filename, err := svc.Export.Export(cmd.Context(), args[0], q.Query())
			if err != nil {
				return fmt.Errorf("export %s: %w", args[0], err)
			}

			target := out
			if target == "" {
				target = filename
			} else if strings.HasSuffix(target, string(os.PathSeparator)) {
				target = filepath.Join(target, filename)
			}
			if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file or directory ending in / (default: generated name)")
	cmd.Flags().StringVar(&q.SearchColumn, "search-column", "", "column to search")
	cmd.Flags().StringVar(&q.SearchTerm, "search-term", "", "case-insensitive search term")
	cmd.Flags().StringArrayVar(&q.Filter, "filter", nil, "column:value filter, repeatable")
	cmd.Flags().StringVar(&q.SortColumn, "sort-column", "", "column to sort by")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")

	return cmd
}
