package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/approvals/internal/collection"
)

type listFlags struct {
	filter   string
	status   string
	sortBy   string
	desc     bool
	page     int
	pageSize int
	columns  []string
	showID   bool
}

func newListCmd(global *globalFlags) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := loadHeadless(cmd.Context(), global, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			records := h.records()

			view, err := flags.viewState(collection.StatusFacets(records))
			if err != nil {
				return err
			}
			p := collection.Project(records, view)

			out := cmd.OutOrStdout()
			switch p.State {
			case collection.StateEmpty:
				fmt.Fprintln(out, "No requests to display.")
				return nil
			case collection.StateNoMatch:
				fmt.Fprintln(out, "Your search didn't return any records.")
				return nil
			}

			cols := view.Columns.Visible()
			headers := make([]string, len(cols))
			for i, c := range cols {
				headers[i] = c.Header
			}
			rows := make([][]string, len(p.Rows))
			for i, r := range p.Rows {
				row := make([]string, len(cols))
				for j, c := range cols {
					row[j] = truncateTableCell(c.Cell(r))
				}
				rows[i] = row
			}
			fmt.Fprint(out, formatTable(headers, rows))
			fmt.Fprintf(out, "Page %d of %d %s\n", p.PageIndex+1, p.PageCount, p.Counter(0))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.filter, "filter", "f", "", "free-text filter")
	f.StringVarP(&flags.status, "status", "s", "", "only requests with this status")
	f.StringVar(&flags.sortBy, "sort", "", "sort by column ("+strings.Join(columnIDs(), ", ")+")")
	f.BoolVar(&flags.desc, "desc", false, "sort descending")
	f.IntVarP(&flags.page, "page", "p", 1, "page number, starting at 1")
	f.IntVar(&flags.pageSize, "page-size", collection.DefaultPageSize, "rows per page (10, 30 or 50)")
	f.StringSliceVarP(&flags.columns, "columns", "c", nil, "visible columns (default all but id)")
	f.BoolVar(&flags.showID, "id", false, "include the id column")
	return cmd
}

// viewState turns flags into a view, validating names against the loaded
// status facets and known columns.
func (f listFlags) viewState(facets []collection.Option) (collection.ViewState, error) {
	view := collection.NewViewState().WithFilter(f.filter)

	if f.status != "" {
		status := collection.FacetFor(facets, f.status)
		if status.Label != f.status {
			labels := make([]string, 0, len(facets))
			for _, o := range facets[1:] {
				labels = append(labels, o.Label)
			}
			return view, fmt.Errorf("unknown status %q (loaded: %s)", f.status, strings.Join(labels, ", "))
		}
		view = view.WithStatus(status)
	}

	if !validPageSize(f.pageSize) {
		return view, fmt.Errorf("page size must be one of %v, got %d", collection.PageSizeOptions, f.pageSize)
	}
	view = view.WithPageSize(f.pageSize)

	if len(f.columns) > 0 {
		for _, id := range f.columns {
			if _, ok := collection.LookupColumn(collection.ColumnID(strings.TrimSpace(id))); !ok {
				return view, fmt.Errorf("unknown column %q (known: %s)", id, strings.Join(columnIDs(), ", "))
			}
		}
		view = view.WithColumns(collection.ParseColumnSet(f.columns))
	}
	if f.showID && !view.Columns.Has(collection.ColumnSessionID) {
		view = view.ToggleColumn(collection.ColumnSessionID)
	}

	if f.sortBy != "" {
		if _, ok := collection.LookupColumn(collection.ColumnID(f.sortBy)); !ok {
			return view, fmt.Errorf("unknown sort column %q (known: %s)", f.sortBy, strings.Join(columnIDs(), ", "))
		}
		view = view.WithSort(collection.SortSpec{Column: collection.ColumnID(f.sortBy), Descending: f.desc})
	}

	if f.page < 1 {
		return view, fmt.Errorf("page must be >= 1, got %d", f.page)
	}
	return view.WithPage(f.page - 1), nil
}

func validPageSize(n int) bool {
	for _, v := range collection.PageSizeOptions {
		if v == n {
			return true
		}
	}
	return false
}

func columnIDs() []string {
	cols := collection.Columns()
	ids := make([]string, len(cols))
	for i, c := range cols {
		ids[i] = string(c.ID)
	}
	return ids
}
