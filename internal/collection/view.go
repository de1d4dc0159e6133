package collection

// PageSizeOptions are the page sizes offered in preferences.
var PageSizeOptions = []int{10, 30, 50}

// DefaultPageSize is used when no valid page size is configured.
const DefaultPageSize = 10

// SortSpec is a user-chosen ordering. The zero value means the default
// recency order.
type SortSpec struct {
	Column     ColumnID
	Descending bool
}

// IsZero reports whether no explicit sort has been chosen.
func (s SortSpec) IsZero() bool {
	return s.Column == ""
}

// ViewState holds every user-controlled view parameter. It is a value:
// the With* methods return an updated copy and never touch the receiver.
type ViewState struct {
	Filter    string
	Status    Option
	Sort      SortSpec
	PageSize  int
	PageIndex int
	Columns   ColumnSet
	WrapLines bool
}

// NewViewState returns the initial view: no filters, default order, first
// page, default columns.
func NewViewState() ViewState {
	return ViewState{
		Status:   AllStatus,
		PageSize: DefaultPageSize,
		Columns:  DefaultColumns(),
	}
}

// WithFilter sets the free text filter and returns to the first page.
func (v ViewState) WithFilter(text string) ViewState {
	v.Filter = text
	v.PageIndex = 0
	return v
}

// WithStatus sets the status facet selection and returns to the first page.
func (v ViewState) WithStatus(o Option) ViewState {
	v.Status = o
	v.PageIndex = 0
	return v
}

// ClearFilters drops the text filter and status selection.
func (v ViewState) ClearFilters() ViewState {
	return v.WithFilter("").WithStatus(AllStatus)
}

// Filtering reports whether any filter is active.
func (v ViewState) Filtering() bool {
	return v.Filter != "" || v.Status != AllStatus
}

// WithSort sets an explicit sort. The zero SortSpec restores default order.
func (v ViewState) WithSort(s SortSpec) ViewState {
	if !s.IsZero() {
		if _, ok := LookupColumn(s.Column); !ok {
			return v
		}
	}
	v.Sort = s
	return v
}

// ToggleSort sorts ascending by col, or flips direction if col is already
// the sort column.
func (v ViewState) ToggleSort(col ColumnID) ViewState {
	if v.Sort.Column == col {
		return v.WithSort(SortSpec{Column: col, Descending: !v.Sort.Descending})
	}
	return v.WithSort(SortSpec{Column: col})
}

// WithPageSize sets the page size and returns to the first page.
// Non-positive sizes fall back to DefaultPageSize.
func (v ViewState) WithPageSize(n int) ViewState {
	if n <= 0 {
		n = DefaultPageSize
	}
	v.PageSize = n
	v.PageIndex = 0
	return v
}

// NextPageSize cycles through PageSizeOptions.
func (v ViewState) NextPageSize() ViewState {
	for i, n := range PageSizeOptions {
		if n == v.PageSize {
			return v.WithPageSize(PageSizeOptions[(i+1)%len(PageSizeOptions)])
		}
	}
	return v.WithPageSize(PageSizeOptions[0])
}

// WithPage sets the 0-based page index. Out of range values are clamped at
// projection time.
func (v ViewState) WithPage(index int) ViewState {
	if index < 0 {
		index = 0
	}
	v.PageIndex = index
	return v
}

// WithColumns replaces the visible column set.
func (v ViewState) WithColumns(set ColumnSet) ViewState {
	if len(set) == 0 {
		return v
	}
	v.Columns = set.clone()
	return v
}

// ToggleColumn flips the visibility of one column.
func (v ViewState) ToggleColumn(id ColumnID) ViewState {
	v.Columns = v.Columns.Toggle(id)
	return v
}

// WithWrapLines sets the wrap-lines preference.
func (v ViewState) WithWrapLines(wrap bool) ViewState {
	v.WrapLines = wrap
	return v
}
