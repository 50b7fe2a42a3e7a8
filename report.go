package toc2jekyll

// ItemStatus is the outcome for one top-level TOC item.
type ItemStatus string

// Item outcomes.
const (
	ItemCard    ItemStatus = "card"    // a card was added to the main page
	ItemSkipped ItemStatus = "skipped" // no card
)

// ItemResult records what happened to a top-level item.
type ItemResult struct {
	Name   string
	Status ItemStatus
	Href   string // Card target when Status is ItemCard
	Reason string // Why the item was skipped
}

// PageKind distinguishes generated pages.
type PageKind string

// Page kinds.
const (
	PageMain     PageKind = "main"
	PageSubpage  PageKind = "subpage"
	PageInternal PageKind = "internal"
)

// PageStatus is the write outcome of a page.
type PageStatus string

// Page outcomes.
const (
	PageWritten   PageStatus = "written"
	PageUnchanged PageStatus = "unchanged" // existing file differs at most in dates
	PageDryRun    PageStatus = "dry-run"   // would have been written
	PageFailed    PageStatus = "failed"
)

// PageResult records one page write.
type PageResult struct {
	Kind      PageKind
	Path      string
	Permalink string
	Status    PageStatus
	Err       error
}

// Report summarizes a generation run.
type Report struct {
	Items []ItemResult
	Pages []PageResult
}

// Count returns the number of pages with the given status.
func (r *Report) Count(status PageStatus) int {
	n := 0
	for _, p := range r.Pages {
		if p.Status == status {
			n++
		}
	}
	return n
}

// Cards returns the number of items that produced a card.
func (r *Report) Cards() int {
	n := 0
	for _, it := range r.Items {
		if it.Status == ItemCard {
			n++
		}
	}
	return n
}

// Page returns the result for path and whether it exists.
func (r *Report) Page(path string) (PageResult, bool) {
	for _, p := range r.Pages {
		if p.Path == path {
			return p, true
		}
	}
	return PageResult{}, false
}
