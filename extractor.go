package cinelist

// Extraction holds the outcome of extracting records from one listing page.
type Extraction struct {
	// Records are the extracted title entries, in document order, with
	// untitled items already dropped. Duplicates are not yet removed;
	// that happens when the records are folded into a Dataset.
	Records []Record

	// ItemsFound is the number of item elements the locator identified.
	// Zero means the page had no recognizable listing structure.
	ItemsFound int

	// Skipped counts items abandoned because their markup caused the
	// field extraction to fail unexpectedly.
	Skipped int
}

// Recognized reports whether the page contained any recognizable listing
// structure. An unrecognized page is a normal outcome, not a fault.
func (e *Extraction) Recognized() bool {
	return e.ItemsFound > 0
}

// ListExtractor extracts title records from listing page HTML.
type ListExtractor interface {
	// Extract parses the HTML, locates item elements, and resolves the
	// fields of each. Unresolved fields are nil/empty, never errors; an
	// item whose extraction fails outright is skipped and counted.
	// Returns EINVALID only if the document cannot be parsed at all.
	Extract(html string) (*Extraction, error)
}
