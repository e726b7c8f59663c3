package fetch

// Page is one slice of an offset/limit endpoint's result set.
type Page[T any] struct {
	Items []T
	Total int
}

// Collection accumulates pages from an offset/limit endpoint into an ordered
// list that is unique by key. A later fetch of an already-present key
// overwrites the stored item in place, preserving first-seen order for
// untouched keys; servers are allowed to return overlapping items across
// page boundaries and the merge absorbs the overlap.
//
// Replace and Reset start a new epoch. A load-more issued against an earlier
// epoch must not be merged: callers capture Epoch when the fetch departs and
// drop the result if it no longer matches.
type Collection[T any] struct {
	key      func(T) string
	pageSize int

	items      []T
	index      map[string]int
	offset     int
	total      int
	totalKnown bool
	epoch      uint64

	loadingMore bool
}

// NewCollection builds an empty collection. Key must return a stable
// identity for an item; pageSize must be positive.
func NewCollection[T any](pageSize int, key func(T) string) *Collection[T] {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &Collection[T]{
		key:      key,
		pageSize: pageSize,
		index:    make(map[string]int),
	}
}

// Replace commits an initial load: items are replaced wholesale, the total
// is taken from the page, the offset advances past the first page, and a new
// epoch begins so in-flight load-mores against the old list are orphaned.
func (c *Collection[T]) Replace(page Page[T]) {
	c.items = nil
	c.index = make(map[string]int)
	c.merge(page.Items)
	c.total = page.Total
	c.totalKnown = true
	c.offset = c.pageSize
	c.epoch++
	c.loadingMore = false
}

// Merge commits a load-more page: new items are deduplicated into the
// existing list and the offset advances one page.
func (c *Collection[T]) Merge(page Page[T]) {
	c.merge(page.Items)
	c.total = page.Total
	c.totalKnown = true
	c.offset += c.pageSize
	c.loadingMore = false
}

func (c *Collection[T]) merge(items []T) {
	for _, item := range items {
		k := c.key(item)
		if at, ok := c.index[k]; ok {
			c.items[at] = item
			continue
		}
		c.index[k] = len(c.items)
		c.items = append(c.items, item)
	}
}

// HasMore reports whether another page exists. Until the first page has
// reported a total, there is nothing to extend.
func (c *Collection[T]) HasMore() bool {
	return c.totalKnown && len(c.items) < c.total
}

// BeginMore marks a load-more in progress and reports whether the caller
// should actually fetch: it is a no-op when the collection is complete or a
// load-more is already running.
func (c *Collection[T]) BeginMore() bool {
	if c.loadingMore || !c.HasMore() {
		return false
	}
	c.loadingMore = true
	return true
}

// EndMore clears the load-more flag without merging, used when the delta
// fetch failed. Already-loaded items are kept.
func (c *Collection[T]) EndMore() {
	c.loadingMore = false
}

// LoadingMore reports whether a load-more fetch is in flight.
func (c *Collection[T]) LoadingMore() bool { return c.loadingMore }

// Items returns the accumulated list in first-seen order.
func (c *Collection[T]) Items() []T { return c.items }

// Len returns the number of accumulated items.
func (c *Collection[T]) Len() int { return len(c.items) }

// Offset returns the offset the next page should be fetched at.
func (c *Collection[T]) Offset() int { return c.offset }

// PageSize returns the configured page size.
func (c *Collection[T]) PageSize() int { return c.pageSize }

// Total returns the server-reported total and whether one is known yet.
func (c *Collection[T]) Total() (int, bool) { return c.total, c.totalKnown }

// Epoch identifies the current item-set lineage. Capture it when issuing a
// load-more and discard the result if it has moved on.
func (c *Collection[T]) Epoch() uint64 { return c.epoch }

// Reset empties the collection, forgetting the total and offset, and begins
// a new epoch. Used when the active profile changes.
func (c *Collection[T]) Reset() {
	c.items = nil
	c.index = make(map[string]int)
	c.offset = 0
	c.total = 0
	c.totalKnown = false
	c.epoch++
	c.loadingMore = false
}
