package fetch

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestMergeDedupLaw checks the dedup-merge law: merging a page whose items
// partially overlap the existing collection never introduces duplicate keys,
// and for any overlapping key the post-merge entry is the most recently
// fetched version.
func TestMergeDedupLaw(t *testing.T) {
	properties := gopter.NewProperties(nil)

	genIDs := gen.SliceOf(gen.OneConstOf("a", "b", "c", "d", "e", "f", "g", "h"))

	properties.Property("merge never increases duplicate count and overlap takes the newest entry", prop.ForAll(
		func(initial []string, extra []string) bool {
			c := NewCollection(len(initial)+1, subjectKey)

			first := make([]subject, 0, len(initial))
			for _, id := range initial {
				first = append(first, subject{ID: id, Subject: "gen1-" + id})
			}
			c.Replace(Page[subject]{Items: first, Total: 64})

			second := make([]subject, 0, len(extra))
			for _, id := range extra {
				second = append(second, subject{ID: id, Subject: "gen2-" + id})
			}
			c.Merge(Page[subject]{Items: second, Total: 64})

			seen := make(map[string]bool)
			for _, item := range c.Items() {
				if seen[item.ID] {
					return false // duplicate key survived the merge
				}
				seen[item.ID] = true
			}
			for _, id := range extra {
				want := "gen2-" + id
				found := false
				for _, item := range c.Items() {
					if item.ID == id {
						found = item.Subject == want
						break
					}
				}
				if !found {
					return false // overlap did not take the newest fetch
				}
			}
			return true
		},
		genIDs, genIDs,
	))

	properties.Property("first-seen order is preserved for untouched keys", prop.ForAll(
		func(initial []string, extra []string) bool {
			c := NewCollection(len(initial)+1, subjectKey)

			first := make([]subject, 0, len(initial))
			for _, id := range initial {
				first = append(first, subject{ID: id})
			}
			c.Replace(Page[subject]{Items: first, Total: 64})

			before := keysOf(c.Items())

			second := make([]subject, 0, len(extra))
			for _, id := range extra {
				second = append(second, subject{ID: id})
			}
			c.Merge(Page[subject]{Items: second, Total: 64})

			after := keysOf(c.Items())
			if len(after) < len(before) {
				return false
			}
			for i, k := range before {
				if after[i] != k {
					return false
				}
			}
			return true
		},
		genIDs, genIDs,
	))

	properties.TestingRun(t)
}
