package callback

import (
	"slices"
)

// CallSite is a function name with the number of arguments it was called with.
type CallSite struct {
	Name  string
	Arity int
}

// Calls is an append-only set of call sites, kept in order of first appearance.
type Calls struct {
	entries []CallSite
	index   map[CallSite]bool
}

// NewCalls creates an empty call site registry.
func NewCalls() *Calls {
	return &Calls{index: make(map[CallSite]bool)}
}

// Add records a call site, returns false if it is already recorded.
func (c *Calls) Add(name string, arity int) bool {
	site := CallSite{name, arity}
	if c.index[site] {
		return false
	}

	c.index[site] = true
	c.entries = append(c.entries, site)
	return true
}

// Merge adds all entries of other, returns the number of new entries.
func (c *Calls) Merge(other *Calls) int {
	added := 0
	for _, site := range other.entries {
		if c.Add(site.Name, site.Arity) {
			added++
		}
	}
	return added
}

// Entries returns recorded call sites.
func (c *Calls) Entries() []CallSite {
	return slices.Clone(c.entries)
}

// Arities returns all recorded arities of a function.
func (c *Calls) Arities(name string) []int {
	var result []int
	for _, site := range c.entries {
		if site.Name == name {
			result = append(result, site.Arity)
		}
	}
	return result
}

// Conflicts returns names of functions recorded with more than one arity.
func (c *Calls) Conflicts() []string {
	var result []string
	counts := make(map[string]int)
	for _, site := range c.entries {
		counts[site.Name]++
		if counts[site.Name] == 2 {
			result = append(result, site.Name)
		}
	}
	return result
}

func (c *Calls) Len() int {
	return len(c.entries)
}
