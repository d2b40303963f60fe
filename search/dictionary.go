package search

import "github.com/kartolab/marshrutka/core"

// Dictionary indexes synonym groups for single-hop query expansion.
// A token may belong to several groups; expansion unions them all.
type Dictionary struct {
	groups  []*core.SynonymGroup
	byToken map[string][]int // token -> indexes into groups
}

// NewDictionary builds a dictionary from synonym groups. Nil groups are
// skipped; an empty dictionary expands every token to itself.
func NewDictionary(groups []*core.SynonymGroup) *Dictionary {
	d := &Dictionary{
		byToken: make(map[string][]int),
	}
	for _, group := range groups {
		if group == nil {
			continue
		}
		idx := len(d.groups)
		d.groups = append(d.groups, group)
		for _, token := range group.Tokens {
			d.byToken[token] = append(d.byToken[token], idx)
		}
	}
	return d
}

// Len returns the number of groups in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.groups)
}

// Expand returns the input tokens plus every member of every group an
// input token belongs to, deduplicated, in first-seen order.
//
// Expansion is single hop: only groups the input tokens literally belong
// to contribute; groups reachable through an added synonym do not.
func (d *Dictionary) Expand(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	expanded := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !seen[token] {
			seen[token] = true
			expanded = append(expanded, token)
		}
		for _, idx := range d.byToken[token] {
			for _, member := range d.groups[idx].Tokens {
				if !seen[member] {
					seen[member] = true
					expanded = append(expanded, member)
				}
			}
		}
	}
	return expanded
}
