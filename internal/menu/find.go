package menu

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Find resolves a title query to an item. Segments separated by "/" descend
// one level each ("Options/PWM/Frequency"); a single segment searches the
// whole population. Each segment prefers an exact case-insensitive title,
// then a prefix, then the closest fuzzy match, ties going to the earlier
// declaration.
func (g *Graph) Find(query string) (*Item, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, false
	}
	if !strings.Contains(trimmed, "/") {
		return bestMatch(g.Items(), trimmed)
	}
	var scope *Item
	var found *Item
	for _, segment := range strings.Split(trimmed, "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		candidates := make([]*Item, 0)
		g.Walk(func(item *Item) bool {
			if item.parent == scope {
				candidates = append(candidates, item)
			}
			return true
		})
		match, ok := bestMatch(candidates, segment)
		if !ok {
			return nil, false
		}
		found = match
		scope = match
	}
	return found, found != nil
}

func bestMatch(items []*Item, query string) (*Item, bool) {
	if len(items) == 0 {
		return nil, false
	}
	for _, item := range items {
		if strings.EqualFold(item.Title, query) {
			return item, true
		}
	}
	lower := strings.ToLower(query)
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Title), lower) {
			return item, true
		}
	}
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	if len(ranks) == 0 {
		return nil, false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return nil, false
	}
	return items[best.OriginalIndex], true
}
