package internal

import (
	"sort"
	"strings"
)

// Filter selects records. All supplied fields must match (AND); within Tags a
// record matches if it carries at least one of them (OR).
type Filter struct {
	Topic string
	Title string
	Query string
	Tags  []string
}

// Find returns every record matching the filter, ordered by topic then title
// so a given store snapshot always yields the same sequence. An empty result
// is not an error.
func (s *Store) Find(f Filter) []*MemoryRecord {
	var topics []string
	if f.Topic != "" {
		topics = []string{f.Topic}
	} else {
		for topic := range s.topics {
			topics = append(topics, topic)
		}
	}

	var out []*MemoryRecord
	for _, topic := range topics {
		for _, rec := range s.topics[topic] {
			if matches(rec, f) {
				out = append(out, rec.Clone())
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Topic != out[j].Topic {
			return out[i].Topic < out[j].Topic
		}
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	return out
}

func matches(rec *MemoryRecord, f Filter) bool {
	if f.Title != "" && !TitleEqual(rec.Title, f.Title) {
		return false
	}

	if len(f.Tags) > 0 {
		any := false
		for _, tag := range f.Tags {
			if rec.HasTag(tag) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}

	if f.Query != "" {
		haystack := strings.ToLower(strings.Join([]string{
			rec.Topic,
			rec.Title,
			rec.Content,
			strings.Join(rec.Tags, " "),
		}, " "))
		if !strings.Contains(haystack, strings.ToLower(f.Query)) {
			return false
		}
	}

	return true
}
