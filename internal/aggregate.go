package internal

import (
	"sort"
	"strings"
	"time"
)

// DefaultTopTags bounds the tag ranking in statistics output.
const DefaultTopTags = 10

// TopicInfo summarizes one topic. Topics exist only through their records;
// a topic with zero records never appears.
type TopicInfo struct {
	Topic          string    `json:"topic"`
	Count          int       `json:"count"`
	Tags           []string  `json:"tags,omitempty"`
	LatestActivity time.Time `json:"latest_activity"`
}

// TopicInfos lists every topic with record count, observed tag set, and most
// recent activity, ordered by latest activity (newest first), then topic.
func (s *Store) TopicInfos() []TopicInfo {
	out := make([]TopicInfo, 0, len(s.topics))

	for topic, records := range s.topics {
		info := TopicInfo{Topic: topic, Count: len(records)}

		tagSet := make(map[string]bool)
		for _, rec := range records {
			for _, tag := range rec.Tags {
				tagSet[tag] = true
			}
			if rec.UpdatedAt.After(info.LatestActivity) {
				info.LatestActivity = rec.UpdatedAt
			}
		}

		for tag := range tagSet {
			info.Tags = append(info.Tags, tag)
		}
		sort.Strings(info.Tags)

		out = append(out, info)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].LatestActivity.Equal(out[j].LatestActivity) {
			return out[i].LatestActivity.After(out[j].LatestActivity)
		}
		return out[i].Topic < out[j].Topic
	})
	return out
}

// TagCount is one entry of a tag-frequency ranking.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Statistics describes the whole store.
type Statistics struct {
	TotalMemories int        `json:"total_memories"`
	TotalTopics   int        `json:"total_topics"`
	TopTags       []TagCount `json:"top_tags,omitempty"`
}

// ComputeStatistics counts records, topics, and the topK most frequent tags
// (count descending, tag ascending on ties).
func (s *Store) ComputeStatistics(topK int) Statistics {
	if topK <= 0 {
		topK = DefaultTopTags
	}

	stats := Statistics{
		TotalMemories: s.Len(),
		TotalTopics:   len(s.topics),
	}

	counts := make(map[string]int)
	for _, records := range s.topics {
		for _, rec := range records {
			for _, tag := range rec.Tags {
				counts[tag]++
			}
		}
	}

	for tag, count := range counts {
		stats.TopTags = append(stats.TopTags, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(stats.TopTags, func(i, j int) bool {
		if stats.TopTags[i].Count != stats.TopTags[j].Count {
			return stats.TopTags[i].Count > stats.TopTags[j].Count
		}
		return stats.TopTags[i].Tag < stats.TopTags[j].Tag
	})
	if len(stats.TopTags) > topK {
		stats.TopTags = stats.TopTags[:topK]
	}

	return stats
}

// SummaryEntry is one record inside a topic summary.
type SummaryEntry struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TopicSummary is the machine-readable listing of a topic, meant as input to
// a downstream summarizer. It is never prose.
type TopicSummary struct {
	Topic        string         `json:"topic"`
	TotalEntries int            `json:"total_entries"`
	Entries      []SummaryEntry `json:"entries,omitempty"`
}

// SummarizeTopic collects every record in a topic. An unknown or empty topic
// yields an empty summary, not an error.
func (s *Store) SummarizeTopic(topic string) TopicSummary {
	records := s.topics[topic]

	summary := TopicSummary{Topic: topic, TotalEntries: len(records)}
	for _, rec := range records {
		summary.Entries = append(summary.Entries, SummaryEntry{
			Title:     rec.Title,
			Content:   rec.Content,
			Tags:      append([]string(nil), rec.Tags...),
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		})
	}
	sort.Slice(summary.Entries, func(i, j int) bool {
		return strings.ToLower(summary.Entries[i].Title) < strings.ToLower(summary.Entries[j].Title)
	})

	return summary
}
