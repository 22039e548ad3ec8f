package v1

import "time"

// Memory is one stored entry, identified by its topic and title.
type Memory struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter narrows a Read call. Zero-value fields are not applied; set fields
// must all match.
type Filter struct {
	Topic string   `json:"topic,omitempty"`
	Title string   `json:"title,omitempty"`
	Query string   `json:"query,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// Update describes a partial mutation. A nil Content leaves content alone; a
// nil Tags slice leaves tags alone, while an empty non-nil slice clears them.
type Update struct {
	Content *string  `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// TopicInfo describes one topic in a listing.
type TopicInfo struct {
	Topic          string    `json:"topic"`
	Count          int       `json:"count"`
	Tags           []string  `json:"tags,omitempty"`
	LatestActivity time.Time `json:"latest_activity"`
}

// TagCount is one entry of the tag frequency ranking.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Statistics is a store-wide snapshot.
type Statistics struct {
	TotalMemories int        `json:"total_memories"`
	TotalTopics   int        `json:"total_topics"`
	TopTags       []TagCount `json:"top_tags,omitempty"`
}

// Summary holds every entry of one topic, ready for a downstream summarizer.
type Summary struct {
	Topic        string   `json:"topic"`
	TotalEntries int      `json:"total_entries"`
	Entries      []Memory `json:"entries,omitempty"`
}

// Commit is one recorded store mutation.
type Commit struct {
	Hash      string    `json:"hash"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
