package posts

import "time"

// Kind selects one of the three content collections. They share a shape but
// live in disjoint tables with independent identifier spaces.
type Kind string

const (
	KindBlog    Kind = "blog"
	KindDiary   Kind = "diary"
	KindProject Kind = "project"
)

// Kinds lists every content kind, in the order the dashboard shows them.
var Kinds = []Kind{KindBlog, KindDiary, KindProject}

// Table returns the backing table for the kind. Only the three known kinds
// map to a table; anything else is a programming error.
func (k Kind) Table() string {
	switch k {
	case KindBlog:
		return "blogs"
	case KindDiary:
		return "diaries"
	case KindProject:
		return "projects"
	}
	panic("unknown post kind: " + string(k))
}

// Label is the capitalized kind name used in user-facing messages.
func (k Kind) Label() string {
	switch k {
	case KindBlog:
		return "Blog"
	case KindDiary:
		return "Diary"
	case KindProject:
		return "Project"
	}
	panic("unknown post kind: " + string(k))
}

// Post is a titled, authored, timestamped text record. Author is a
// denormalized copy of the creator's username, not a foreign key; renaming a
// user would not cascade. PublishDate is set at creation and never updated.
type Post struct {
	ID          int64
	Title       string
	Author      string
	Content     string
	PublishDate time.Time
}
