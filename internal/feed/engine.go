package feed

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultFeedLimit caps a feed query when the caller does not ask for a
// specific page size.
const DefaultFeedLimit = 100

// Post is a tweet joined with the display names needed to show it: the
// author's username and, for retweets, the original author's username.
// Either username may be nil: a user can exist without one, and a deleted
// retweet target leaves RetweetOfUserID cleared.
type Post struct {
	TweetID           int64      `json:"tweet_id"`
	AuthorID          int64      `json:"author_id"`
	AuthorUsername    *string    `json:"author_username"`
	FullText          string     `json:"full_text"`
	CreatedAt         time.Time  `json:"created_at"`
	RetweetOfUserID   *int64     `json:"retweet_of_user_id,omitempty"`
	RetweetOfUsername *string    `json:"retweet_of_username,omitempty"`
}

// IsRetweet reports whether the post is a retweet of another user.
func (p Post) IsRetweet() bool { return p.RetweetOfUserID != nil }

// FeedOptions bound a feed query. A nil Limit means DefaultFeedLimit; an
// explicit non-positive limit is rejected. Start and End are inclusive.
type FeedOptions struct {
	Start *time.Time
	End   *time.Time
	Limit *int
}

// Engine answers feed and point queries over the storage model. It never
// mutates the entity tables except through DeleteUser, the maintenance
// entry point for cascading removals. All reads are plain queries against
// the injected handle, safe to run concurrently.
type Engine struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// NewEngine returns an Engine bound to the given storage handle.
func NewEngine(db *gorm.DB, log *zap.SugaredLogger) *Engine {
	return &Engine{db: db, log: log.With("component", "feed")}
}
