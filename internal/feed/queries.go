package feed

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/models"
	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/storeerr"
)

// postSelect joins each tweet with its author's username and, via the left
// join, the retweeted user's username when the tweet is a retweet.
const postSelect = `t.tweet_id, t.author_id, u.username AS author_username, ` +
	`t.full_text, t.created_at, t.retweet_of_user_id, ru.username AS retweet_of_username`

func (e *Engine) postQuery(ctx context.Context) *gorm.DB {
	return e.db.WithContext(ctx).
		Table("tweets AS t").
		Select(postSelect).
		Joins("JOIN users u ON u.user_id = t.author_id").
		Joins("LEFT JOIN users ru ON ru.user_id = t.retweet_of_user_id")
}

// LookupUserByUsername returns a user carrying the given username.
// Usernames are not unique; when several users share one, any single match
// may be returned. A missing username yields ErrNotFound.
func (e *Engine) LookupUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := e.db.WithContext(ctx).
		Where("username = ?", username).
		Take(&user).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return &user, nil
}

// GetTweetByID returns a single tweet, or ErrNotFound.
func (e *Engine) GetTweetByID(ctx context.Context, tweetID int64) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := e.db.WithContext(ctx).
		Take(&tweet, "tweet_id = ?", tweetID).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return &tweet, nil
}

// GetFollowers returns the ids of everyone following userID.
func (e *Engine) GetFollowers(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	if err := e.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("followee_id = ?", userID).
		Order("follower_id").
		Pluck("follower_id", &ids).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return ids, nil
}

// GetFollowees returns the ids of everyone userID follows.
func (e *Engine) GetFollowees(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	if err := e.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Order("followee_id").
		Pluck("followee_id", &ids).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return ids, nil
}

// GetLikedTweetIDs returns the ids of every tweet userID has liked.
func (e *Engine) GetLikedTweetIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	if err := e.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ?", userID).
		Order("tweet_id").
		Pluck("tweet_id", &ids).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return ids, nil
}

// GetPostsByAuthor returns all posts authored by authorID, newest first,
// with usernames resolved. An author with no posts yields an empty slice.
func (e *Engine) GetPostsByAuthor(ctx context.Context, authorID int64) ([]Post, error) {
	posts := []Post{}
	if err := e.postQuery(ctx).
		Where("t.author_id = ?", authorID).
		Order("t.created_at DESC, t.tweet_id DESC").
		Scan(&posts).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return posts, nil
}

// ReconstructFeed returns the posts visible to userID: everything authored
// by the user or anyone they follow, optionally bounded to an inclusive
// time window, newest first with tweet_id as the deterministic tie-break.
//
// The candidate author set is the followees plus the user themself, as a
// subquery. A user with no followees and no posts, or an id that does not
// exist at all, yields an empty feed, not an error.
func (e *Engine) ReconstructFeed(ctx context.Context, userID int64, opts FeedOptions) ([]Post, error) {
	limit := DefaultFeedLimit
	if opts.Limit != nil {
		if *opts.Limit <= 0 {
			return nil, storeerr.InvalidArgumentf("limit must be a positive integer, got %d", *opts.Limit)
		}
		limit = *opts.Limit
	}
	if opts.Start != nil && opts.End != nil && opts.Start.After(*opts.End) {
		return nil, storeerr.InvalidArgumentf("start %s is after end %s",
			opts.Start.UTC().Format(time.RFC3339), opts.End.UTC().Format(time.RFC3339))
	}

	q := e.postQuery(ctx).
		Where("t.author_id IN (SELECT followee_id FROM follows WHERE follower_id = ? UNION SELECT ?)",
			userID, userID)
	if opts.Start != nil {
		q = q.Where("t.created_at >= ?", opts.Start.UTC())
	}
	if opts.End != nil {
		q = q.Where("t.created_at <= ?", opts.End.UTC())
	}

	posts := []Post{}
	if err := q.
		Order("t.created_at DESC, t.tweet_id DESC").
		Limit(limit).
		Scan(&posts).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return posts, nil
}

// DeleteUser removes a user and lets the schema's cascade rules clean up:
// the user's tweets, follow edges, and likes go with them, and tweets that
// retweeted them keep existing with the reference cleared.
func (e *Engine) DeleteUser(ctx context.Context, userID int64) error {
	res := e.db.WithContext(ctx).Delete(&models.User{}, "user_id = ?", userID)
	if res.Error != nil {
		return storeerr.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return storeerr.NotFoundf("user %d", userID)
	}
	e.log.Infow("user deleted", "user_id", userID)
	return nil
}
