package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/models"
)

// The collector exports three CSV files. Column names below are the
// collector's, not ours:
//
//	follows: from_id (follower), id (followee), username (followee's name)
//	likes:   original_user_id (liker), screen_name (liker's name),
//	         liked_user_id (author of the liked tweet), tweet_id,
//	         full_text, created_at, collected_at
//	tweets:  tweet_id, original_user_id (author), screen_name (author's
//	         name), full_text, created_at, retweeted_user_ID, collected_at
//
// Rows that cannot be mapped (unparseable ids, missing created_at on a
// tweet) are skipped and counted, never fatal.

// ReadCSVBatch reads the three collector export files into one Batch.
// Any path may be empty to skip that file. Returns the batch and the
// number of rows skipped while reading.
func ReadCSVBatch(followsPath, likesPath, tweetsPath string) (Batch, int, error) {
	var batch Batch
	skipped := 0

	if followsPath != "" {
		b, n, err := ReadFollowsCSV(followsPath)
		if err != nil {
			return Batch{}, 0, err
		}
		batch = mergeBatches(batch, b)
		skipped += n
	}
	if likesPath != "" {
		b, n, err := ReadLikesCSV(likesPath)
		if err != nil {
			return Batch{}, 0, err
		}
		batch = mergeBatches(batch, b)
		skipped += n
	}
	if tweetsPath != "" {
		b, n, err := ReadTweetsCSV(tweetsPath)
		if err != nil {
			return Batch{}, 0, err
		}
		batch = mergeBatches(batch, b)
		skipped += n
	}
	return batch, skipped, nil
}

// ReadFollowsCSV maps the follow export into follow edges plus user rows
// carrying the followee usernames the file records.
func ReadFollowsCSV(path string) (Batch, int, error) {
	var batch Batch
	skipped, err := eachRecord(path, func(row record) {
		follower, ok1 := row.id("from_id")
		followee, ok2 := row.id("id")
		if !ok1 || !ok2 {
			skipRow(&batch)
			return
		}
		batch.Users = append(batch.Users,
			models.User{UserID: followee, Username: row.str("username")},
			models.User{UserID: follower})
		batch.Follows = append(batch.Follows,
			models.Follow{FollowerID: follower, FolloweeID: followee})
	})
	return batch, skipped, err
}

// ReadLikesCSV maps the like export into likes, the liked tweets (the
// export carries enough to reconstruct them), and user rows for both the
// liker and the tweet author.
func ReadLikesCSV(path string) (Batch, int, error) {
	var batch Batch
	skipped, err := eachRecord(path, func(row record) {
		liker, ok1 := row.id("original_user_id")
		author, ok2 := row.id("liked_user_id")
		tweetID, ok3 := row.id("tweet_id")
		created := row.time("created_at")
		// An unparseable created_at drops the whole row. Emitting the like
		// without its reconstructed tweet would leave it dangling and roll
		// back the batch.
		if !ok1 || !ok2 || !ok3 || created == nil {
			skipRow(&batch)
			return
		}
		batch.Users = append(batch.Users,
			models.User{UserID: liker, Username: row.str("screen_name")},
			models.User{UserID: author})
		batch.Tweets = append(batch.Tweets, models.Tweet{
			TweetID:     tweetID,
			AuthorID:    author,
			FullText:    row.text("full_text"),
			CreatedAt:   *created,
			CollectedAt: row.time("collected_at"),
		})
		batch.Likes = append(batch.Likes, models.Like{
			LikerID:      liker,
			LikedTweetID: tweetID,
			CollectedAt:  row.time("collected_at"),
		})
	})
	return batch, skipped, err
}

// ReadTweetsCSV maps the tweet export into tweets and user rows for their
// authors and retweet targets.
func ReadTweetsCSV(path string) (Batch, int, error) {
	var batch Batch
	skipped, err := eachRecord(path, func(row record) {
		tweetID, ok1 := row.id("tweet_id")
		author, ok2 := row.id("original_user_id")
		created := row.time("created_at")
		if !ok1 || !ok2 || created == nil {
			skipRow(&batch)
			return
		}
		batch.Users = append(batch.Users,
			models.User{UserID: author, Username: row.str("screen_name")})
		tweet := models.Tweet{
			TweetID:     tweetID,
			AuthorID:    author,
			FullText:    row.text("full_text"),
			CreatedAt:   *created,
			CollectedAt: row.time("collected_at"),
		}
		if rt, ok := row.id("retweeted_user_ID"); ok {
			tweet.RetweetOfUserID = &rt
			batch.Users = append(batch.Users, models.User{UserID: rt})
		}
		batch.Tweets = append(batch.Tweets, tweet)
	})
	return batch, skipped, err
}

func mergeBatches(a, b Batch) Batch {
	a.Users = append(a.Users, b.Users...)
	a.Tweets = append(a.Tweets, b.Tweets...)
	a.Follows = append(a.Follows, b.Follows...)
	a.Likes = append(a.Likes, b.Likes...)
	return a
}

// skipRow marks a malformed source row by appending a zero-id user, which
// the loader's sanitization step drops and counts.
func skipRow(batch *Batch) {
	batch.Users = append(batch.Users, models.User{})
}

// record is one CSV row with header-indexed access.
type record struct {
	cols map[string]int
	row  []string
}

func (r record) raw(name string) string {
	idx, ok := r.cols[name]
	if !ok || idx >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[idx])
}

// id parses a numeric identifier. Exports produced via pandas sometimes
// render ids in float notation ("1.088e+18" never round-trips, but
// "123.0" does), so a float fallback is accepted for exact integers.
func (r record) id(name string) (int64, bool) {
	s := r.raw(name)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, v != 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return int64(f), int64(f) != 0
	}
	return 0, false
}

func (r record) str(name string) *string {
	s := r.raw(name)
	if s == "" {
		return nil
	}
	return &s
}

func (r record) text(name string) string {
	return r.raw(name)
}

// timeLayouts covers the formats seen in collector exports: RFC 3339,
// Postgres-style timestamps, and the platform's legacy created_at format.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05",
	"Mon Jan 02 15:04:05 -0700 2006",
}

func (r record) time(name string) *time.Time {
	s := r.raw(name)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			u := t.UTC()
			return &u
		}
	}
	return nil
}

// eachRecord streams a CSV file, calling fn once per data row. Rows with
// the wrong field count are skipped and counted.
func eachRecord(path string, fn func(record)) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header %s: %w", path, err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		fn(record{cols: cols, row: row})
	}
	return skipped, nil
}
