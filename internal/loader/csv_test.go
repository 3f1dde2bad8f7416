package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/feed"

	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadTweetsCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tweets.csv",
		"tweet_id,original_user_id,screen_name,full_text,created_at,retweeted_user_ID,collected_at\n"+
			"100,2,b,hi there,2024-07-21T12:00:00Z,,2024-07-22T00:00:00Z\n"+
			"101,3,c,passing it on,2024-07-21T12:00:01Z,9,2024-07-22T00:00:00Z\n"+
			"102,4.0,d,float id author,2024-07-21T12:00:02Z,,\n"+
			",,x,missing ids,2024-07-21T12:00:03Z,,\n")

	batch, skipped, err := ReadTweetsCSV(path)
	if err != nil {
		t.Fatalf("ReadTweetsCSV: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("expected 0 reader-level skips, got %d", skipped)
	}
	if len(batch.Tweets) != 3 {
		t.Fatalf("expected 3 tweets, got %d", len(batch.Tweets))
	}

	first := batch.Tweets[0]
	if first.TweetID != 100 || first.AuthorID != 2 || first.FullText != "hi there" {
		t.Fatalf("unexpected first tweet: %+v", first)
	}
	wantCreated := time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC)
	if !first.CreatedAt.Equal(wantCreated) {
		t.Fatalf("expected created_at %v, got %v", wantCreated, first.CreatedAt)
	}
	if first.CollectedAt == nil {
		t.Fatalf("expected collected_at to be set")
	}
	if first.RetweetOfUserID != nil {
		t.Fatalf("tweet 100 is not a retweet")
	}

	second := batch.Tweets[1]
	if second.RetweetOfUserID == nil || *second.RetweetOfUserID != 9 {
		t.Fatalf("expected retweet target 9, got %v", second.RetweetOfUserID)
	}

	if batch.Tweets[2].AuthorID != 4 {
		t.Fatalf("expected float author id to parse as 4, got %d", batch.Tweets[2].AuthorID)
	}

	// Authors, the retweet target, and the malformed-row marker all become
	// user rows for harvesting.
	authors := map[int64]bool{}
	for _, u := range batch.Users {
		authors[u.UserID] = true
	}
	for _, want := range []int64{2, 3, 4, 9} {
		if !authors[want] {
			t.Fatalf("expected user row for %d, users: %+v", want, batch.Users)
		}
	}
}

func TestReadFollowsCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "follows.csv",
		"from_id,id,username\n"+
			"1,2,b\n"+
			"1,4,\n")

	batch, _, err := ReadFollowsCSV(path)
	if err != nil {
		t.Fatalf("ReadFollowsCSV: %v", err)
	}
	if len(batch.Follows) != 2 {
		t.Fatalf("expected 2 follows, got %d", len(batch.Follows))
	}
	if batch.Follows[0].FollowerID != 1 || batch.Follows[0].FolloweeID != 2 {
		t.Fatalf("unexpected follow: %+v", batch.Follows[0])
	}

	// The followee's username rides along; the bare follower has none.
	var followeeName *string
	for _, u := range batch.Users {
		if u.UserID == 2 {
			followeeName = u.Username
		}
	}
	if followeeName == nil || *followeeName != "b" {
		t.Fatalf("expected followee username %q, got %v", "b", followeeName)
	}
}

func TestReadLikesCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "likes.csv",
		"original_user_id,screen_name,liked_user_id,tweet_id,full_text,created_at,collected_at\n"+
			"5,liker,2,100,hi there,2024-07-21T12:00:00Z,2024-07-22T00:00:00Z\n")

	batch, _, err := ReadLikesCSV(path)
	if err != nil {
		t.Fatalf("ReadLikesCSV: %v", err)
	}
	if len(batch.Likes) != 1 || batch.Likes[0].LikerID != 5 || batch.Likes[0].LikedTweetID != 100 {
		t.Fatalf("unexpected likes: %+v", batch.Likes)
	}
	// The like export carries the liked tweet too, authored by liked_user_id.
	if len(batch.Tweets) != 1 || batch.Tweets[0].AuthorID != 2 {
		t.Fatalf("expected liked tweet with author 2, got %+v", batch.Tweets)
	}
}

func TestReadLikesCSV_BadDateDropsLikeAndTweetTogether(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "likes.csv",
		"original_user_id,screen_name,liked_user_id,tweet_id,full_text,created_at,collected_at\n"+
			"5,liker,2,100,hi there,2024-07-21T12:00:00Z,2024-07-22T00:00:00Z\n"+
			"5,liker,2,101,bad date,NOT-A-DATE,2024-07-22T00:00:00Z\n")

	batch, _, err := ReadLikesCSV(path)
	if err != nil {
		t.Fatalf("ReadLikesCSV: %v", err)
	}
	// The bad-date row must not emit a like without its tweet; a dangling
	// like would roll back the whole load.
	if len(batch.Likes) != 1 || batch.Likes[0].LikedTweetID != 100 {
		t.Fatalf("expected only the good like, got %+v", batch.Likes)
	}
	if len(batch.Tweets) != 1 || batch.Tweets[0].TweetID != 100 {
		t.Fatalf("expected only the good tweet, got %+v", batch.Tweets)
	}

	ldr, _ := newTestLoader(t)
	report, err := ldr.Load(context.Background(), batch)
	if err != nil {
		t.Fatalf("Load after dropping bad row: %v", err)
	}
	// The dropped row surfaces in the skip count via the marker user.
	if report.RowsSkipped != 1 {
		t.Fatalf("expected 1 skipped row, got %d", report.RowsSkipped)
	}
	if report.LikesInserted != 1 || report.TweetsInserted != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestReadCSVBatch_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	follows := writeFile(t, dir, "follows.csv",
		"from_id,id,username\n"+
			"1,2,b\n")
	likes := writeFile(t, dir, "likes.csv",
		"original_user_id,screen_name,liked_user_id,tweet_id,full_text,created_at,collected_at\n"+
			"1,a,3,200,likeable,2024-07-20T08:00:00Z,2024-07-22T00:00:00Z\n")
	tweets := writeFile(t, dir, "tweets.csv",
		"tweet_id,original_user_id,screen_name,full_text,created_at,retweeted_user_ID,collected_at\n"+
			"100,2,b,hi there,2024-07-21T12:00:00Z,,2024-07-22T00:00:00Z\n")

	batch, skipped, err := ReadCSVBatch(follows, likes, tweets)
	if err != nil {
		t.Fatalf("ReadCSVBatch: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("expected no reader-level skips, got %d", skipped)
	}

	ldr, db := newTestLoader(t)
	report, err := ldr.Load(context.Background(), batch)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if report.TweetsInserted != 2 || report.FollowsInserted != 1 || report.LikesInserted != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}

	engine := feed.NewEngine(db, zap.NewNop().Sugar())
	posts, err := engine.ReconstructFeed(context.Background(), 1, feed.FeedOptions{})
	if err != nil {
		t.Fatalf("ReconstructFeed: %v", err)
	}
	// User 1 follows 2 and authored nothing; only tweet 100 is visible.
	if len(posts) != 1 || posts[0].TweetID != 100 {
		t.Fatalf("expected feed [100], got %+v", posts)
	}

	likedIDs, err := engine.GetLikedTweetIDs(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetLikedTweetIDs: %v", err)
	}
	if len(likedIDs) != 1 || likedIDs[0] != 200 {
		t.Fatalf("expected liked tweet 200, got %v", likedIDs)
	}
}
