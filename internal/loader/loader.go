package loader

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/metrics"
	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/models"
	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/storeerr"
)

const insertBatchSize = 1000

// Batch is one deduplicated load unit produced by the collector export
// readers. Rows are validated here, at the boundary; malformed rows are
// dropped and counted rather than aborting the load.
type Batch struct {
	Users   []models.User
	Tweets  []models.Tweet
	Follows []models.Follow
	Likes   []models.Like
}

// Report summarises one load run. Inserted counts reflect rows actually
// written; re-loading a batch reports zero new tweets/follows/likes.
type Report struct {
	RunID           string `json:"run_id"`
	UsersUpserted   int    `json:"users_upserted"`
	TweetsInserted  int64  `json:"tweets_inserted"`
	FollowsInserted int64  `json:"follows_inserted"`
	LikesInserted   int64  `json:"likes_inserted"`
	RowsSkipped     int    `json:"rows_skipped"`
}

// Loader merges entity batches into the storage model with upsert
// semantics. It is the only writer path; concurrent runs are expected to
// be serialized by the host.
type Loader struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// New returns a Loader bound to the given storage handle.
func New(db *gorm.DB, log *zap.SugaredLogger) *Loader {
	return &Loader{db: db, log: log.With("component", "loader")}
}

// Load merges a batch in one transaction: Users first (harvested from all
// four streams, so a tweet author or follow endpoint never dangles), then
// Tweets, Follows, and Likes. On any error nothing is retained. Loading
// the same batch twice leaves the store unchanged.
func (l *Loader) Load(ctx context.Context, batch Batch) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	log := l.log.With("run_id", report.RunID)
	start := time.Now()

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users, skipped := harvestUsers(batch)
		report.RowsSkipped += skipped
		if len(users) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					// Coalesce-preserve: an already recorded username is
					// never erased by a later null (or different) value.
					"username": gorm.Expr("COALESCE(users.username, excluded.username)"),
				}),
			}).CreateInBatches(&users, insertBatchSize).Error; err != nil {
				return err
			}
			report.UsersUpserted = len(users)
		}

		tweets, skipped := sanitizeTweets(batch.Tweets)
		report.RowsSkipped += skipped
		if len(tweets) > 0 {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(&tweets, insertBatchSize)
			if res.Error != nil {
				return res.Error
			}
			report.TweetsInserted = res.RowsAffected
		}

		follows, skipped := sanitizeFollows(batch.Follows)
		report.RowsSkipped += skipped
		if len(follows) > 0 {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(&follows, insertBatchSize)
			if res.Error != nil {
				return res.Error
			}
			report.FollowsInserted = res.RowsAffected
		}

		likes, skipped := sanitizeLikes(batch.Likes)
		report.RowsSkipped += skipped
		if len(likes) > 0 {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(&likes, insertBatchSize)
			if res.Error != nil {
				return res.Error
			}
			report.LikesInserted = res.RowsAffected
		}
		return nil
	})
	if err != nil {
		metrics.LoadErrors.Inc()
		return nil, storeerr.Classify(err)
	}

	metrics.LoadRuns.Inc()
	metrics.LoadRowsSkipped.Add(float64(report.RowsSkipped))
	log.Infow("load complete",
		"users_upserted", report.UsersUpserted,
		"tweets_inserted", report.TweetsInserted,
		"follows_inserted", report.FollowsInserted,
		"likes_inserted", report.LikesInserted,
		"rows_skipped", report.RowsSkipped,
		"duration", time.Since(start))
	return report, nil
}

// harvestUsers computes the full set of user ids referenced anywhere in
// the batch (explicit user rows, tweet authors, retweet targets, both
// follow endpoints, and likers) so every dependent row finds its user.
// Within the batch the first non-nil username for an id wins.
func harvestUsers(batch Batch) ([]models.User, int) {
	names := make(map[int64]*string)
	skipped := 0

	record := func(id int64, username *string) {
		if id == 0 {
			return
		}
		if existing, ok := names[id]; !ok || existing == nil {
			names[id] = username
		}
	}

	for _, u := range batch.Users {
		if u.UserID == 0 {
			skipped++
			continue
		}
		record(u.UserID, u.Username)
	}
	for _, t := range batch.Tweets {
		record(t.AuthorID, nil)
		if t.RetweetOfUserID != nil {
			record(*t.RetweetOfUserID, nil)
		}
	}
	for _, f := range batch.Follows {
		record(f.FollowerID, nil)
		record(f.FolloweeID, nil)
	}
	for _, lk := range batch.Likes {
		record(lk.LikerID, nil)
	}

	ids := make([]int64, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, models.User{UserID: id, Username: names[id]})
	}
	return users, skipped
}

func sanitizeTweets(in []models.Tweet) ([]models.Tweet, int) {
	seen := make(map[int64]bool, len(in))
	out := make([]models.Tweet, 0, len(in))
	skipped := 0
	for _, t := range in {
		if t.TweetID == 0 || t.AuthorID == 0 || t.CreatedAt.IsZero() {
			skipped++
			continue
		}
		if seen[t.TweetID] {
			continue
		}
		seen[t.TweetID] = true
		t.CreatedAt = t.CreatedAt.UTC()
		t.CollectedAt = asUTC(t.CollectedAt)
		out = append(out, t)
	}
	return out, skipped
}

func sanitizeFollows(in []models.Follow) ([]models.Follow, int) {
	type pair struct{ follower, followee int64 }
	seen := make(map[pair]bool, len(in))
	out := make([]models.Follow, 0, len(in))
	skipped := 0
	for _, f := range in {
		if f.FollowerID == 0 || f.FolloweeID == 0 {
			skipped++
			continue
		}
		key := pair{f.FollowerID, f.FolloweeID}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}
	return out, skipped
}

func sanitizeLikes(in []models.Like) ([]models.Like, int) {
	type pair struct{ user, tweet int64 }
	seen := make(map[pair]bool, len(in))
	out := make([]models.Like, 0, len(in))
	skipped := 0
	for _, lk := range in {
		if lk.LikerID == 0 || lk.LikedTweetID == 0 {
			skipped++
			continue
		}
		key := pair{lk.LikerID, lk.LikedTweetID}
		if seen[key] {
			continue
		}
		seen[key] = true
		lk.CollectedAt = asUTC(lk.CollectedAt)
		out = append(out, lk)
	}
	return out, skipped
}

func asUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
