package models

import "time"

// Tweet is a collected post. If RetweetOfUserID is set the tweet is a
// retweet: AuthorID is the retweeter and RetweetOfUserID the original
// author. CollectedAt records when the row was ingested and is distinct
// from CreatedAt, which orders the feed.
type Tweet struct {
	TweetID         int64      `gorm:"primaryKey;autoIncrement:false" json:"tweet_id"`
	AuthorID        int64      `gorm:"not null;index" json:"author_id"`
	FullText        string     `json:"full_text"`
	CreatedAt       time.Time  `gorm:"not null;index" json:"created_at"`
	RetweetOfUserID *int64     `gorm:"index" json:"retweet_of_user_id"`
	CollectedAt     *time.Time `json:"collected_at"`

	// Deleting the author deletes their tweets; deleting the retweeted
	// user only clears the reference, the tweet itself survives.
	Author        User  `gorm:"foreignKey:AuthorID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	RetweetOfUser *User `gorm:"foreignKey:RetweetOfUserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}
