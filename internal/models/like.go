package models

import "time"

// Like marks that a user liked a tweet, unique per (user_id, tweet_id).
// Deleting either the user or the tweet removes the like. The Go field
// names differ from the parent key names so gorm resolves both
// associations as belongs-to and puts the foreign keys on this table.
type Like struct {
	LikerID      int64      `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	LikedTweetID int64      `gorm:"column:tweet_id;primaryKey;autoIncrement:false" json:"tweet_id"`
	CollectedAt  *time.Time `json:"collected_at"`

	User  User  `gorm:"foreignKey:LikerID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Tweet Tweet `gorm:"foreignKey:LikedTweetID;references:TweetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
