package models

// Follow is a directed edge: the follower's feed includes the followee's
// posts. The primary key is a composite of (FollowerID, FolloweeID) to
// ensure uniqueness. Self-follows are representable; the model does not
// forbid them.
type Follow struct {
	FollowerID int64 `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	FolloweeID int64 `gorm:"primaryKey;autoIncrement:false" json:"followee_id"`

	Follower User `gorm:"foreignKey:FollowerID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Followee User `gorm:"foreignKey:FolloweeID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
