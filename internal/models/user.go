package models

// User represents a collected account. IDs are assigned by the platform the
// data was collected from, never generated here.
//
// Username is nullable: a user may enter the dataset purely as a followee or
// retweet target before (or without ever) being observed directly. Usernames
// are NOT unique across users.
type User struct {
	UserID   int64   `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Username *string `json:"username"`
}
