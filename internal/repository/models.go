package repository

import "time"

const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

type User struct {
	ID             int64  `gorm:"primaryKey"`
	Username       string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email          string `gorm:"type:varchar(120);uniqueIndex;not null"`
	PasswordHash   string `gorm:"not null"` // bcrypt, never plaintext
	ImageURL       string `gorm:"type:text"`
	HeaderImageURL string `gorm:"type:text"`
	Bio            string `gorm:"type:text"`
	Location       string `gorm:"type:varchar(100)"`
}

func (User) TableName() string { return "users" }

type Message struct {
	ID        int64     `gorm:"primaryKey"`
	Text      string    `gorm:"type:varchar(140);not null"`
	Timestamp time.Time `gorm:"not null;index"`
	UserID    int64     `gorm:"not null;index"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Message) TableName() string { return "messages" }

// Follow is a directed edge: follower follows followed. Both sides cascade,
// so deleting a user removes the edge regardless of direction.
type Follow struct {
	FollowerID int64 `gorm:"primaryKey;autoIncrement:false"`
	FollowedID int64 `gorm:"primaryKey;autoIncrement:false"`
	Follower   User  `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followed   User  `gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE"`
}

func (Follow) TableName() string { return "follows" }

// Like maps a user to a message they liked. The composite primary key is the
// uniqueness constraint that arbitrates concurrent toggles on the same pair.
type Like struct {
	UserID    int64   `gorm:"primaryKey;autoIncrement:false"`
	MessageID int64   `gorm:"primaryKey;autoIncrement:false"`
	User      User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Message   Message `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`
}

func (Like) TableName() string { return "likes" }

// SuggestionCandidate is a user together with their incoming follow count,
// produced by the suggestion aggregation query.
type SuggestionCandidate struct {
	User          `gorm:"embedded"`
	FollowerCount int64
}
