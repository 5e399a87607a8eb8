package core

import "time"

type SignupMessage struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ImageURL string `json:"image_url"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileUpdate carries a profile edit. Password is the current password,
// re-entered to authorize the change. Blank image URLs keep the stored ones.
type ProfileUpdate struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	ImageURL       string `json:"image_url"`
	HeaderImageURL string `json:"header_image_url"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`
	Password       string `json:"password"`
}

type UserRecord struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ImageURL       string `json:"image_url"`
	HeaderImageURL string `json:"header_image_url"`
	Bio            string `json:"bio,omitempty"`
	Location       string `json:"location,omitempty"`
	FollowerCount  int64  `json:"follower_count,omitempty"`
}

type WarbleRecord struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	UserID    int64     `json:"user_id"`
}

// FeedResult is the home feed. Fallback is set when the personalized feed was
// replaced with the global recent feed because the user follows nobody.
type FeedResult struct {
	Warbles  []WarbleRecord `json:"messages"`
	Fallback bool           `json:"fallback"`
}
