package handler

import (
	"context"
	"net/http"
	"warbler/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WarbleService . WarbleService
type WarbleService interface {
	Signup(ctx context.Context, msg core.SignupMessage) (core.UserRecord, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.UserRecord, error)
	UpdateProfile(ctx context.Context, userID int64, update core.ProfileUpdate) (core.UserRecord, error)
	DeleteAccount(ctx context.Context, userID int64) error
	GetUser(ctx context.Context, userID int64) (core.UserRecord, error)
	ListUsers(ctx context.Context, q string) ([]core.UserRecord, error)
	UserProfile(ctx context.Context, userID int64) (core.UserRecord, []core.WarbleRecord, error)

	PostWarble(ctx context.Context, userID int64, text string) (core.WarbleRecord, error)
	GetWarble(ctx context.Context, id int64) (core.WarbleRecord, error)
	DeleteWarble(ctx context.Context, userID, messageID int64) error

	HomeFeed(ctx context.Context, userID int64) (core.FeedResult, error)
	SuggestUsers(ctx context.Context, userID int64, limit int) ([]core.UserRecord, error)

	Follow(ctx context.Context, userID, targetID int64) error
	Unfollow(ctx context.Context, userID, targetID int64) error
	FollowingList(ctx context.Context, userID int64) ([]core.UserRecord, error)
	FollowersList(ctx context.Context, userID int64) ([]core.UserRecord, error)

	ToggleLike(ctx context.Context, userID, messageID int64) (bool, error)
	LikedWarbles(ctx context.Context, userID int64) ([]core.WarbleRecord, error)
	LikedWarbleIDs(ctx context.Context, userID int64) ([]int64, error)
}

//counterfeiter:generate -o fake -fake-name SessionManager . SessionManager
type SessionManager interface {
	Create(ctx context.Context, userID int64) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
