package core

import (
	"context"
	"warbler/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByID(ctx context.Context, id int64) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	SearchUsers(ctx context.Context, q string) ([]repository.User, error)
	UpdateUser(ctx context.Context, user repository.User) error
	DeleteUser(ctx context.Context, id int64) error

	CreateMessage(ctx context.Context, msg repository.Message) (repository.Message, error)
	GetMessage(ctx context.Context, id int64) (repository.Message, error)
	DeleteMessage(ctx context.Context, id int64) error
	RecentMessagesByAuthors(ctx context.Context, authorIDs []int64, limit int) ([]repository.Message, error)
	RecentMessages(ctx context.Context, limit int) ([]repository.Message, error)

	CreateFollow(ctx context.Context, followerID, followedID int64) error
	DeleteFollow(ctx context.Context, followerID, followedID int64) error
	FollowingIDs(ctx context.Context, userID int64) ([]int64, error)
	Following(ctx context.Context, userID int64) ([]repository.User, error)
	Followers(ctx context.Context, userID int64) ([]repository.User, error)
	SuggestionCandidates(ctx context.Context, userID int64) ([]repository.SuggestionCandidate, error)

	CreateLike(ctx context.Context, userID, messageID int64) error
	DeleteLike(ctx context.Context, userID, messageID int64) error
	LikeExists(ctx context.Context, userID, messageID int64) (bool, error)
	LikedMessages(ctx context.Context, userID int64) ([]repository.Message, error)
	LikedMessageIDs(ctx context.Context, userID int64) ([]int64, error)
}
