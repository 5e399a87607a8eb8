package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
	"warbler/internal/db"
	"warbler/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials error = errors.New("invalid credentials")
var ErrCredentialsTaken error = errors.New("username or email already taken")
var ErrUserNotFound error = errors.New("user not found")
var ErrWarbleNotFound error = errors.New("message not found")
var ErrOwnWarble error = errors.New("cannot like your own message")
var ErrNotWarbleAuthor error = errors.New("not the author of this message")

const (
	homeFeedLimit       = 100
	fallbackFeedLimit   = 50
	defaultSuggestLimit = 5
	profileFeedLimit    = 100
)

// dummyHash is compared against when a username does not exist, so unknown
// usernames cost the same as wrong passwords.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

var timeNow = time.Now

// Warbler holds the application's business logic: the authentication helper,
// the feed/ranking engine and the likes toggle.
type Warbler struct {
	logs       *zap.SugaredLogger
	repo       Repository
	bcryptCost int
}

func NewWarbler(logger *zap.SugaredLogger, repo Repository, bcryptCost int) *Warbler {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Warbler{
		logs:       logger,
		repo:       repo,
		bcryptCost: bcryptCost,
	}
}

// Signup hashes the password and creates the account. Duplicate username or
// email surfaces as ErrCredentialsTaken with nothing persisted.
func (w *Warbler) Signup(ctx context.Context, msg SignupMessage) (UserRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), w.bcryptCost)
	if err != nil {
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	imageURL := msg.ImageURL
	if imageURL == "" {
		imageURL = repository.DefaultImageURL
	}

	user, err := w.repo.CreateUser(ctx, repository.User{
		Username:       msg.Username,
		Email:          msg.Email,
		PasswordHash:   string(hash),
		ImageURL:       imageURL,
		HeaderImageURL: repository.DefaultHeaderImageURL,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return UserRecord{}, ErrCredentialsTaken
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	w.logs.Infow("user signed up", "user_id", user.ID, "username", user.Username)
	return toUserRecord(user), nil
}

// Authenticate verifies a username/password pair. Unknown usernames and wrong
// passwords both return ErrInvalidCredentials, and cost the same bcrypt work.
func (w *Warbler) Authenticate(ctx context.Context, msg AuthMessage) (UserRecord, error) {
	user, err := w.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(msg.Password))
			return UserRecord{}, ErrInvalidCredentials
		}
		return UserRecord{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return UserRecord{}, ErrInvalidCredentials
	}

	return toUserRecord(user), nil
}

// UpdateProfile applies a profile edit after re-verifying the current
// password. Blank image URLs keep the stored values.
func (w *Warbler) UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (UserRecord, error) {
	user, err := w.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(update.Password)); err != nil {
		return UserRecord{}, ErrInvalidCredentials
	}

	user.Username = update.Username
	user.Email = update.Email
	if update.ImageURL != "" {
		user.ImageURL = update.ImageURL
	}
	if update.HeaderImageURL != "" {
		user.HeaderImageURL = update.HeaderImageURL
	}
	user.Bio = update.Bio
	user.Location = update.Location

	if err := w.repo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return UserRecord{}, ErrCredentialsTaken
		}
		return UserRecord{}, fmt.Errorf("update user: %w", err)
	}

	w.logs.Infow("profile updated", "user_id", user.ID)
	return toUserRecord(user), nil
}

// DeleteAccount deletes the user. Messages, follow edges and likes are
// removed by the storage layer's cascade constraints.
func (w *Warbler) DeleteAccount(ctx context.Context, userID int64) error {
	if err := w.repo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	w.logs.Infow("account deleted", "user_id", userID)
	return nil
}

// ---- warbles ----

func (w *Warbler) PostWarble(ctx context.Context, userID int64, text string) (WarbleRecord, error) {
	msg, err := w.repo.CreateMessage(ctx, repository.Message{
		Text:      text,
		Timestamp: timeNow().UTC(),
		UserID:    userID,
	})
	if err != nil {
		return WarbleRecord{}, fmt.Errorf("create message: %w", err)
	}
	return toWarbleRecord(msg), nil
}

func (w *Warbler) GetWarble(ctx context.Context, id int64) (WarbleRecord, error) {
	msg, err := w.repo.GetMessage(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return WarbleRecord{}, ErrWarbleNotFound
		}
		return WarbleRecord{}, fmt.Errorf("get message: %w", err)
	}
	return toWarbleRecord(msg), nil
}

// DeleteWarble removes a message. Only the author may delete it.
func (w *Warbler) DeleteWarble(ctx context.Context, userID, messageID int64) error {
	msg, err := w.repo.GetMessage(ctx, messageID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrWarbleNotFound
		}
		return fmt.Errorf("get message: %w", err)
	}
	if msg.UserID != userID {
		return ErrNotWarbleAuthor
	}
	if err := w.repo.DeleteMessage(ctx, messageID); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

// ---- feed/ranking engine ----

// HomeFeed assembles the personalized timeline: up to 100 messages authored
// by the user or anyone they follow, newest first. A user following nobody
// gets the 50 most recent messages system-wide instead, flagged as fallback.
func (w *Warbler) HomeFeed(ctx context.Context, userID int64) (FeedResult, error) {
	followingIDs, err := w.repo.FollowingIDs(ctx, userID)
	if err != nil {
		return FeedResult{}, fmt.Errorf("following ids: %w", err)
	}

	if len(followingIDs) == 0 {
		messages, err := w.repo.RecentMessages(ctx, fallbackFeedLimit)
		if err != nil {
			return FeedResult{}, fmt.Errorf("recent messages: %w", err)
		}
		return FeedResult{Warbles: toWarbleRecords(messages), Fallback: true}, nil
	}

	authorIDs := append(followingIDs, userID)
	messages, err := w.repo.RecentMessagesByAuthors(ctx, authorIDs, homeFeedLimit)
	if err != nil {
		return FeedResult{}, fmt.Errorf("recent messages by authors: %w", err)
	}

	return FeedResult{Warbles: toWarbleRecords(messages)}, nil
}

// SuggestUsers ranks follow suggestions: all users except the user themselves
// and except anyone already following them, ordered by incoming follow count
// descending with ascending id as tie-break.
func (w *Warbler) SuggestUsers(ctx context.Context, userID int64, limit int) ([]UserRecord, error) {
	if userID <= 0 {
		return []UserRecord{}, nil
	}
	if limit <= 0 {
		limit = defaultSuggestLimit
	}

	candidates, err := w.repo.SuggestionCandidates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("suggestion candidates: %w", err)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].FollowerCount != candidates[j].FollowerCount {
			return candidates[i].FollowerCount > candidates[j].FollowerCount
		}
		return candidates[i].ID < candidates[j].ID
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	records := make([]UserRecord, len(candidates))
	for i, c := range candidates {
		records[i] = toUserRecord(c.User)
		records[i].FollowerCount = c.FollowerCount
	}
	return records, nil
}

// ---- follows ----

// Follow creates the follow edge. Following someone twice is a no-op.
func (w *Warbler) Follow(ctx context.Context, userID, targetID int64) error {
	if _, err := w.repo.GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user from db: %w", err)
	}

	if err := w.repo.CreateFollow(ctx, userID, targetID); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("create follow: %w", err)
	}
	return nil
}

// Unfollow removes the follow edge. Removing an absent edge is a no-op.
func (w *Warbler) Unfollow(ctx context.Context, userID, targetID int64) error {
	if _, err := w.repo.GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user from db: %w", err)
	}

	if err := w.repo.DeleteFollow(ctx, userID, targetID); err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	return nil
}

func (w *Warbler) FollowingList(ctx context.Context, userID int64) ([]UserRecord, error) {
	if _, err := w.repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user from db: %w", err)
	}
	users, err := w.repo.Following(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("following: %w", err)
	}
	return toUserRecords(users), nil
}

func (w *Warbler) FollowersList(ctx context.Context, userID int64) ([]UserRecord, error) {
	if _, err := w.repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user from db: %w", err)
	}
	users, err := w.repo.Followers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("followers: %w", err)
	}
	return toUserRecords(users), nil
}

// ---- likes ----

// ToggleLike flips the like state of a message for the acting user and
// returns the new state. Authors cannot like their own messages. A concurrent
// duplicate insert loses to the composite key and is treated as the like
// already existing rather than an error.
func (w *Warbler) ToggleLike(ctx context.Context, userID, messageID int64) (bool, error) {
	msg, err := w.repo.GetMessage(ctx, messageID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, ErrWarbleNotFound
		}
		return false, fmt.Errorf("get message: %w", err)
	}

	if msg.UserID == userID {
		return false, ErrOwnWarble
	}

	liked, err := w.repo.LikeExists(ctx, userID, messageID)
	if err != nil {
		return false, fmt.Errorf("like exists: %w", err)
	}

	if liked {
		if err := w.repo.DeleteLike(ctx, userID, messageID); err != nil {
			return false, fmt.Errorf("delete like: %w", err)
		}
		return false, nil
	}

	if err := w.repo.CreateLike(ctx, userID, messageID); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			// lost the race to a concurrent like; the row exists
			return true, nil
		}
		return false, fmt.Errorf("create like: %w", err)
	}
	return true, nil
}

func (w *Warbler) LikedWarbles(ctx context.Context, userID int64) ([]WarbleRecord, error) {
	if _, err := w.repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user from db: %w", err)
	}
	messages, err := w.repo.LikedMessages(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("liked messages: %w", err)
	}
	return toWarbleRecords(messages), nil
}

func (w *Warbler) LikedWarbleIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := w.repo.LikedMessageIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("liked message ids: %w", err)
	}
	return ids, nil
}

// ---- users ----

func (w *Warbler) ListUsers(ctx context.Context, q string) ([]UserRecord, error) {
	users, err := w.repo.SearchUsers(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return toUserRecords(users), nil
}

// UserProfile returns the user and their latest 100 warbles.
func (w *Warbler) UserProfile(ctx context.Context, userID int64) (UserRecord, []WarbleRecord, error) {
	user, err := w.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return UserRecord{}, nil, ErrUserNotFound
		}
		return UserRecord{}, nil, fmt.Errorf("get user from db: %w", err)
	}

	messages, err := w.repo.RecentMessagesByAuthors(ctx, []int64{userID}, profileFeedLimit)
	if err != nil {
		return UserRecord{}, nil, fmt.Errorf("recent messages by authors: %w", err)
	}

	return toUserRecord(user), toWarbleRecords(messages), nil
}

func (w *Warbler) GetUser(ctx context.Context, userID int64) (UserRecord, error) {
	user, err := w.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user from db: %w", err)
	}
	return toUserRecord(user), nil
}

func toUserRecord(user repository.User) UserRecord {
	return UserRecord{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		ImageURL:       user.ImageURL,
		HeaderImageURL: user.HeaderImageURL,
		Bio:            user.Bio,
		Location:       user.Location,
	}
}

func toUserRecords(users []repository.User) []UserRecord {
	records := make([]UserRecord, len(users))
	for i, u := range users {
		records[i] = toUserRecord(u)
	}
	return records
}

func toWarbleRecord(msg repository.Message) WarbleRecord {
	return WarbleRecord{
		ID:        msg.ID,
		Text:      msg.Text,
		Timestamp: msg.Timestamp,
		UserID:    msg.UserID,
	}
}

func toWarbleRecords(messages []repository.Message) []WarbleRecord {
	records := make([]WarbleRecord, len(messages))
	for i, m := range messages {
		records[i] = toWarbleRecord(m)
	}
	return records
}
