package repository

import (
	"context"
	"fmt"
	"strings"
	"warbler/internal/db"
)

type WarbleRepository struct {
	db *db.PostgresDB
}

func NewWarbleRepository(store *db.PostgresDB) *WarbleRepository {
	return &WarbleRepository{
		db: store,
	}
}

func (r *WarbleRepository) Migrate() error {
	err := r.db.MigrateTable(&User{}, &Message{}, &Follow{}, &Like{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// ---- users ----

func (r *WarbleRepository) CreateUser(ctx context.Context, user User) (User, error) {
	err := r.db.DB.WithContext(ctx).Create(&user).Error
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", db.TranslateError(err))
	}
	return user, nil
}

func (r *WarbleRepository) GetUserByID(ctx context.Context, id int64) (User, error) {
	var user User
	err := r.db.DB.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return User{}, fmt.Errorf("get user by id: %w", db.TranslateError(err))
	}
	return user, nil
}

func (r *WarbleRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User
	err := r.db.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return User{}, fmt.Errorf("get user by username: %w", db.TranslateError(err))
	}
	return user, nil
}

// likeEscaper neutralizes LIKE wildcards so q matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchUsers lists all users, or those whose username contains q.
func (r *WarbleRepository) SearchUsers(ctx context.Context, q string) ([]User, error) {
	users := []User{}
	tx := r.db.DB.WithContext(ctx)
	if q != "" {
		tx = tx.Where("username LIKE ?", "%"+likeEscaper.Replace(q)+"%")
	}
	if err := tx.Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("search users: %w", db.TranslateError(err))
	}
	return users, nil
}

func (r *WarbleRepository) UpdateUser(ctx context.Context, user User) error {
	err := r.db.DB.WithContext(ctx).Save(&user).Error
	if err != nil {
		return fmt.Errorf("update user: %w", db.TranslateError(err))
	}
	return nil
}

// DeleteUser removes the user row only. Dependent messages, follow edges and
// likes go with it through the ON DELETE CASCADE constraints.
func (r *WarbleRepository) DeleteUser(ctx context.Context, id int64) error {
	err := r.db.DB.WithContext(ctx).Delete(&User{}, id).Error
	if err != nil {
		return fmt.Errorf("delete user: %w", db.TranslateError(err))
	}
	return nil
}

// ---- messages ----

func (r *WarbleRepository) CreateMessage(ctx context.Context, msg Message) (Message, error) {
	err := r.db.DB.WithContext(ctx).Create(&msg).Error
	if err != nil {
		return Message{}, fmt.Errorf("create message: %w", db.TranslateError(err))
	}
	return msg, nil
}

func (r *WarbleRepository) GetMessage(ctx context.Context, id int64) (Message, error) {
	var msg Message
	err := r.db.DB.WithContext(ctx).First(&msg, id).Error
	if err != nil {
		return Message{}, fmt.Errorf("get message: %w", db.TranslateError(err))
	}
	return msg, nil
}

func (r *WarbleRepository) DeleteMessage(ctx context.Context, id int64) error {
	err := r.db.DB.WithContext(ctx).Delete(&Message{}, id).Error
	if err != nil {
		return fmt.Errorf("delete message: %w", db.TranslateError(err))
	}
	return nil
}

// RecentMessagesByAuthors returns the newest messages authored by any of the
// given users, newest first.
func (r *WarbleRepository) RecentMessagesByAuthors(ctx context.Context, authorIDs []int64, limit int) ([]Message, error) {
	messages := []Message{}
	err := r.db.DB.WithContext(ctx).
		Where("user_id IN ?", authorIDs).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("recent messages by authors: %w", db.TranslateError(err))
	}
	return messages, nil
}

// RecentMessages returns the newest messages across all users, newest first.
func (r *WarbleRepository) RecentMessages(ctx context.Context, limit int) ([]Message, error) {
	messages := []Message{}
	err := r.db.DB.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("recent messages: %w", db.TranslateError(err))
	}
	return messages, nil
}

// ---- follows ----

func (r *WarbleRepository) CreateFollow(ctx context.Context, followerID, followedID int64) error {
	follow := Follow{FollowerID: followerID, FollowedID: followedID}
	err := r.db.DB.WithContext(ctx).Create(&follow).Error
	if err != nil {
		return fmt.Errorf("create follow: %w", db.TranslateError(err))
	}
	return nil
}

func (r *WarbleRepository) DeleteFollow(ctx context.Context, followerID, followedID int64) error {
	err := r.db.DB.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&Follow{}).Error
	if err != nil {
		return fmt.Errorf("delete follow: %w", db.TranslateError(err))
	}
	return nil
}

func (r *WarbleRepository) FollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.DB.WithContext(ctx).
		Model(&Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followed_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("following ids: %w", db.TranslateError(err))
	}
	return ids, nil
}

func (r *WarbleRepository) Following(ctx context.Context, userID int64) ([]User, error) {
	users := []User{}
	err := r.db.DB.WithContext(ctx).
		Model(&User{}).
		Joins("INNER JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("users.id ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("following: %w", db.TranslateError(err))
	}
	return users, nil
}

func (r *WarbleRepository) Followers(ctx context.Context, userID int64) ([]User, error) {
	users := []User{}
	err := r.db.DB.WithContext(ctx).
		Model(&User{}).
		Joins("INNER JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", userID).
		Order("users.id ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("followers: %w", db.TranslateError(err))
	}
	return users, nil
}

// SuggestionCandidates returns every user except userID itself and except
// users who already follow userID, each with their incoming follow count.
// Ranking and truncation happen in core.
func (r *WarbleRepository) SuggestionCandidates(ctx context.Context, userID int64) ([]SuggestionCandidate, error) {
	candidates := []SuggestionCandidate{}
	err := r.db.DB.WithContext(ctx).
		Model(&User{}).
		Select("users.*, COUNT(follows.follower_id) AS follower_count").
		Joins("LEFT JOIN follows ON follows.followed_id = users.id").
		Where("users.id <> ?", userID).
		Where("users.id NOT IN (SELECT follower_id FROM follows WHERE followed_id = ?)", userID).
		Group("users.id").
		Scan(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("suggestion candidates: %w", db.TranslateError(err))
	}
	return candidates, nil
}

// ---- likes ----

func (r *WarbleRepository) CreateLike(ctx context.Context, userID, messageID int64) error {
	like := Like{UserID: userID, MessageID: messageID}
	err := r.db.DB.WithContext(ctx).Create(&like).Error
	if err != nil {
		return fmt.Errorf("create like: %w", db.TranslateError(err))
	}
	return nil
}

func (r *WarbleRepository) DeleteLike(ctx context.Context, userID, messageID int64) error {
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&Like{}).Error
	if err != nil {
		return fmt.Errorf("delete like: %w", db.TranslateError(err))
	}
	return nil
}

func (r *WarbleRepository) LikeExists(ctx context.Context, userID, messageID int64) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("like exists: %w", db.TranslateError(err))
	}
	return count > 0, nil
}

func (r *WarbleRepository) LikedMessages(ctx context.Context, userID int64) ([]Message, error) {
	messages := []Message{}
	err := r.db.DB.WithContext(ctx).
		Model(&Message{}).
		Joins("INNER JOIN likes ON likes.message_id = messages.id").
		Where("likes.user_id = ?", userID).
		Order("messages.timestamp DESC, messages.id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("liked messages: %w", db.TranslateError(err))
	}
	return messages, nil
}

func (r *WarbleRepository) LikedMessageIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.DB.WithContext(ctx).
		Model(&Like{}).
		Where("user_id = ?", userID).
		Pluck("message_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("liked message ids: %w", db.TranslateError(err))
	}
	return ids, nil
}
