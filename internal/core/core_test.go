package core_test

import (
	"context"
	"errors"
	"time"
	"warbler/internal/core"
	"warbler/internal/core/fake"
	"warbler/internal/db"
	"warbler/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Warbler", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		warbler *core.Warbler

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		warbler = core.NewWarbler(fakeLogger, fakeRepo, bcrypt.MinCost)

		fakeErr = errors.New("fake error")
	})

	Describe("Signup", func() {
		var (
			signupMsg core.SignupMessage
			record    core.UserRecord
			err       error
		)

		BeforeEach(func() {
			signupMsg = core.SignupMessage{
				Username: "testuser",
				Email:    "test@example.com",
				Password: "testpass",
			}
			fakeRepo.CreateUserStub = func(_ context.Context, user repository.User) (repository.User, error) {
				user.ID = 42
				return user, nil
			}
		})

		JustBeforeEach(func() {
			record, err = warbler.Signup(ctx, signupMsg)
		})

		It("creates the account with a hashed password", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(Equal(int64(42)))
			Expect(record.Username).To(Equal("testuser"))

			Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
			_, argUser := fakeRepo.CreateUserArgsForCall(0)
			Expect(argUser.PasswordHash).NotTo(Equal("testpass"))
			Expect(bcrypt.CompareHashAndPassword([]byte(argUser.PasswordHash), []byte("testpass"))).To(Succeed())
		})

		It("applies the default profile images", func() {
			Expect(err).NotTo(HaveOccurred())

			_, argUser := fakeRepo.CreateUserArgsForCall(0)
			Expect(argUser.ImageURL).To(Equal(repository.DefaultImageURL))
			Expect(argUser.HeaderImageURL).To(Equal(repository.DefaultHeaderImageURL))
		})

		When("an image url is provided", func() {
			BeforeEach(func() {
				signupMsg.ImageURL = "/static/images/me.png"
			})

			It("keeps the provided image url", func() {
				Expect(err).NotTo(HaveOccurred())
				_, argUser := fakeRepo.CreateUserArgsForCall(0)
				Expect(argUser.ImageURL).To(Equal("/static/images/me.png"))
			})
		})

		When("the username or email is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, db.ErrDuplicate)
			})

			It("returns a credentials taken error", func() {
				Expect(err).To(MatchError(core.ErrCredentialsTaken))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			record         core.UserRecord
			err            error
			hashedPassword []byte
		)

		BeforeEach(func() {
			hashedPassword, _ = bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			record, err = warbler.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           7,
					Username:     authMsg.Username,
					PasswordHash: string(hashedPassword),
				}, nil)
			})

			It("returns the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(int64(7)))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, argUsername := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(argUsername).To(Equal(authMsg.Username))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: string(hashedPassword),
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("returns invalid credentials", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, db.ErrNotFound)
			})

			It("returns the same invalid credentials error as a bad password", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateProfile", func() {
		var (
			update         core.ProfileUpdate
			record         core.UserRecord
			err            error
			hashedPassword []byte
		)

		BeforeEach(func() {
			hashedPassword, _ = bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)

			update = core.ProfileUpdate{
				Username: "renamed",
				Email:    "renamed@example.com",
				Bio:      "new bio",
				Password: "testpass",
			}

			fakeRepo.GetUserByIDReturns(repository.User{
				ID:             7,
				Username:       "testuser",
				Email:          "test@example.com",
				PasswordHash:   string(hashedPassword),
				ImageURL:       "/static/images/old.png",
				HeaderImageURL: "/static/images/old-hero.png",
			}, nil)
		})

		JustBeforeEach(func() {
			record, err = warbler.UpdateProfile(ctx, 7, update)
		})

		It("applies the edit and keeps stored images when blank", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Username).To(Equal("renamed"))
			Expect(record.Bio).To(Equal("new bio"))
			Expect(record.ImageURL).To(Equal("/static/images/old.png"))

			Expect(fakeRepo.UpdateUserCallCount()).To(Equal(1))
			_, argUser := fakeRepo.UpdateUserArgsForCall(0)
			Expect(argUser.ID).To(Equal(int64(7)))
			Expect(argUser.Username).To(Equal("renamed"))
			Expect(argUser.HeaderImageURL).To(Equal("/static/images/old-hero.png"))
		})

		When("a new image url is provided", func() {
			BeforeEach(func() {
				update.ImageURL = "/static/images/new.png"
			})

			It("replaces the stored image", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ImageURL).To(Equal("/static/images/new.png"))
			})
		})

		When("the current password is wrong", func() {
			BeforeEach(func() {
				update.Password = "wrongpass"
			})

			It("returns invalid credentials without updating", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeRepo.UpdateUserCallCount()).To(Equal(0))
			})
		})

		When("the new username or email is taken", func() {
			BeforeEach(func() {
				fakeRepo.UpdateUserReturns(db.ErrDuplicate)
			})

			It("returns a credentials taken error", func() {
				Expect(err).To(MatchError(core.ErrCredentialsTaken))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, db.ErrNotFound)
			})

			It("returns a not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("PostWarble", func() {
		var (
			record core.WarbleRecord
			err    error
		)

		BeforeEach(func() {
			fakeRepo.CreateMessageStub = func(_ context.Context, msg repository.Message) (repository.Message, error) {
				msg.ID = 11
				return msg, nil
			}
		})

		JustBeforeEach(func() {
			record, err = warbler.PostWarble(ctx, 7, "hello birds")
		})

		It("stores the message with a UTC timestamp", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(Equal(int64(11)))
			Expect(record.Text).To(Equal("hello birds"))
			Expect(record.UserID).To(Equal(int64(7)))

			Expect(fakeRepo.CreateMessageCallCount()).To(Equal(1))
			_, argMsg := fakeRepo.CreateMessageArgsForCall(0)
			Expect(argMsg.Timestamp.Location()).To(Equal(time.UTC))
			Expect(argMsg.Timestamp).To(BeTemporally("~", time.Now(), time.Minute))
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateMessageStub = nil
				fakeRepo.CreateMessageReturns(repository.Message{}, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteWarble", func() {
		var err error

		BeforeEach(func() {
			fakeRepo.GetMessageReturns(repository.Message{ID: 11, UserID: 7}, nil)
		})

		JustBeforeEach(func() {
			err = warbler.DeleteWarble(ctx, 7, 11)
		})

		It("deletes the author's own message", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRepo.DeleteMessageCallCount()).To(Equal(1))
			_, argID := fakeRepo.DeleteMessageArgsForCall(0)
			Expect(argID).To(Equal(int64(11)))
		})

		When("the caller is not the author", func() {
			BeforeEach(func() {
				fakeRepo.GetMessageReturns(repository.Message{ID: 11, UserID: 99}, nil)
			})

			It("refuses without deleting", func() {
				Expect(err).To(MatchError(core.ErrNotWarbleAuthor))
				Expect(fakeRepo.DeleteMessageCallCount()).To(Equal(0))
			})
		})

		When("the message does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetMessageReturns(repository.Message{}, db.ErrNotFound)
			})

			It("returns a not found error", func() {
				Expect(err).To(MatchError(core.ErrWarbleNotFound))
			})
		})
	})

	Describe("HomeFeed", func() {
		var (
			feed core.FeedResult
			err  error
		)

		JustBeforeEach(func() {
			feed, err = warbler.HomeFeed(ctx, 7)
		})

		When("the user follows other users", func() {
			BeforeEach(func() {
				fakeRepo.FollowingIDsReturns([]int64{2, 3}, nil)
				fakeRepo.RecentMessagesByAuthorsReturns([]repository.Message{
					{ID: 5, UserID: 3, Text: "newest"},
					{ID: 4, UserID: 7, Text: "own"},
					{ID: 1, UserID: 2, Text: "oldest"},
				}, nil)
			})

			It("returns messages from followed users and the user themselves", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(feed.Fallback).To(BeFalse())
				Expect(feed.Warbles).To(HaveLen(3))

				Expect(fakeRepo.RecentMessagesByAuthorsCallCount()).To(Equal(1))
				_, argAuthors, argLimit := fakeRepo.RecentMessagesByAuthorsArgsForCall(0)
				Expect(argAuthors).To(ConsistOf(int64(2), int64(3), int64(7)))
				Expect(argLimit).To(Equal(100))
				Expect(fakeRepo.RecentMessagesCallCount()).To(Equal(0))
			})
		})

		When("the user follows nobody", func() {
			BeforeEach(func() {
				fakeRepo.FollowingIDsReturns([]int64{}, nil)
				fakeRepo.RecentMessagesReturns([]repository.Message{
					{ID: 9, UserID: 4, Text: "global"},
				}, nil)
			})

			It("falls back to the global timeline", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(feed.Fallback).To(BeTrue())
				Expect(feed.Warbles).To(HaveLen(1))

				Expect(fakeRepo.RecentMessagesCallCount()).To(Equal(1))
				_, argLimit := fakeRepo.RecentMessagesArgsForCall(0)
				Expect(argLimit).To(Equal(50))
				Expect(fakeRepo.RecentMessagesByAuthorsCallCount()).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.FollowingIDsReturns(nil, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SuggestUsers", func() {
		var (
			records []core.UserRecord
			err     error
			userID  int64
			limit   int
		)

		BeforeEach(func() {
			userID = 7
			limit = 10
		})

		JustBeforeEach(func() {
			records, err = warbler.SuggestUsers(ctx, userID, limit)
		})

		When("candidates have differing follower counts", func() {
			BeforeEach(func() {
				fakeRepo.SuggestionCandidatesReturns([]repository.SuggestionCandidate{
					{User: repository.User{ID: 1, Username: "a"}, FollowerCount: 0},
					{User: repository.User{ID: 2, Username: "b"}, FollowerCount: 3},
					{User: repository.User{ID: 3, Username: "c"}, FollowerCount: 3},
					{User: repository.User{ID: 4, Username: "d"}, FollowerCount: 10},
				}, nil)
			})

			It("ranks by follower count descending with id as tie-break", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(4))
				Expect(records[0].Username).To(Equal("d"))
				Expect(records[1].Username).To(Equal("b"))
				Expect(records[2].Username).To(Equal("c"))
				Expect(records[3].Username).To(Equal("a"))
				Expect(records[0].FollowerCount).To(Equal(int64(10)))
			})
		})

		When("more candidates exist than the limit", func() {
			BeforeEach(func() {
				limit = 2
				fakeRepo.SuggestionCandidatesReturns([]repository.SuggestionCandidate{
					{User: repository.User{ID: 1}, FollowerCount: 1},
					{User: repository.User{ID: 2}, FollowerCount: 2},
					{User: repository.User{ID: 3}, FollowerCount: 3},
				}, nil)
			})

			It("truncates to the limit after ranking", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].ID).To(Equal(int64(3)))
				Expect(records[1].ID).To(Equal(int64(2)))
			})
		})

		When("the user id is not a valid account", func() {
			BeforeEach(func() {
				userID = 0
			})

			It("returns no suggestions without querying", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
				Expect(fakeRepo.SuggestionCandidatesCallCount()).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.SuggestionCandidatesReturns(nil, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Follow", func() {
		var err error

		BeforeEach(func() {
			fakeRepo.GetUserByIDReturns(repository.User{ID: 2}, nil)
		})

		JustBeforeEach(func() {
			err = warbler.Follow(ctx, 7, 2)
		})

		It("creates the follow edge", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRepo.CreateFollowCallCount()).To(Equal(1))
			_, argFollower, argFollowed := fakeRepo.CreateFollowArgsForCall(0)
			Expect(argFollower).To(Equal(int64(7)))
			Expect(argFollowed).To(Equal(int64(2)))
		})

		When("the edge already exists", func() {
			BeforeEach(func() {
				fakeRepo.CreateFollowReturns(db.ErrDuplicate)
			})

			It("is a no-op", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the target does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, db.ErrNotFound)
			})

			It("returns a not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeRepo.CreateFollowCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Unfollow", func() {
		var err error

		BeforeEach(func() {
			fakeRepo.GetUserByIDReturns(repository.User{ID: 2}, nil)
		})

		JustBeforeEach(func() {
			err = warbler.Unfollow(ctx, 7, 2)
		})

		It("removes the follow edge", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRepo.DeleteFollowCallCount()).To(Equal(1))
		})

		When("the target does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, db.ErrNotFound)
			})

			It("returns a not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("ToggleLike", func() {
		var (
			liked bool
			err   error
		)

		BeforeEach(func() {
			fakeRepo.GetMessageReturns(repository.Message{ID: 11, UserID: 2}, nil)
		})

		JustBeforeEach(func() {
			liked, err = warbler.ToggleLike(ctx, 7, 11)
		})

		When("the message is not yet liked", func() {
			BeforeEach(func() {
				fakeRepo.LikeExistsReturns(false, nil)
			})

			It("creates the like and reports liked", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(liked).To(BeTrue())
				Expect(fakeRepo.CreateLikeCallCount()).To(Equal(1))
				Expect(fakeRepo.DeleteLikeCallCount()).To(Equal(0))
			})
		})

		When("the message is already liked", func() {
			BeforeEach(func() {
				fakeRepo.LikeExistsReturns(true, nil)
			})

			It("removes the like and reports unliked", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(liked).To(BeFalse())
				Expect(fakeRepo.DeleteLikeCallCount()).To(Equal(1))
				Expect(fakeRepo.CreateLikeCallCount()).To(Equal(0))
			})
		})

		When("the user is the author", func() {
			BeforeEach(func() {
				fakeRepo.GetMessageReturns(repository.Message{ID: 11, UserID: 7}, nil)
			})

			It("refuses to like", func() {
				Expect(err).To(MatchError(core.ErrOwnWarble))
				Expect(fakeRepo.LikeExistsCallCount()).To(Equal(0))
			})
		})

		When("a concurrent like wins the insert", func() {
			BeforeEach(func() {
				fakeRepo.LikeExistsReturns(false, nil)
				fakeRepo.CreateLikeReturns(db.ErrDuplicate)
			})

			It("treats the like as existing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(liked).To(BeTrue())
			})
		})

		When("the message does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetMessageReturns(repository.Message{}, db.ErrNotFound)
			})

			It("returns a not found error", func() {
				Expect(err).To(MatchError(core.ErrWarbleNotFound))
			})
		})
	})

	Describe("ToggleLike twice", func() {
		var exists bool

		BeforeEach(func() {
			fakeRepo.GetMessageReturns(repository.Message{ID: 11, UserID: 2}, nil)
			fakeRepo.LikeExistsStub = func(context.Context, int64, int64) (bool, error) {
				return exists, nil
			}
			fakeRepo.CreateLikeStub = func(context.Context, int64, int64) error {
				exists = true
				return nil
			}
			fakeRepo.DeleteLikeStub = func(context.Context, int64, int64) error {
				exists = false
				return nil
			}
		})

		It("returns to the original state", func() {
			liked, err := warbler.ToggleLike(ctx, 7, 11)
			Expect(err).NotTo(HaveOccurred())
			Expect(liked).To(BeTrue())

			liked, err = warbler.ToggleLike(ctx, 7, 11)
			Expect(err).NotTo(HaveOccurred())
			Expect(liked).To(BeFalse())
			Expect(exists).To(BeFalse())
		})
	})

	Describe("UserProfile", func() {
		var (
			record  core.UserRecord
			warbles []core.WarbleRecord
			err     error
		)

		BeforeEach(func() {
			fakeRepo.GetUserByIDReturns(repository.User{ID: 7, Username: "testuser"}, nil)
			fakeRepo.RecentMessagesByAuthorsReturns([]repository.Message{
				{ID: 3, UserID: 7}, {ID: 2, UserID: 7},
			}, nil)
		})

		JustBeforeEach(func() {
			record, warbles, err = warbler.UserProfile(ctx, 7)
		})

		It("returns the user and their latest messages", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Username).To(Equal("testuser"))
			Expect(warbles).To(HaveLen(2))

			_, argAuthors, argLimit := fakeRepo.RecentMessagesByAuthorsArgsForCall(0)
			Expect(argAuthors).To(Equal([]int64{7}))
			Expect(argLimit).To(Equal(100))
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, db.ErrNotFound)
			})

			It("returns a not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("DeleteAccount", func() {
		It("deletes the user record", func() {
			Expect(warbler.DeleteAccount(ctx, 7)).To(Succeed())
			Expect(fakeRepo.DeleteUserCallCount()).To(Equal(1))
			_, argID := fakeRepo.DeleteUserArgsForCall(0)
			Expect(argID).To(Equal(int64(7)))
		})
	})
})
