package repository_test

import (
	"context"
	"database/sql"
	"time"
	"warbler/internal/db"
	"warbler/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ = Describe("WarbleRepository", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		repo   *repository.WarbleRepository
		ctx    context.Context
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
		Expect(err).NotTo(HaveOccurred())

		repo = repository.NewWarbleRepository(&db.PostgresDB{DB: gormDB})
		ctx = context.Background()
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("CreateUser", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`INSERT INTO "users".*RETURNING "id"`).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
			mock.ExpectCommit()
		})

		It("should return the user with the assigned id", func() {
			user, err := repo.CreateUser(ctx, repository.User{
				Username:     "alice",
				Email:        "alice@example.com",
				PasswordHash: "hash",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(42)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetUserByUsername", func() {
		When("the user exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 ORDER BY "users"\."id" LIMIT \$2`).
					WithArgs("alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
						AddRow(42, "alice", "alice@example.com"))
			})

			It("should return the user", func() {
				user, err := repo.GetUserByUsername(ctx, "alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(int64(42)))
				Expect(user.Username).To(Equal("alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 ORDER BY "users"\."id" LIMIT \$2`).
					WithArgs("ghost", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
			})

			It("should return a not found error", func() {
				_, err := repo.GetUserByUsername(ctx, "ghost")
				Expect(err).To(MatchError(db.ErrNotFound))
			})
		})
	})

	Describe("SearchUsers", func() {
		When("a query is given", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "users" WHERE username LIKE \$1 ORDER BY id ASC`).
					WithArgs("%ali%").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(42, "alice"))
			})

			It("should filter by substring", func() {
				users, err := repo.SearchUsers(ctx, "ali")
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(HaveLen(1))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query contains LIKE wildcards", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "users" WHERE username LIKE \$1 ORDER BY id ASC`).
					WithArgs(`%50\%%`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
			})

			It("should match them literally", func() {
				users, err := repo.SearchUsers(ctx, "50%")
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(BeEmpty())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query is empty", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY id ASC`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "alice").AddRow(2, "bob"))
			})

			It("should list all users", func() {
				users, err := repo.SearchUsers(ctx, "")
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(HaveLen(2))
			})
		})
	})

	Describe("CreateMessage", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`INSERT INTO "messages".*RETURNING "id"`).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
			mock.ExpectCommit()
		})

		It("should return the message with the assigned id", func() {
			msg, err := repo.CreateMessage(ctx, repository.Message{
				Text:      "hello birds",
				Timestamp: time.Now().UTC(),
				UserID:    42,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(msg.ID).To(Equal(int64(11)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("RecentMessagesByAuthors", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "messages" WHERE user_id IN \(\$1,\$2\) ORDER BY timestamp DESC, id DESC LIMIT \$3`).
				WithArgs(2, 7, 100).
				WillReturnRows(sqlmock.NewRows([]string{"id", "text", "user_id"}).
					AddRow(5, "newest", 2).
					AddRow(1, "oldest", 7))
		})

		It("should query the given authors newest first", func() {
			messages, err := repo.RecentMessagesByAuthors(ctx, []int64{2, 7}, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(2))
			Expect(messages[0].ID).To(Equal(int64(5)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("CreateFollow", func() {
		When("the edge is new", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "follows"`).
					WithArgs(7, 2).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should insert the edge", func() {
				Expect(repo.CreateFollow(ctx, 7, 2)).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("FollowingIDs", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT "followed_id" FROM "follows" WHERE follower_id = \$1`).
				WithArgs(7).
				WillReturnRows(sqlmock.NewRows([]string{"followed_id"}).AddRow(2).AddRow(3))
		})

		It("should return the followed user ids", func() {
			ids, err := repo.FollowingIDs(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal([]int64{2, 3}))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("SuggestionCandidates", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT users\.\*, COUNT\(follows\.follower_id\) AS follower_count FROM "users" LEFT JOIN follows ON follows\.followed_id = users\.id WHERE users\.id <> \$1 AND users\.id NOT IN \(SELECT follower_id FROM follows WHERE followed_id = \$2\) GROUP BY "users"\."id"`).
				WithArgs(7, 7).
				WillReturnRows(sqlmock.NewRows([]string{"id", "username", "follower_count"}).
					AddRow(2, "bob", 3).
					AddRow(3, "carol", 0))
		})

		It("should return users with their incoming follow counts", func() {
			candidates, err := repo.SuggestionCandidates(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(candidates).To(HaveLen(2))
			Expect(candidates[0].Username).To(Equal("bob"))
			Expect(candidates[0].FollowerCount).To(Equal(int64(3)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("LikeExists", func() {
		When("the like exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "likes" WHERE user_id = \$1 AND message_id = \$2`).
					WithArgs(7, 11).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			})

			It("should report true", func() {
				exists, err := repo.LikeExists(ctx, 7, 11)
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())
			})
		})

		When("the like does not exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "likes" WHERE user_id = \$1 AND message_id = \$2`).
					WithArgs(7, 11).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			})

			It("should report false", func() {
				exists, err := repo.LikeExists(ctx, 7, 11)
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeFalse())
			})
		})
	})

	Describe("DeleteLike", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM "likes" WHERE user_id = \$1 AND message_id = \$2`).
				WithArgs(7, 11).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should delete the like row", func() {
			Expect(repo.DeleteLike(ctx, 7, 11)).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("LikedMessageIDs", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT "message_id" FROM "likes" WHERE user_id = \$1`).
				WithArgs(7).
				WillReturnRows(sqlmock.NewRows([]string{"message_id"}).AddRow(11).AddRow(12))
		})

		It("should return the liked message ids", func() {
			ids, err := repo.LikedMessageIDs(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal([]int64{11, 12}))
		})
	})
})
