package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"warbler/internal/core"
	"warbler/internal/http/handler"
	"warbler/internal/http/handler/fake"
	"warbler/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("WarbleHandler", func() {
	var (
		wh            *handler.WarbleHandler
		fakeService   *fake.WarbleService
		fakeSessions  *fake.SessionManager
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	asUser := func(r *http.Request, userID int64) *http.Request {
		ctx := context.WithValue(r.Context(), middleware.CurrentUserKey, userID)
		return r.WithContext(ctx)
	}

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.WarbleService)
		fakeSessions = new(fake.SessionManager)
		fakeSessions.CreateReturns("session-id", nil)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		wh = handler.NewWarbleHandler(fakeLogger, fakeValidator, fakeService, fakeSessions)
	})

	Describe("HandleSignup", func() {
		var response map[string]core.UserRecord

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"testuser","email":"test@example.com","password":"testpass"}`)
			req = httptest.NewRequest("POST", "/signup", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.SignupReturns(core.UserRecord{ID: 7, Username: "testuser"}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleSignup(w, req)
		})

		When("signup succeeds", func() {
			It("should return 201 with the user and start a session", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["user"].Username).To(Equal("testuser"))

				Expect(fakeService.SignupCallCount()).To(Equal(1))
				_, argMsg := fakeService.SignupArgsForCall(0)
				Expect(argMsg.Username).To(Equal("testuser"))

				Expect(fakeSessions.CreateCallCount()).To(Equal(1))
				_, argUserID := fakeSessions.CreateArgsForCall(0)
				Expect(argUserID).To(Equal(int64(7)))

				cookies := w.Result().Cookies()
				Expect(cookies).To(HaveLen(1))
				Expect(cookies[0].Name).To(Equal(middleware.SessionCookieName))
				Expect(cookies[0].Value).To(Equal("session-id"))
				Expect(cookies[0].HttpOnly).To(BeTrue())
			})
		})

		When("the payload fails validation", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/signup", strings.NewReader(`{"username":"testuser"}`))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SignupCallCount()).To(Equal(0))
			})
		})

		When("the username or email is taken", func() {
			BeforeEach(func() {
				fakeService.SignupReturns(core.UserRecord{}, core.ErrCredentialsTaken)
			})

			It("should return status 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))

				var errResp handler.Response
				Expect(json.NewDecoder(w.Body).Decode(&errResp)).To(Succeed())
				Expect(errResp.Message).To(ContainSubstring("already taken"))
				Expect(errResp.Error).NotTo(BeEmpty())

				Expect(fakeSessions.CreateCallCount()).To(Equal(0))
			})
		})

		When("the session store fails", func() {
			BeforeEach(func() {
				fakeSessions.CreateReturns("", fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"testuser","password":"testpass"}`)
			req = httptest.NewRequest("POST", "/login", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.AuthenticateReturns(core.UserRecord{ID: 7, Username: "testuser"}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleLogin(w, req)
		})

		When("credentials are valid", func() {
			It("should greet the user and set the session cookie", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["message"]).To(Equal("Hello, testuser!"))

				cookies := w.Result().Cookies()
				Expect(cookies).To(HaveLen(1))
				Expect(cookies[0].Value).To(Equal("session-id"))
			})
		})

		When("credentials are invalid", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns(core.UserRecord{}, core.ErrInvalidCredentials)
			})

			It("should return 401 with a generic message", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("Invalid credentials."))
				Expect(fakeSessions.CreateCallCount()).To(Equal(0))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns(core.UserRecord{}, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleLogout", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/logout", nil)
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "session-id"})
			req = asUser(req, 7)
		})

		JustBeforeEach(func() {
			wh.HandleLogout(w, req)
		})

		It("should delete the session and expire the cookie", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			Expect(fakeSessions.DeleteCallCount()).To(Equal(1))
			_, argSessionID := fakeSessions.DeleteArgsForCall(0)
			Expect(argSessionID).To(Equal("session-id"))

			cookies := w.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].MaxAge).To(Equal(-1))
		})

		When("the request is anonymous", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/logout", nil)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeSessions.DeleteCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleHome", func() {
		var response map[string]any

		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/", nil)
		})

		JustBeforeEach(func() {
			wh.HandleHome(w, req)
			response = map[string]any{}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		})

		When("the request is anonymous", func() {
			It("should return the splash payload without touching the feed", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(response["anonymous"]).To(Equal(true))
				Expect(fakeService.HomeFeedCallCount()).To(Equal(0))
			})
		})

		When("the user is logged in", func() {
			BeforeEach(func() {
				req = asUser(req, 7)
				fakeService.HomeFeedReturns(core.FeedResult{
					Warbles: []core.WarbleRecord{{ID: 1, Text: "hello"}},
				}, nil)
				fakeService.SuggestUsersReturns([]core.UserRecord{{ID: 2, Username: "friend"}}, nil)
				fakeService.LikedWarbleIDsReturns([]int64{1}, nil)
			})

			It("should return feed, suggestions and liked ids", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(response["messages"]).To(HaveLen(1))
				Expect(response["suggested_users"]).To(HaveLen(1))
				Expect(response["liked_message_ids"]).To(HaveLen(1))
				Expect(response).NotTo(HaveKey("message"))

				Expect(fakeService.HomeFeedCallCount()).To(Equal(1))
				_, argUserID := fakeService.HomeFeedArgsForCall(0)
				Expect(argUserID).To(Equal(int64(7)))
			})
		})

		When("the feed fell back to the global timeline", func() {
			BeforeEach(func() {
				req = asUser(req, 7)
				fakeService.HomeFeedReturns(core.FeedResult{
					Warbles:  []core.WarbleRecord{{ID: 9, Text: "global"}},
					Fallback: true,
				}, nil)
				fakeService.SuggestUsersReturns([]core.UserRecord{}, nil)
				fakeService.LikedWarbleIDsReturns([]int64{}, nil)
			})

			It("should include the empty-feed hint", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(response["fallback"]).To(Equal(true))
				Expect(response["message"]).To(ContainSubstring("follow people"))
			})
		})

		When("the feed cannot be built", func() {
			BeforeEach(func() {
				req = asUser(req, 7)
				fakeService.HomeFeedReturns(core.FeedResult{}, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleToggleLike", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/messages/11/like", nil)
			req.SetPathValue("id", "11")
			req = asUser(req, 7)
			fakeService.ToggleLikeReturns(true, nil)
		})

		JustBeforeEach(func() {
			wh.HandleToggleLike(w, req)
		})

		It("should toggle the like and report the new state", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]bool
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["liked"]).To(BeTrue())

			Expect(fakeService.ToggleLikeCallCount()).To(Equal(1))
			_, argUserID, argMessageID := fakeService.ToggleLikeArgsForCall(0)
			Expect(argUserID).To(Equal(int64(7)))
			Expect(argMessageID).To(Equal(int64(11)))
		})

		When("the request is anonymous", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/messages/11/like", nil)
				req.SetPathValue("id", "11")
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.ToggleLikeCallCount()).To(Equal(0))
			})
		})

		When("the message belongs to the user", func() {
			BeforeEach(func() {
				fakeService.ToggleLikeReturns(false, core.ErrOwnWarble)
			})

			It("should return status 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(w.Body.String()).To(ContainSubstring("your own message"))
			})
		})

		When("the message does not exist", func() {
			BeforeEach(func() {
				fakeService.ToggleLikeReturns(false, core.ErrWarbleNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is not numeric", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/messages/abc/like", nil)
				req.SetPathValue("id", "abc")
				req = asUser(req, 7)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(fakeService.ToggleLikeCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandlePostWarble", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"text":"hello birds"}`)
			req = httptest.NewRequest("POST", "/messages", body)
			req.Header.Set("Content-Type", "application/json")
			req = asUser(req, 7)

			fakeService.PostWarbleReturns(core.WarbleRecord{ID: 11, Text: "hello birds", UserID: 7}, nil)
		})

		JustBeforeEach(func() {
			wh.HandlePostWarble(w, req)
		})

		It("should return 201 with the created message", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))

			var response map[string]core.WarbleRecord
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["message"].ID).To(Equal(int64(11)))

			Expect(fakeService.PostWarbleCallCount()).To(Equal(1))
			_, argUserID, argText := fakeService.PostWarbleArgsForCall(0)
			Expect(argUserID).To(Equal(int64(7)))
			Expect(argText).To(Equal("hello birds"))
		})

		When("the text exceeds 140 characters", func() {
			BeforeEach(func() {
				long := strings.Repeat("x", 141)
				req = httptest.NewRequest("POST", "/messages", strings.NewReader(`{"text":"`+long+`"}`))
				req = asUser(req, 7)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.PostWarbleCallCount()).To(Equal(0))
			})
		})

		When("the request is anonymous", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/messages", strings.NewReader(`{"text":"hello"}`))
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleDeleteWarble", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/messages/11/delete", nil)
			req.SetPathValue("id", "11")
			req = asUser(req, 7)
		})

		JustBeforeEach(func() {
			wh.HandleDeleteWarble(w, req)
		})

		It("should delete the message", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeService.DeleteWarbleCallCount()).To(Equal(1))
			_, argUserID, argMessageID := fakeService.DeleteWarbleArgsForCall(0)
			Expect(argUserID).To(Equal(int64(7)))
			Expect(argMessageID).To(Equal(int64(11)))
		})

		When("the caller is not the author", func() {
			BeforeEach(func() {
				fakeService.DeleteWarbleReturns(core.ErrNotWarbleAuthor)
			})

			It("should return status 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Describe("HandleGetUser", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/users/7", nil)
			req.SetPathValue("id", "7")

			fakeService.UserProfileReturns(
				core.UserRecord{ID: 7, Username: "testuser"},
				[]core.WarbleRecord{{ID: 1, UserID: 7}},
				nil,
			)
		})

		JustBeforeEach(func() {
			wh.HandleGetUser(w, req)
		})

		It("should return the profile with messages", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["messages"]).To(HaveLen(1))
			Expect(response).NotTo(HaveKey("liked_message_ids"))
		})

		When("a user is logged in", func() {
			BeforeEach(func() {
				req = asUser(req, 9)
				fakeService.LikedWarbleIDsReturns([]int64{1}, nil)
			})

			It("should include the viewer's liked message ids", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["liked_message_ids"]).To(HaveLen(1))

				_, argUserID := fakeService.LikedWarbleIDsArgsForCall(0)
				Expect(argUserID).To(Equal(int64(9)))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.UserProfileReturns(core.UserRecord{}, nil, core.ErrUserNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleFollow", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/users/follow/2", nil)
			req.SetPathValue("id", "2")
			req = asUser(req, 7)
		})

		JustBeforeEach(func() {
			wh.HandleFollow(w, req)
		})

		It("should create the follow edge", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeService.FollowCallCount()).To(Equal(1))
			_, argUserID, argTargetID := fakeService.FollowArgsForCall(0)
			Expect(argUserID).To(Equal(int64(7)))
			Expect(argTargetID).To(Equal(int64(2)))
		})

		When("the target does not exist", func() {
			BeforeEach(func() {
				fakeService.FollowReturns(core.ErrUserNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the request is anonymous", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/users/follow/2", nil)
				req.SetPathValue("id", "2")
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.FollowCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleUpdateProfile", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"renamed","email":"renamed@example.com","password":"testpass"}`)
			req = httptest.NewRequest("POST", "/users/profile", body)
			req.Header.Set("Content-Type", "application/json")
			req = asUser(req, 7)

			fakeService.UpdateProfileReturns(core.UserRecord{ID: 7, Username: "renamed"}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleUpdateProfile(w, req)
		})

		It("should apply the edit", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			Expect(fakeService.UpdateProfileCallCount()).To(Equal(1))
			_, argUserID, argUpdate := fakeService.UpdateProfileArgsForCall(0)
			Expect(argUserID).To(Equal(int64(7)))
			Expect(argUpdate.Username).To(Equal("renamed"))
		})

		When("the current password is wrong", func() {
			BeforeEach(func() {
				fakeService.UpdateProfileReturns(core.UserRecord{}, core.ErrInvalidCredentials)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("Incorrect password."))
			})
		})

		When("the new username is taken", func() {
			BeforeEach(func() {
				fakeService.UpdateProfileReturns(core.UserRecord{}, core.ErrCredentialsTaken)
			})

			It("should return status 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleDeleteAccount", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/users/delete", nil)
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "session-id"})
			req = asUser(req, 7)
		})

		JustBeforeEach(func() {
			wh.HandleDeleteAccount(w, req)
		})

		It("should delete the account and end the session", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			Expect(fakeService.DeleteAccountCallCount()).To(Equal(1))
			_, argUserID := fakeService.DeleteAccountArgsForCall(0)
			Expect(argUserID).To(Equal(int64(7)))

			Expect(fakeSessions.DeleteCallCount()).To(Equal(1))

			cookies := w.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].MaxAge).To(Equal(-1))
		})
	})
})
