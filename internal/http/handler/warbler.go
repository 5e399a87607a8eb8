package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"warbler/internal/core"
	"warbler/internal/http/handler/middleware"
	"warbler/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Signup        = "POST /signup"
	Login         = "POST /login"
	Logout        = "POST /logout"
	Home          = "GET /{$}"
	ListUsers     = "GET /users"
	GetUser       = "GET /users/{id}"
	GetFollowing  = "GET /users/{id}/following"
	GetFollowers  = "GET /users/{id}/followers"
	FollowUser    = "POST /users/follow/{id}"
	UnfollowUser  = "POST /users/stop-following/{id}"
	GetProfile    = "GET /users/profile"
	UpdateProfile = "POST /users/profile"
	DeleteAccount = "POST /users/delete"
	PostWarble    = "POST /messages"
	GetWarble     = "GET /messages/{id}"
	DeleteWarble  = "POST /messages/{id}/delete"
	ToggleLike    = "POST /messages/{id}/like"
	GetUserLikes  = "GET /users/{id}/likes"
)

type WarbleHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	warbler          WarbleService
	sessions         SessionManager
}

func NewWarbleHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, warbleService WarbleService, sessions SessionManager) *WarbleHandler {
	return &WarbleHandler{
		logs:             logger,
		requestValidator: requestValidator,
		warbler:          warbleService,
		sessions:         sessions,
	}
}

// Register attaches every route to the mux.
func (h *WarbleHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Signup, h.HandleSignup)
	mux.HandleFunc(Login, h.HandleLogin)
	mux.HandleFunc(Logout, h.HandleLogout)
	mux.HandleFunc(Home, h.HandleHome)
	mux.HandleFunc(ListUsers, h.HandleListUsers)
	mux.HandleFunc(GetUser, h.HandleGetUser)
	mux.HandleFunc(GetFollowing, h.HandleGetFollowing)
	mux.HandleFunc(GetFollowers, h.HandleGetFollowers)
	mux.HandleFunc(FollowUser, h.HandleFollow)
	mux.HandleFunc(UnfollowUser, h.HandleUnfollow)
	mux.HandleFunc(GetProfile, h.HandleGetProfile)
	mux.HandleFunc(UpdateProfile, h.HandleUpdateProfile)
	mux.HandleFunc(DeleteAccount, h.HandleDeleteAccount)
	mux.HandleFunc(PostWarble, h.HandlePostWarble)
	mux.HandleFunc(GetWarble, h.HandleGetWarble)
	mux.HandleFunc(DeleteWarble, h.HandleDeleteWarble)
	mux.HandleFunc(ToggleLike, h.HandleToggleLike)
	mux.HandleFunc(GetUserLikes, h.HandleGetUserLikes)
}

func (h *WarbleHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.SignupRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not sign up",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	user, err := h.warbler.Signup(r.Context(), req.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrCredentialsTaken) {
			h.respond(w, Response{
				Message: "Username or email already taken",
				Error:   err.Error(),
			}, http.StatusConflict, requestId)
			return
		}
		h.respond(w, Response{
			Message: "Could not sign up",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("signup failed", "error", err, "handler", Signup, "request_id", requestId)
		return
	}

	if !h.startSession(w, r, user.ID, Signup, requestId) {
		return
	}

	h.respond(w, map[string]core.UserRecord{"user": user}, http.StatusCreated, requestId)
}

func (h *WarbleHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not log in",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	user, err := h.warbler.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		// same response whether the username or the password was wrong
		if errors.Is(err, core.ErrInvalidCredentials) {
			h.respond(w, Response{
				Message: "Invalid credentials.",
				Error:   core.ErrInvalidCredentials.Error(),
			}, http.StatusUnauthorized, requestId)
			return
		}
		h.respond(w, Response{
			Message: "Login failed",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("authentication failed", "error", err, "handler", Login, "request_id", requestId)
		return
	}

	if !h.startSession(w, r, user.ID, Login, requestId) {
		return
	}

	h.respond(w, map[string]any{
		"message": fmt.Sprintf("Hello, %s!", user.Username),
		"user":    user,
	}, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := currentUser(r); !ok {
		h.unauthorized(w, requestId)
		return
	}

	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			h.logs.Errorw("failed to delete session", "error", err, "handler", Logout, "request_id", requestId)
		}
	}
	clearSessionCookie(w)

	h.respond(w, Response{Message: "You have been logged out."}, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := currentUser(r)
	if !ok {
		// anonymous splash
		h.respond(w, map[string]any{
			"anonymous": true,
			"message":   "Sign up now to get your own personalized timeline!",
		}, http.StatusOK, requestId)
		return
	}

	feed, err := h.warbler.HomeFeed(r.Context(), userID)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not build home feed",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to build home feed", "error", err, "handler", Home, "request_id", requestId)
		return
	}

	suggested, err := h.warbler.SuggestUsers(r.Context(), userID, 0)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not build home feed",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to suggest users", "error", err, "handler", Home, "request_id", requestId)
		return
	}

	likedIDs, err := h.warbler.LikedWarbleIDs(r.Context(), userID)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not build home feed",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get liked message ids", "error", err, "handler", Home, "request_id", requestId)
		return
	}

	resp := map[string]any{
		"messages":          feed.Warbles,
		"fallback":          feed.Fallback,
		"suggested_users":   suggested,
		"liked_message_ids": likedIDs,
	}
	if feed.Fallback {
		resp["message"] = "Your feed is empty. Here are recent posts—follow people to customize it!"
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	users, err := h.warbler.ListUsers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respond(w, Response{
			Message: "Could not list users",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list users", "error", err, "handler", ListUsers, "request_id", requestId)
		return
	}

	h.respond(w, map[string][]core.UserRecord{"users": users}, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r)
	if err != nil {
		h.badID(w, requestId)
		return
	}

	user, messages, err := h.warbler.UserProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.notFound(w, requestId, err)
			return
		}
		h.respond(w, Response{
			Message: "Could not load profile",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to load user profile", "error", err, "handler", GetUser, "request_id", requestId)
		return
	}

	resp := map[string]any{
		"user":     user,
		"messages": messages,
	}
	if userID, ok := currentUser(r); ok {
		if likedIDs, err := h.warbler.LikedWarbleIDs(r.Context(), userID); err == nil {
			resp["liked_message_ids"] = likedIDs
		}
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleGetFollowing(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := currentUser(r); !ok {
		h.unauthorized(w, requestId)
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.badID(w, requestId)
		return
	}

	users, err := h.warbler.FollowingList(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.notFound(w, requestId, err)
			return
		}
		h.respond(w, Response{
			Message: "Could not load following",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to load following", "error", err, "handler", GetFollowing, "request_id", requestId)
		return
	}

	h.respond(w, map[string][]core.UserRecord{"following": users}, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleGetFollowers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if _, ok := currentUser(r); !ok {
		h.unauthorized(w, requestId)
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.badID(w, requestId)
		return
	}

	users, err := h.warbler.FollowersList(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.notFound(w, requestId, err)
			return
		}
		h.respond(w, Response{
			Message: "Could not load followers",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to load followers", "error", err, "handler", GetFollowers, "request_id", requestId)
		return
	}

	h.respond(w, map[string][]core.UserRecord{"followers": users}, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := currentUser(r)
	if !ok {
		h.unauthorized(w, requestId)
		return
	}

	targetID, err := pathID(r)
	if err != nil {
		h.badID(w, requestId)
		return
	}

	if err := h.warbler.Follow(r.Context(), userID, targetID); err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.notFound(w, requestId, err)
			return
		}
		h.respond(w, Response{
			Message: "Could not follow user",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to follow user", "error", err, "handler", FollowUser, "request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Now following."}, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := currentUser(r)
	if !ok {
		h.unauthorized(w, requestId)
		return
	}

	targetID, err := pathID(r)
	if err != nil {
		h.badID(w, requestId)
		return
	}

	if err := h.warbler.Unfollow(r.Context(), userID, targetID); err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.notFound(w, requestId, err)
			return
		}
		h.respond(w, Response{
			Message: "Could not stop following user",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to unfollow user", "error", err, "handler", UnfollowUser, "request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Stopped following."}, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := currentUser(r)
	if !ok {
		h.unauthorized(w, requestId)
		return
	}

	user, err := h.warbler.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.notFound(w, requestId, err)
			return
		}
		h.respond(w, Response{
			Message: "Could not load profile",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to load profile", "error", err, "handler", GetProfile, "request_id", requestId)
		return
	}

	h.respond(w, map[string]core.UserRecord{"user": user}, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := currentUser(r)
	if !ok {
		h.unauthorized(w, requestId)
		return
	}

	var req payload.ProfileRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not update profile",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateProfile,
			"request_id", requestId)
		return
	}

	user, err := h.warbler.UpdateProfile(r.Context(), userID, req.ToUpdate())
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidCredentials):
			h.respond(w, Response{
				Message: "Incorrect password.",
				Error:   err.Error(),
			}, http.StatusUnauthorized, requestId)
		case errors.Is(err, core.ErrCredentialsTaken):
			h.respond(w, Response{
				Message: "Username or email already taken.",
				Error:   err.Error(),
			}, http.StatusConflict, requestId)
		case errors.Is(err, core.ErrUserNotFound):
			h.notFound(w, requestId, err)
		default:
			h.respond(w, Response{
				Message: "Could not update profile",
				Error:   "unexpected error occurred",
			}, http.StatusInternalServerError, requestId)
			h.logs.Errorw("failed to update profile", "error", err, "handler", UpdateProfile, "request_id", requestId)
		}
		return
	}

	h.respond(w, map[string]any{
		"message": "Profile updated!",
		"user":    user,
	}, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := currentUser(r)
	if !ok {
		h.unauthorized(w, requestId)
		return
	}

	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			h.logs.Errorw("failed to delete session", "error", err, "handler", DeleteAccount, "request_id", requestId)
		}
	}
	clearSessionCookie(w)

	if err := h.warbler.DeleteAccount(r.Context(), userID); err != nil {
		h.respond(w, Response{
			Message: "Could not delete account",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to delete account", "error", err, "handler", DeleteAccount, "request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Account deleted."}, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandlePostWarble(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := currentUser(r)
	if !ok {
		h.unauthorized(w, requestId)
		return
	}

	var req payload.WarbleRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not post message",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", PostWarble,
			"request_id", requestId)
		return
	}

	warble, err := h.warbler.PostWarble(r.Context(), userID, req.Text)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not post message",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to post message", "error", err, "handler", PostWarble, "request_id", requestId)
		return
	}

	h.respond(w, map[string]core.WarbleRecord{"message": warble}, http.StatusCreated, requestId)
}

func (h *WarbleHandler) HandleGetWarble(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r)
	if err != nil {
		h.badID(w, requestId)
		return
	}

	warble, err := h.warbler.GetWarble(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrWarbleNotFound) {
			h.notFound(w, requestId, err)
			return
		}
		h.respond(w, Response{
			Message: "Could not load message",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to load message", "error", err, "handler", GetWarble, "request_id", requestId)
		return
	}

	h.respond(w, map[string]core.WarbleRecord{"message": warble}, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleDeleteWarble(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := currentUser(r)
	if !ok {
		h.unauthorized(w, requestId)
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.badID(w, requestId)
		return
	}

	if err := h.warbler.DeleteWarble(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, core.ErrWarbleNotFound):
			h.notFound(w, requestId, err)
		case errors.Is(err, core.ErrNotWarbleAuthor):
			h.respond(w, Response{
				Message: "Access unauthorized.",
				Error:   err.Error(),
			}, http.StatusForbidden, requestId)
		default:
			h.respond(w, Response{
				Message: "Could not delete message",
				Error:   "unexpected error occurred",
			}, http.StatusInternalServerError, requestId)
			h.logs.Errorw("failed to delete message", "error", err, "handler", DeleteWarble, "request_id", requestId)
		}
		return
	}

	h.respond(w, Response{Message: "Message deleted."}, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := currentUser(r)
	if !ok {
		h.unauthorized(w, requestId)
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.badID(w, requestId)
		return
	}

	liked, err := h.warbler.ToggleLike(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrWarbleNotFound):
			h.notFound(w, requestId, err)
		case errors.Is(err, core.ErrOwnWarble):
			h.respond(w, Response{
				Message: "You cannot like your own message.",
				Error:   err.Error(),
			}, http.StatusForbidden, requestId)
		default:
			h.respond(w, Response{
				Message: "Could not toggle like",
				Error:   "unexpected error occurred",
			}, http.StatusInternalServerError, requestId)
			h.logs.Errorw("failed to toggle like", "error", err, "handler", ToggleLike, "request_id", requestId)
		}
		return
	}

	h.respond(w, map[string]bool{"liked": liked}, http.StatusOK, requestId)
}

func (h *WarbleHandler) HandleGetUserLikes(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, err := pathID(r)
	if err != nil {
		h.badID(w, requestId)
		return
	}

	warbles, err := h.warbler.LikedWarbles(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.notFound(w, requestId, err)
			return
		}
		h.respond(w, Response{
			Message: "Could not load likes",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to load likes", "error", err, "handler", GetUserLikes, "request_id", requestId)
		return
	}

	resp := map[string]any{"messages": warbles}
	if userID, ok := currentUser(r); ok {
		if likedIDs, err := h.warbler.LikedWarbleIDs(r.Context(), userID); err == nil {
			resp["liked_message_ids"] = likedIDs
		}
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

// ---- helpers ----

func (h *WarbleHandler) startSession(w http.ResponseWriter, r *http.Request, userID int64, route, requestId string) bool {
	sessionID, err := h.sessions.Create(r.Context(), userID)
	if err != nil {
		h.respond(w, Response{
			Message: oopsErr,
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to create session", "error", err, "handler", route, "request_id", requestId)
		return false
	}
	setSessionCookie(w, sessionID)
	return true
}

func (h *WarbleHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func (h *WarbleHandler) unauthorized(w http.ResponseWriter, requestId string) {
	h.respond(w, Response{
		Message: "Access unauthorized.",
		Error:   "authentication required",
	}, http.StatusUnauthorized, requestId)
}

func (h *WarbleHandler) badID(w http.ResponseWriter, requestId string) {
	h.respond(w, Response{
		Message: "Not found",
		Error:   "invalid id parameter",
	}, http.StatusNotFound, requestId)
}

func (h *WarbleHandler) notFound(w http.ResponseWriter, requestId string, err error) {
	h.respond(w, Response{
		Message: "Not found",
		Error:   err.Error(),
	}, http.StatusNotFound, requestId)
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

func currentUser(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(middleware.CurrentUserKey).(int64)
	return userID, ok
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
