package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/daynu/herejpg/internal/common"
	"github.com/daynu/herejpg/internal/server/auth"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createPhotoRequest struct {
	Image   string      `json:"image"`
	Caption string      `json:"caption"`
	Lat     json.Number `json:"lat"`
	Lng     json.Number `json:"lng"`
}

type updatePhotoRequest struct {
	ID      string `json:"id"`
	Caption string `json:"caption"`
	Image   string `json:"image"`
}

type deletePhotoRequest struct {
	ID string `json:"id"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeMessage(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, common.ErrorAlreadyExists):
			writeMessage(w, http.StatusConflict, "User already exists")
		default:
			s.serverError(w, r, err)
		}
		return
	}

	// the password hash never leaves the store layer
	writeJSON(w, http.StatusCreated, userResponse{
		ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role, CreatedAt: user.CreatedAt,
	})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeMessage(w, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, common.ErrorNotFound):
			writeMessage(w, http.StatusNotFound, "User not found")
		case errors.Is(err, common.ErrorUnauthorized):
			writeMessage(w, http.StatusUnauthorized, "Invalid password")
		default:
			s.serverError(w, r, err)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		Path:     "/",
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	// tokens are self-contained; logout just drops the cookie
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   s.cookieSecure,
		Path:     "/",
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleCurrentUser keeps the historical status split: a missing cookie is
// 401, a present but invalid token is 403.
func (s *HTTPServer) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(common.SessionCookieName)
	if err != nil || cookie.Value == "" {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	identity, err := auth.GetIdentityFromToken(cookie.Value, s.jwtSecret)
	if err != nil {
		writeMessage(w, http.StatusForbidden, "Invalid token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"name": identity.Name,
		"id":   identity.UserID,
		"role": identity.Role,
	})
}

func (s *HTTPServer) handleListPhotos(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.ListAll(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	if len(posts) == 0 {
		writeMessage(w, http.StatusNotFound, "No posts found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "posts": posts})
}

func (s *HTTPServer) handleCreatePhoto(w http.ResponseWriter, r *http.Request) {
	var req createPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required data")
		return
	}

	lat, latErr := strconv.ParseFloat(req.Lat.String(), 64)
	lng, lngErr := strconv.ParseFloat(req.Lng.String(), 64)
	if req.Image == "" || latErr != nil || lngErr != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required data")
		return
	}

	identity, ok := s.sessionIdentity(w, r)
	if !ok {
		return
	}

	post, err := s.posts.Create(r.Context(), identity, req.Caption, req.Image, lat, lng)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeMessage(w, http.StatusBadRequest, "Missing required data")
			return
		}
		s.serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "post": post})
}

func (s *HTTPServer) handleUpdatePhoto(w http.ResponseWriter, r *http.Request) {
	var req updatePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing required data")
		return
	}
	if req.ID == "" || req.Image == "" {
		writeMessage(w, http.StatusBadRequest, "Missing required data")
		return
	}

	identity, ok := s.sessionIdentity(w, r)
	if !ok {
		return
	}

	post, err := s.posts.Update(r.Context(), identity, req.ID, req.Caption, req.Image)
	if err != nil {
		s.writeMutationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "post": post})
}

func (s *HTTPServer) handleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	var req deletePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing post ID")
		return
	}
	if req.ID == "" {
		writeMessage(w, http.StatusBadRequest, "Missing post ID")
		return
	}

	identity, ok := s.sessionIdentity(w, r)
	if !ok {
		return
	}

	if err := s.posts.Delete(r.Context(), identity, req.ID); err != nil {
		s.writeMutationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Post deleted successfully"})
}

// writeMutationError maps update/delete failures onto the response table.
func (s *HTTPServer) writeMutationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeMessage(w, http.StatusBadRequest, "Missing required data")
	case errors.Is(err, common.ErrorNotFound):
		writeMessage(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, common.ErrorForbidden):
		writeMessage(w, http.StatusForbidden, "Unauthorized")
	default:
		s.serverError(w, r, err)
	}
}

// serverError logs the fault and answers with a generic 500; detail is
// withheld from the caller.
func (s *HTTPServer) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "internal fault", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeMessage(w, http.StatusInternalServerError, "Server error")
}
