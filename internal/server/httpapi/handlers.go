package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finweave/insight-server/internal/common"
	"github.com/finweave/insight-server/internal/server/services"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Contact  string `json:"contact"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type loginUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	defer r.Body.Close()

	user, err := s.users.Register(r.Context(), services.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Contact:  req.Contact,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmailTaken):
			respondMessage(w, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, common.ErrMissingFields):
			respondMessage(w, http.StatusBadRequest, "Missing required fields")
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	s.logger.Info(r.Context(), "user registered", "user_id", user.ID)
	respondMessage(w, http.StatusCreated, "User registered successfully")
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	defer r.Body.Close()

	token, user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  loginUser{Name: user.Name, Email: user.Email},
	})
}

func (s *HTTPServer) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := s.profiles.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondMessage(w, http.StatusNotFound, "Profile not found")
			return
		}
		s.logger.Error(r.Context(), "profile read failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// handleUpsertProfile serves both POST and PUT: the original client used them
// interchangeably and both reduce to the same create-or-update keyed on the
// caller's identity.
func (s *HTTPServer) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var update services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	defer r.Body.Close()

	profile, err := s.profiles.Upsert(r.Context(), userID, &update)
	if err != nil {
		s.logger.Error(r.Context(), "profile upsert failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}
