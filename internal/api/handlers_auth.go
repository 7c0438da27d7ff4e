package api

import (
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/safar/go-shop-api/internal/auth"
	"github.com/safar/go-shop-api/internal/database"
	"github.com/safar/go-shop-api/internal/store"
)

type registerRequest struct {
	Email           string `json:"email"`
	Password1       string `json:"password1"`
	Password2       string `json:"password2"`
	IsTermsAccepted bool   `json:"is_terms_accepted"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := database.FieldErrors{}
	if req.Email == "" {
		fields["email"] = []string{"This field is required."}
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		fields["email"] = []string{"Enter a valid email address."}
	}
	if req.Password1 == "" {
		fields["password1"] = []string{"This field is required."}
	}
	if req.Password2 == "" {
		fields["password2"] = []string{"This field is required."}
	}
	if req.Password1 != "" && req.Password2 != "" && req.Password1 != req.Password2 {
		fields["password2"] = []string{"Passwords doesn't match"}
	}
	if !req.IsTermsAccepted {
		fields["is_terms_accepted"] = []string{"Please accept our terms"}
	}
	if len(fields) > 0 {
		respondError(w, fields)
		return
	}

	hash, err := auth.HashPassword(req.Password1)
	if err != nil {
		respondError(w, err)
		return
	}

	user, err := store.CreateUser(r.Context(), s.db, req.Email, hash, false, req.IsTermsAccepted)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ID           int64  `json:"id"`
	IsStaff      bool   `json:"is_staff"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := database.FieldErrors{}
	if req.Email == "" {
		fields["email"] = []string{"This field is required."}
	}
	if req.Password == "" {
		fields["password"] = []string{"This field is required."}
	}
	if len(fields) > 0 {
		respondError(w, fields)
		return
	}

	user, err := store.GetUserByEmail(r.Context(), s.db, req.Email)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := auth.CheckPassword(req.Password, user.PasswordHash); err != nil {
		respondError(w, err)
		return
	}

	accessToken, err := s.tokens.CreateToken(user.ID, user.IsStaff, auth.TokenTypeAccess)
	if err != nil {
		respondError(w, err)
		return
	}
	refreshToken, err := s.tokens.CreateToken(user.ID, user.IsStaff, auth.TokenTypeRefresh)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ID:           user.ID,
		IsStaff:      user.IsStaff,
	})
}
