package devapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/five82/sixcities/internal/sixcities"
)

const maxBodyBytes = 64 << 10

func (s *Server) listOffers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Offers())
}

func (s *Server) getOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := offerID(w, r)
	if !ok {
		return
	}
	offer, found := s.store.Offer(id)
	if !found {
		writeError(w, http.StatusNotFound, "Offer with id "+strconv.Itoa(id)+" not found.")
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

func (s *Server) nearbyOffers(w http.ResponseWriter, r *http.Request) {
	id, ok := offerID(w, r)
	if !ok {
		return
	}
	offers, err := s.store.Nearby(id)
	if err != nil {
		writeStoreError(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	id, ok := offerID(w, r)
	if !ok {
		return
	}
	comments, err := s.store.Comments(id)
	if err != nil {
		writeStoreError(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) postComment(w http.ResponseWriter, r *http.Request) {
	id, ok := offerID(w, r)
	if !ok {
		return
	}
	user, ok := userFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "You are not logged in.")
		return
	}

	var post sixcities.CommentPost
	if !decodeBody(w, r, &post) {
		return
	}
	post.ID = id
	if err := sixcities.ValidateComment(post); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	comments, err := s.store.AddComment(user, post)
	if err != nil {
		writeStoreError(w, id, err)
		return
	}
	loggerFrom(r.Context()).Info("comment added", "offer_id", id, "user_id", user.ID)
	writeJSON(w, http.StatusCreated, comments)
}

func (s *Server) checkLogin(w http.ResponseWriter, r *http.Request) {
	user, ok := s.store.Session(r.Header.Get(tokenHeader))
	if !ok {
		writeError(w, http.StatusUnauthorized, "You are not logged in or you do not have permission to this page.")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds sixcities.Credentials
	if !decodeBody(w, r, &creds) {
		return
	}
	user, err := s.store.Login(creds)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	loggerFrom(r.Context()).Info("login", "user_id", user.ID)
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Logout(r.Header.Get(tokenHeader)); err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func offerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Offer id "+strconv.Quote(raw)+" is not valid.")
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dest); err != nil {
		writeError(w, http.StatusBadRequest, "Request body is not valid JSON.")
		return false
	}
	return true
}

func writeStoreError(w http.ResponseWriter, id int, err error) {
	if errors.Is(err, errNoOffer) {
		writeError(w, http.StatusNotFound, "Offer with id "+strconv.Itoa(id)+" not found.")
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error":   http.StatusText(status),
		"message": message,
	})
}
