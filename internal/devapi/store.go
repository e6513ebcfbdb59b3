package devapi

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/five82/sixcities/internal/sixcities"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

// NearbyLimit caps the neighbours returned for an offer.
const NearbyLimit = 3

var (
	errNoOffer     = errors.New("offer not found")
	errBadLogin    = errors.New("email and password are required")
	errNoSession   = errors.New("session not found")
	errBadEmail    = errors.New("email is not valid")
	errBadPassword = errors.New("password must contain a letter and a digit")
)

// Store is the in-memory data behind the development API.
type Store struct {
	mu        sync.RWMutex
	offers    []sixcities.Offer
	comments  map[int][]sixcities.Comment
	sessions  map[string]sixcities.AuthorizedUser
	users     map[string]int
	nextUser  int
	nextReply int
	now       func() time.Time
	newToken  func() string
}

// LoadFixtures returns a store seeded with the embedded fixtures.
func LoadFixtures() (*Store, error) {
	offersRaw, err := fixturesFS.ReadFile("fixtures/offers.json")
	if err != nil {
		return nil, fmt.Errorf("read offers fixture: %w", err)
	}
	commentsRaw, err := fixturesFS.ReadFile("fixtures/comments.json")
	if err != nil {
		return nil, fmt.Errorf("read comments fixture: %w", err)
	}

	var offers []sixcities.Offer
	if err := json.Unmarshal(offersRaw, &offers); err != nil {
		return nil, fmt.Errorf("decode offers fixture: %w", err)
	}
	var byID map[string][]sixcities.Comment
	if err := json.Unmarshal(commentsRaw, &byID); err != nil {
		return nil, fmt.Errorf("decode comments fixture: %w", err)
	}

	comments := make(map[int][]sixcities.Comment, len(byID))
	for key, list := range byID {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("comments fixture key %q: %w", key, err)
		}
		comments[id] = list
	}
	return NewStore(offers, comments), nil
}

// NewStore returns a store holding offers and their comments.
func NewStore(offers []sixcities.Offer, comments map[int][]sixcities.Comment) *Store {
	s := &Store{
		offers:   append([]sixcities.Offer(nil), offers...),
		comments: make(map[int][]sixcities.Comment, len(comments)),
		sessions: make(map[string]sixcities.AuthorizedUser),
		users:    make(map[string]int),
		nextUser: 100,
		now:      time.Now,
		newToken: uuid.NewString,
	}
	for id, list := range comments {
		s.comments[id] = append([]sixcities.Comment(nil), list...)
		for _, c := range list {
			if c.ID > s.nextReply {
				s.nextReply = c.ID
			}
		}
	}
	return s
}

// Offers returns every offer.
func (s *Store) Offers() []sixcities.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]sixcities.Offer(nil), s.offers...)
}

// Offer returns the offer with id.
func (s *Store) Offer(id int) (sixcities.Offer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offerLocked(id)
}

func (s *Store) offerLocked(id int) (sixcities.Offer, bool) {
	for _, o := range s.offers {
		if o.ID == id {
			return o, true
		}
	}
	return sixcities.Offer{}, false
}

// Nearby returns up to NearbyLimit other offers in the same city as id.
func (s *Store) Nearby(id int) ([]sixcities.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	target, ok := s.offerLocked(id)
	if !ok {
		return nil, errNoOffer
	}
	out := make([]sixcities.Offer, 0, NearbyLimit)
	for _, o := range s.offers {
		if o.ID == id || !o.InCity(target.City.Name) {
			continue
		}
		out = append(out, o)
		if len(out) == NearbyLimit {
			break
		}
	}
	return out, nil
}

// Comments returns the reviews of offer id.
func (s *Store) Comments(id int) ([]sixcities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.offerLocked(id); !ok {
		return nil, errNoOffer
	}
	return append([]sixcities.Comment{}, s.comments[id]...), nil
}

// AddComment stores a review by author and returns the offer's reviews.
func (s *Store) AddComment(author sixcities.AuthorizedUser, post sixcities.CommentPost) ([]sixcities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.offerLocked(post.ID); !ok {
		return nil, errNoOffer
	}
	s.nextReply++
	comment := sixcities.Comment{
		ID: s.nextReply,
		Author: sixcities.User{
			ID:        author.ID,
			Name:      author.Name,
			AvatarURL: author.AvatarURL,
			IsPro:     author.IsPro,
		},
		Text:   strings.TrimSpace(post.Comment),
		Rating: float64(post.Rating),
		Date:   s.now().UTC().Format(time.RFC3339Nano),
	}
	s.comments[post.ID] = append(s.comments[post.ID], comment)
	return append([]sixcities.Comment{}, s.comments[post.ID]...), nil
}

// Login opens a session for creds. Any well formed email is accepted; the
// password needs at least one letter and one digit.
func (s *Store) Login(creds sixcities.Credentials) (sixcities.AuthorizedUser, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || creds.Password == "" {
		return sixcities.AuthorizedUser{}, errBadLogin
	}
	at := strings.IndexByte(email, '@')
	if at < 1 || at == len(email)-1 {
		return sixcities.AuthorizedUser{}, errBadEmail
	}
	if !strings.ContainsAny(creds.Password, "0123456789") || !containsLetter(creds.Password) {
		return sixcities.AuthorizedUser{}, errBadPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.users[email]
	if !ok {
		s.nextUser++
		id = s.nextUser
		s.users[email] = id
	}
	user := sixcities.AuthorizedUser{
		ID:        id,
		Email:     email,
		Name:      email[:at],
		AvatarURL: "img/avatar.svg",
		Token:     s.newToken(),
	}
	s.sessions[user.Token] = user
	return user, nil
}

// Session returns the user owning token.
func (s *Store) Session(token string) (sixcities.AuthorizedUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[token]
	return user, ok
}

// Logout ends the session for token.
func (s *Store) Logout(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[token]; !ok {
		return errNoSession
	}
	delete(s.sessions, token)
	return nil
}

func containsLetter(v string) bool {
	for _, r := range v {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
