package sixcities

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultAPIURL {
		t.Fatalf("url = %q, want %q", u.String(), defaultAPIURL)
	}

	u, err = parseBaseURL("example.com:1234/six-cities/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "example.com:1234" {
		t.Fatalf("url = %q, want http://example.com:1234", u.String())
	}
	if u.Path != "/six-cities" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchesEndpoints(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get(requestIDHeader)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/offers":
			_ = json.NewEncoder(w).Encode([]Offer{{ID: 1, Title: "Loft"}, {ID: 2, Title: "Barn"}})
		case "/api/offers/2":
			_ = json.NewEncoder(w).Encode(Offer{ID: 2, Title: "Barn", Goods: []string{"Wi-Fi"}})
		case "/api/offers/2/nearby":
			_ = json.NewEncoder(w).Encode([]Offer{{ID: 3}})
		case "/api/comments/2":
			_, _ = io.WriteString(w, `[{"id":9,"user":{"name":"Max"},"comment":"Lovely","rating":4,"date":"2024-05-08T14:13:56.569Z"}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/api", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	offers, err := c.FetchOffers(ctx)
	if err != nil {
		t.Fatalf("FetchOffers returned error: %v", err)
	}
	if len(offers) != 2 || offers[1].Title != "Barn" {
		t.Fatalf("FetchOffers = %#v, want 2 offers", offers)
	}

	offer, err := c.FetchOffer(ctx, 2)
	if err != nil {
		t.Fatalf("FetchOffer returned error: %v", err)
	}
	if offer.ID != 2 || len(offer.Goods) != 1 {
		t.Fatalf("FetchOffer = %#v, want id=2 with goods", offer)
	}

	nearby, err := c.FetchNearbyOffers(ctx, 2)
	if err != nil {
		t.Fatalf("FetchNearbyOffers returned error: %v", err)
	}
	if len(nearby) != 1 || nearby[0].ID != 3 {
		t.Fatalf("FetchNearbyOffers = %#v, want [id=3]", nearby)
	}

	comments, err := c.FetchComments(ctx, 2)
	if err != nil {
		t.Fatalf("FetchComments returned error: %v", err)
	}
	if len(comments) != 1 || comments[0].Author.Name != "Max" || comments[0].Text != "Lovely" {
		t.Fatalf("FetchComments = %#v, want one comment by Max", comments)
	}
	if comments[0].ParsedDate().Year() != 2024 {
		t.Fatalf("ParsedDate = %v, want 2024", comments[0].ParsedDate())
	}

	if !strings.HasPrefix(gotUserAgent, "sixcities/") {
		t.Fatalf("User-Agent = %q, want sixcities/*", gotUserAgent)
	}
	if gotRequestID == "" {
		t.Fatalf("X-Request-ID header missing")
	}
}

func TestClient_PostCommentSendsBodyAndToken(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	var gotToken, gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotToken = r.Header.Get(tokenHeader)
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	c.SetToken(" secret ")

	if err := c.PostComment(context.Background(), CommentPost{ID: 7, Comment: "Great stay", Rating: 5}); err != nil {
		t.Fatalf("PostComment returned error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/comments/7" {
		t.Fatalf("request = %s %s, want POST /comments/7", gotMethod, gotPath)
	}
	if gotToken != "secret" {
		t.Fatalf("X-Token = %q, want secret", gotToken)
	}
	if gotBody["comment"] != "Great stay" || gotBody["rating"] != float64(5) {
		t.Fatalf("body = %#v, want comment and rating", gotBody)
	}
	if _, ok := gotBody["ID"]; ok {
		t.Fatalf("body should not carry the offer id: %#v", gotBody)
	}
}

func TestClient_PostCommentRequiresID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.PostComment(context.Background(), CommentPost{}); err == nil {
		t.Fatalf("PostComment returned nil error, want error")
	}
}

func TestClient_LoginStoresTokenAndLogoutClearsIt(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/login":
			var creds Credentials
			_ = json.NewDecoder(r.Body).Decode(&creds)
			_ = json.NewEncoder(w).Encode(AuthorizedUser{ID: 1, Email: creds.Email, Token: "tok-1"})
		case r.Method == http.MethodGet && r.URL.Path == "/login":
			if r.Header.Get(tokenHeader) != "tok-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(AuthorizedUser{ID: 1, Email: "a@b.c"})
		case r.Method == http.MethodDelete && r.URL.Path == "/logout":
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	if _, err := c.CheckAuth(ctx); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("CheckAuth before login error = %v, want ErrUnauthorized", err)
	}

	user, err := c.Login(ctx, Credentials{Email: "a@b.c", Password: "p4ss"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.Email != "a@b.c" || c.Token() != "tok-1" {
		t.Fatalf("Login user=%#v token=%q, want email a@b.c and tok-1", user, c.Token())
	}

	if _, err := c.CheckAuth(ctx); err != nil {
		t.Fatalf("CheckAuth after login returned error: %v", err)
	}

	if err := c.Logout(ctx); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if c.Token() != "" {
		t.Fatalf("Token after logout = %q, want empty", c.Token())
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/offers":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/offers/404":
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"errorType":"COMMON_ERROR","message":"Offer with id 404 not found."}`)
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchOffers(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchOffers error = %v, want decode response error", err)
	}

	_, err = c.FetchOffer(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("FetchOffer error = %v, want ErrNotFound", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Message != "Offer with id 404 not found." {
		t.Fatalf("FetchOffer error = %#v, want StatusError with message", err)
	}

	_, err = c.FetchComments(context.Background(), 1)
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchComments error = %v, want status 500 error", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("500 should not match ErrNotFound")
	}
}
