package flows

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/five82/sixcities/internal/sixcities"
)

func TestResultClassification(t *testing.T) {
	notFound := &sixcities.StatusError{Method: "GET", Path: "/offers/9", Code: 404}
	unauthorized := &sixcities.StatusError{Method: "GET", Path: "/login", Code: 401}
	invalid := &sixcities.ValidationError{Problems: []string{"rating: must be >= 1"}}

	tests := []struct {
		name         string
		err          error
		ok           bool
		notFound     bool
		unauthorized bool
		invalid      bool
		cancelled    bool
	}{
		{"success", nil, true, false, false, false, false},
		{"not found", notFound, false, true, false, false, false},
		{"wrapped not found", fmt.Errorf("load: %w", notFound), false, true, false, false, false},
		{"unauthorized", unauthorized, false, false, true, false, false},
		{"invalid", invalid, false, false, false, true, false},
		{"cancelled", context.Canceled, false, false, false, false, true},
		{"stopped", ErrStopped, false, false, false, false, true},
		{"deadline", context.DeadlineExceeded, false, false, false, false, false},
		{"other", errors.New("boom"), false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Result{Flow: FetchOfferFlow, OfferID: 9, Err: tt.err}
			if got := r.OK(); got != tt.ok {
				t.Errorf("OK() = %v, want %v", got, tt.ok)
			}
			if got := r.NotFound(); got != tt.notFound {
				t.Errorf("NotFound() = %v, want %v", got, tt.notFound)
			}
			if got := r.Unauthorized(); got != tt.unauthorized {
				t.Errorf("Unauthorized() = %v, want %v", got, tt.unauthorized)
			}
			if got := r.Invalid(); got != tt.invalid {
				t.Errorf("Invalid() = %v, want %v", got, tt.invalid)
			}
			if got := r.Cancelled(); got != tt.cancelled {
				t.Errorf("Cancelled() = %v, want %v", got, tt.cancelled)
			}
		})
	}
}

func TestResultRefreshFailed(t *testing.T) {
	refresh := func(err error) *Result {
		return &Result{Flow: FetchCommentsFlow, OfferID: 7, Err: err}
	}
	tests := []struct {
		name string
		r    Result
		want bool
	}{
		{"no follow-up", Result{Flow: PostCommentFlow, OfferID: 7}, false},
		{"follow-up ok", Result{Flow: PostCommentFlow, OfferID: 7, Refresh: refresh(nil)}, false},
		{"follow-up failed", Result{Flow: PostCommentFlow, OfferID: 7, Refresh: refresh(errors.New("reset"))}, true},
		{"follow-up cancelled", Result{Flow: PostCommentFlow, OfferID: 7, Refresh: refresh(context.Canceled)}, false},
		{"flow itself failed", Result{Flow: PostCommentFlow, OfferID: 7, Err: errors.New("offline"), Refresh: refresh(errors.New("reset"))}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.RefreshFailed(); got != tt.want {
				t.Errorf("RefreshFailed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{Result{Flow: FetchOffersFlow}, "fetchOffers: ok"},
		{Result{Flow: FetchCommentsFlow, OfferID: 4, Stale: true}, "fetchComments(4): stale"},
		{Result{Flow: LoginFlow, Err: errors.New("bad password")}, "login: bad password"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
