package sixcities

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCommentForm(t *testing.T) {
	long := strings.Repeat("a", CommentMinLength)

	cases := []struct {
		name     string
		post     CommentPost
		wantErr  bool
		problems int
		contains string
	}{
		{"valid", CommentPost{ID: 7, Comment: long, Rating: 5}, false, 0, ""},
		{"max length", CommentPost{ID: 7, Comment: strings.Repeat("b", CommentMaxLength), Rating: 1}, false, 0, ""},
		{"too short", CommentPost{ID: 7, Comment: "Great stay", Rating: 5}, true, 1, "comment"},
		{"padding does not count", CommentPost{ID: 7, Comment: "   " + long[:40] + "          ", Rating: 3}, true, 1, "comment"},
		{"too long", CommentPost{ID: 7, Comment: strings.Repeat("c", CommentMaxLength+1), Rating: 3}, true, 1, "comment"},
		{"rating low", CommentPost{ID: 7, Comment: long, Rating: 0}, true, 1, "rating"},
		{"rating high", CommentPost{ID: 7, Comment: long, Rating: 6}, true, 1, "rating"},
		{"missing id", CommentPost{Comment: long, Rating: 4}, true, 1, "offer id"},
		{"everything wrong", CommentPost{Comment: "", Rating: 9}, true, 3, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCommentForm(tc.post)
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("ValidateCommentForm returned error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ValidateCommentForm error = %v, want *ValidationError", err)
			}
			if len(verr.Problems) != tc.problems {
				t.Fatalf("problems = %v, want %d", verr.Problems, tc.problems)
			}
			if tc.contains != "" && !strings.Contains(verr.Error(), tc.contains) {
				t.Fatalf("error = %q, want it to mention %q", verr.Error(), tc.contains)
			}
		})
	}
}

func TestValidateComment_OnlyStructural(t *testing.T) {
	if err := ValidateComment(CommentPost{ID: 7, Comment: "Great stay", Rating: 5}); err != nil {
		t.Fatalf("short review should pass payload validation: %v", err)
	}
	if err := ValidateComment(CommentPost{ID: 7, Comment: "   ", Rating: 5}); err == nil {
		t.Fatalf("blank review should fail payload validation")
	}
	if err := ValidateComment(CommentPost{ID: 7, Comment: "ok", Rating: 0}); err == nil {
		t.Fatalf("rating 0 should fail payload validation")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	if got := (&ValidationError{}).Error(); got != "invalid payload" {
		t.Fatalf("empty Error() = %q", got)
	}
	got := (&ValidationError{Problems: []string{"a", "b", "c"}}).Error()
	if got != "invalid payload: a (+2 more)" {
		t.Fatalf("Error() = %q", got)
	}
}
