package sixcities

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Review limits enforced by the comment form.
const (
	CommentMinLength = 50
	CommentMaxLength = 300
	RatingMin        = 1
	RatingMax        = 5
)

const schemaBaseURL = "https://sixcities.local/"

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	commentSchema     = mustCompileSchema("schemas/comment.json")
	commentFormSchema = mustCompileSchema("schemas/comment-form.json")
)

func mustCompileSchema(path string) *jsonschema.Schema {
	file, err := schemaFS.Open(path)
	if err != nil {
		panic(fmt.Sprintf("open schema %s: %v", path, err))
	}
	defer file.Close()

	compiler := jsonschema.NewCompiler()
	url := schemaBaseURL + path
	if err := compiler.AddResource(url, file); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", path, err))
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", path, err))
	}
	return schema
}

// ValidateComment checks that a review can be sent at all: a target offer,
// some text and a rating between 1 and 5.
func ValidateComment(post CommentPost) error {
	return validatePost(commentSchema, post)
}

// ValidateCommentForm applies the stricter rules of the review form on top:
// 50 to 300 characters of text. Surrounding space does not count.
func ValidateCommentForm(post CommentPost) error {
	return validatePost(commentFormSchema, post)
}

func validatePost(schema *jsonschema.Schema, post CommentPost) error {
	var problems []string
	if post.ID <= 0 {
		problems = append(problems, "offer id must be positive")
	}
	post.Comment = strings.TrimSpace(post.Comment)

	raw, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("encode comment: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode comment: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if !errors.As(err, &verr) {
			return fmt.Errorf("validate comment: %w", err)
		}
		problems = append(problems, leafMessages(verr)...)
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func leafMessages(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		field := strings.TrimPrefix(err.InstanceLocation, "/")
		if field == "" {
			return []string{err.Message}
		}
		return []string{field + ": " + err.Message}
	}
	var out []string
	for _, cause := range err.Causes {
		out = append(out, leafMessages(cause)...)
	}
	return out
}
