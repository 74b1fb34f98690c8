// Package filter compiles expression-language filters over image records,
// used for client-side narrowing on top of the server's query parameters.
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/pixhaven/pixctl/pixhaven"
)

// ImageFilter is a compiled filter expression over image records.
type ImageFilter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter. Expressions see
// the image's fields as variables and must evaluate to a boolean:
//
//	category == "wallpapers" && size > 1_000_000
//	hasPrefix(title, "vacation") && age_days < 30
func Compile(expression string) (*ImageFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // image fields are injected at run time
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &ImageFilter{
		expression: expression,
		program:    program,
	}, nil
}

// String returns the original expression.
func (f *ImageFilter) String() string {
	return f.expression
}

// Evaluate evaluates the filter against an image. Evaluation errors are
// treated as a non-match.
func (f *ImageFilter) Evaluate(image pixhaven.Image) bool {
	result, err := expr.Run(f.program, environment(image))
	if err != nil {
		return false
	}

	match, ok := result.(bool)
	return ok && match
}

// Predicate returns the filter as a plain match function.
func (f *ImageFilter) Predicate() func(pixhaven.Image) bool {
	return f.Evaluate
}

// environment builds the expression environment for one image.
func environment(image pixhaven.Image) map[string]any {
	env := helperFunctions()

	env["id"] = image.ID
	env["title"] = image.Title
	env["description"] = image.Description
	env["category"] = image.Category
	env["project_id"] = image.ProjectID
	env["filename"] = image.Filename
	env["content_type"] = image.ContentType
	env["size"] = image.Size
	env["created_at"] = image.CreatedAt
	env["updated_at"] = image.UpdatedAt
	env["has_token"] = image.AccessToken != ""
	env["age_days"] = time.Since(image.CreatedAt).Hours() / 24

	return env
}

// helperFunctions returns the helpers available to every expression.
func helperFunctions() map[string]any {
	return map[string]any{
		"now": time.Now,
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"hasPrefix": strings.HasPrefix,
		"hasSuffix": strings.HasSuffix,
		"lower":     strings.ToLower,
	}
}
