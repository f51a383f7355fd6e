package scaffold

import (
	"fmt"
	"regexp"
	"strings"
)

var resourceNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Resource carries the naming forms a resource's generated files need.
type Resource struct {
	// Name is the snake_case singular form, also the package name.
	Name string
	// Pascal is the exported type prefix (order_item -> OrderItem).
	Pascal string
	// Camel is the unexported identifier form (order_item -> orderItem).
	Camel string
	// Plural is the snake_case plural used for routes (order_item -> order_items).
	Plural string
}

// NewResource derives the naming forms from a snake_case resource name.
func NewResource(name string) (Resource, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if !resourceNameRe.MatchString(name) {
		return Resource{}, fmt.Errorf("scaffold: resource name %q must be snake_case starting with a letter", name)
	}

	pascal := toPascal(name)
	return Resource{
		Name:   name,
		Pascal: pascal,
		Camel:  strings.ToLower(pascal[:1]) + pascal[1:],
		Plural: pluralize(name),
	}, nil
}

func toPascal(snake string) string {
	parts := strings.Split(snake, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// pluralize covers the common English cases; irregular nouns come out
// regular (person -> persons), which is acceptable for route paths.
func pluralize(s string) string {
	switch {
	case strings.HasSuffix(s, "s"), strings.HasSuffix(s, "x"),
		strings.HasSuffix(s, "z"), strings.HasSuffix(s, "ch"),
		strings.HasSuffix(s, "sh"):
		return s + "es"
	case strings.HasSuffix(s, "y") && len(s) > 1 && !isVowel(s[len(s)-2]):
		return s[:len(s)-1] + "ies"
	default:
		return s + "s"
	}
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
