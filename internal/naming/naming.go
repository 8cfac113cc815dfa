// Package naming derives the identifier forms used by generated artifacts.
//
// All functions are pure string transformations. Rejecting an empty name is
// the caller's job; these functions map empty input to empty output.
package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// hookPrefix is the literal prefix stripped from hook names so that
// "use-toggle" and "toggle" address the same artifact.
const hookPrefix = "use-"

// ToPascalCase converts a hyphen-delimited name into PascalCase:
// "user-profile" becomes "UserProfile". Only the first character of each
// segment is raised; the tail passes through unchanged, so "Foo-Bar" and
// "foo-bar" both normalize to "FooBar" and already-Pascal input survives a
// second application untouched.
func ToPascalCase(raw string) string {
	parts := strings.Split(raw, "-")
	caser := cases.Title(language.English, cases.NoLower)
	for i, part := range parts {
		if part != "" {
			parts[i] = caser.String(part)
		}
	}
	return strings.Join(parts, "")
}

// HookBase returns the PascalCase base name of a hook, stripping at most one
// leading "use-" prefix: "use-toggle" and "toggle" share the base "Toggle".
// The base also names the hook's directory.
func HookBase(raw string) string {
	return ToPascalCase(strings.TrimPrefix(raw, hookPrefix))
}

// HookName returns the exported hook function name, "use" plus the base:
// both "use-toggle" and "toggle" yield "useToggle".
func HookName(raw string) string {
	return "use" + HookBase(raw)
}
