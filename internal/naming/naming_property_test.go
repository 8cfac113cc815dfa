//go:build property

package naming

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestNamingProperties validates the derivation invariants the generated
// artifacts depend on.
func TestNamingProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	segmentGen := gen.OneConstOf(
		"user", "profile", "nav", "menu", "item", "data", "form", "toggle", "modal", "list",
	)

	// Property: Pascal conversion never emits hyphens, so re-applying it is a no-op
	properties.Property("pascal output is hyphen-free and idempotent", prop.ForAll(
		func(segments []string) bool {
			if len(segments) == 0 {
				return true
			}

			raw := strings.Join(segments, "-")
			once := ToPascalCase(raw)

			return !strings.Contains(once, "-") && ToPascalCase(once) == once
		},
		gen.SliceOf(segmentGen),
	))

	// Property: pre-capitalizing segments does not change the result, so
	// "foo-bar" and "Foo-Bar" name the same artifact
	properties.Property("capitalized segments resolve identically", prop.ForAll(
		func(segments []string) bool {
			if len(segments) == 0 {
				return true
			}

			capitalized := make([]string, len(segments))
			for i, segment := range segments {
				capitalized[i] = strings.ToUpper(segment[:1]) + segment[1:]
			}

			raw := strings.Join(segments, "-")

			return ToPascalCase(raw) == ToPascalCase(strings.Join(capitalized, "-"))
		},
		gen.SliceOf(segmentGen),
	))

	// Property: non-empty input produces output starting with an upper-case letter
	properties.Property("pascal output starts upper-cased", prop.ForAll(
		func(segments []string) bool {
			if len(segments) == 0 {
				return true
			}

			out := ToPascalCase(strings.Join(segments, "-"))
			if out == "" {
				return false
			}

			return unicode.IsUpper(rune(out[0]))
		},
		gen.SliceOf(segmentGen),
	))

	// Property: a single leading use- prefix never changes the derived hook name
	properties.Property("hook naming ignores a leading use- prefix", prop.ForAll(
		func(segments []string) bool {
			if len(segments) == 0 {
				return true
			}

			// The word list never starts a name with "use-", so prefixing
			// here adds exactly the one prefix HookName strips.
			raw := strings.Join(segments, "-")

			return HookName(raw) == HookName("use-"+raw)
		},
		gen.SliceOf(segmentGen),
	))

	properties.TestingRun(t)
}
