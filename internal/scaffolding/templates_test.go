package scaffolding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlan(t *testing.T, kind Kind, rawName string, sel FileSelection) *Plan {
	t.Helper()

	plan, err := NewPlan(kind, rawName, "", sel)
	require.NoError(t, err)
	return plan
}

func filePaths(files []GeneratedFile) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	return paths
}

func fileByPath(t *testing.T, files []GeneratedFile, path string) GeneratedFile {
	t.Helper()

	for _, f := range files {
		if f.Path == path {
			return f
		}
	}
	t.Fatalf("no generated file %q in %v", path, filePaths(files))
	return GeneratedFile{}
}

func TestComponentFullSelection(t *testing.T) {
	files := mustPlan(t, KindComponent, "user-profile", DefaultSelection()).Files()

	assert.Equal(t, []string{
		"index.ts",
		"UserProfile.types.ts",
		"UserProfile.module.css",
		"UserProfile.tsx",
	}, filePaths(files))

	assert.Equal(t, `export { UserProfile } from './UserProfile';
export type { UserProfileProps } from './UserProfile.types';
export { default as styles } from './UserProfile.module.css';
`, fileByPath(t, files, "index.ts").Content)

	assert.Equal(t, "export type UserProfileProps = {};\n", fileByPath(t, files, "UserProfile.types.ts").Content)

	assert.Equal(t, ".root {\n}\n", fileByPath(t, files, "UserProfile.module.css").Content)

	assert.Equal(t, `import styles from './UserProfile.module.css';
import type { UserProfileProps } from './UserProfile.types';

export const UserProfile = (props: UserProfileProps) => {
  return <div className={styles.root}>UserProfile</div>;
};
`, fileByPath(t, files, "UserProfile.tsx").Content)
}

func TestComponentWithoutCSSAndTypes(t *testing.T) {
	files := mustPlan(t, KindComponent, "user-profile", FileSelection{Index: true}).Files()

	assert.Equal(t, []string{"index.ts", "UserProfile.tsx"}, filePaths(files))

	// The barrel references only the file that was actually created.
	assert.Equal(t, "export { UserProfile } from './UserProfile';\n", fileByPath(t, files, "index.ts").Content)

	main := fileByPath(t, files, "UserProfile.tsx").Content
	assert.NotContains(t, main, "styles")
	assert.NotContains(t, main, "./UserProfile.types")
	assert.Contains(t, main, "type UserProfileProps = {};")
	assert.Contains(t, main, "return <div>UserProfile</div>;")
}

func TestComponentWithoutIndex(t *testing.T) {
	files := mustPlan(t, KindComponent, "button", FileSelection{Types: true, CSS: true}).Files()

	assert.Equal(t, []string{
		"Button.types.ts",
		"Button.module.css",
		"Button.tsx",
	}, filePaths(files))
}

func TestComponentNothingSelected(t *testing.T) {
	files := mustPlan(t, KindComponent, "button", FileSelection{}).Files()

	assert.Equal(t, []string{"Button.tsx"}, filePaths(files))

	main := fileByPath(t, files, "Button.tsx").Content
	assert.Equal(t, `type ButtonProps = {};

export const Button = (props: ButtonProps) => {
  return <div>Button</div>;
};
`, main)
}

func TestContextDefaultSelection(t *testing.T) {
	files := mustPlan(t, KindContext, "user-settings", DefaultSelection()).Files()

	assert.Equal(t, []string{
		"index.ts",
		"UserSettingsContext.types.ts",
		"UserSettingsContext.tsx",
	}, filePaths(files))

	assert.Equal(t, `export { UserSettingsContext, UserSettingsProvider, useUserSettingsContext } from './UserSettingsContext';
export type { UserSettingsState, UserSettingsContextValue } from './UserSettingsContext.types';
`, fileByPath(t, files, "index.ts").Content)

	assert.Equal(t, `export type UserSettingsState = {};

export type UserSettingsContextValue = UserSettingsState & {
  setState: (state: UserSettingsState) => void;
};
`, fileByPath(t, files, "UserSettingsContext.types.ts").Content)

	main := fileByPath(t, files, "UserSettingsContext.tsx").Content
	assert.Contains(t, main, "import { createContext, useContext, useState, type ReactNode } from 'react';")
	assert.Contains(t, main, "import type { UserSettingsState, UserSettingsContextValue } from './UserSettingsContext.types';")
	assert.Contains(t, main, "const initialState: UserSettingsState = {};")
	assert.Contains(t, main, "export const UserSettingsContext = createContext<UserSettingsContextValue | undefined>(undefined);")
	assert.Contains(t, main, "export const UserSettingsProvider = ({ children }: { children: ReactNode }) => {")
	assert.Contains(t, main, "throw new Error('useUserSettingsContext must be used within a UserSettingsProvider');")

	// Types come from the types file, never a second inline declaration.
	assert.NotContains(t, main, "type UserSettingsState =")
	assert.Equal(t, 1, strings.Count(main, "UserSettingsState = {}"))
}

func TestContextWithoutTypes(t *testing.T) {
	files := mustPlan(t, KindContext, "user-settings", FileSelection{Index: true}).Files()

	assert.Equal(t, []string{"index.ts", "UserSettingsContext.tsx"}, filePaths(files))

	assert.Equal(t, `export { UserSettingsContext, UserSettingsProvider, useUserSettingsContext } from './UserSettingsContext';
`, fileByPath(t, files, "index.ts").Content)

	main := fileByPath(t, files, "UserSettingsContext.tsx").Content
	assert.NotContains(t, main, "./UserSettingsContext.types")
	assert.Contains(t, main, "type UserSettingsState = {};")
	assert.Contains(t, main, "type UserSettingsContextValue = UserSettingsState & {")
	assert.NotContains(t, main, "export type UserSettingsState")
}

func TestHookFullSelection(t *testing.T) {
	files := mustPlan(t, KindHook, "debounce", DefaultSelection()).Files()

	assert.Equal(t, []string{
		"index.ts",
		"useDebounce.types.ts",
		"useDebounce.ts",
	}, filePaths(files))

	assert.Equal(t, `export { useDebounce } from './useDebounce';
export type { useDebounceOptions, useDebounceReturn } from './useDebounce.types';
`, fileByPath(t, files, "index.ts").Content)

	assert.Equal(t, `export type useDebounceOptions = {};

export type useDebounceReturn = {};
`, fileByPath(t, files, "useDebounce.types.ts").Content)

	assert.Equal(t, `import type { useDebounceOptions, useDebounceReturn } from './useDebounce.types';

export const useDebounce = (options: useDebounceOptions): useDebounceReturn => {
  return {};
};
`, fileByPath(t, files, "useDebounce.ts").Content)
}

func TestHookWithoutTypes(t *testing.T) {
	files := mustPlan(t, KindHook, "debounce", FileSelection{Index: true}).Files()

	assert.Equal(t, []string{"index.ts", "useDebounce.ts"}, filePaths(files))

	assert.Equal(t, "export { useDebounce } from './useDebounce';\n", fileByPath(t, files, "index.ts").Content)

	assert.Equal(t, `export const useDebounce = (options) => {
  return {};
};
`, fileByPath(t, files, "useDebounce.ts").Content)
}

func TestHookUsePrefixProducesSameFiles(t *testing.T) {
	prefixed := mustPlan(t, KindHook, "use-local-storage", DefaultSelection()).Files()
	bare := mustPlan(t, KindHook, "local-storage", DefaultSelection()).Files()

	assert.Equal(t, bare, prefixed)
	assert.Equal(t, "useLocalStorage.ts", prefixed[len(prefixed)-1].Path)
}

func TestFilesAreDeterministic(t *testing.T) {
	plan := mustPlan(t, KindComponent, "nav-bar", DefaultSelection())

	assert.Equal(t, plan.Files(), plan.Files())
}
