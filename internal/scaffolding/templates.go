package scaffolding

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
)

// Files expands the plan into its ordered list of generated files: barrel,
// type definitions, stylesheet, then the main source file. The order matters
// only for progress reporting.
func (p *Plan) Files() []GeneratedFile {
	switch p.kind {
	case KindContext:
		return contextFiles(p.pascal, p.sel)
	case KindHook:
		return hookFiles(p.pascal, p.sel)
	default:
		return componentFiles(p.pascal, p.sel)
	}
}

// componentFiles lays out a component directory: UserProfile/UserProfile.tsx
// plus the selected barrel, types, and stylesheet siblings.
func componentFiles(name string, sel FileSelection) []GeneratedFile {
	var files []GeneratedFile

	if sel.Index {
		files = append(files, GeneratedFile{Path: "index.ts", Content: componentBarrel(name, sel)})
	}
	if sel.Types {
		files = append(files, GeneratedFile{Path: name + ".types.ts", Content: componentTypes(name)})
	}
	if sel.CSS {
		files = append(files, GeneratedFile{Path: name + ".module.css", Content: stylesheet()})
	}
	files = append(files, GeneratedFile{Path: name + ".tsx", Content: componentMain(name, sel)})

	return files
}

// componentBarrel re-exports exactly the sibling files present in the
// selection, never a file that was not generated.
func componentBarrel(name string, sel FileSelection) string {
	lines := []string{
		fmt.Sprintf("export { %s } from './%s';", name, name),
	}
	if sel.Types {
		lines = append(lines, fmt.Sprintf("export type { %sProps } from './%s.types';", name, name))
	}
	if sel.CSS {
		lines = append(lines, fmt.Sprintf("export { default as styles } from './%s.module.css';", name))
	}
	return barrel(lines)
}

func componentTypes(name string) string {
	return fmt.Sprintf("export type %sProps = {};\n", name)
}

// componentMain assembles the component source from an imports block, an
// optional inline props type, and the component body. When the types file is
// skipped the props type is declared inline so the file stands alone.
func componentMain(name string, sel FileSelection) string {
	var imports []string
	if sel.CSS {
		imports = append(imports, fmt.Sprintf("import styles from './%s.module.css';", name))
	}
	if sel.Types {
		imports = append(imports, fmt.Sprintf("import type { %sProps } from './%s.types';", name, name))
	}

	var inlineTypes string
	if !sel.Types {
		inlineTypes = fmt.Sprintf("type %sProps = {};", name)
	}

	root := fmt.Sprintf("<div>%s</div>", name)
	if sel.CSS {
		root = fmt.Sprintf("<div className={styles.root}>%s</div>", name)
	}

	body := fmt.Sprintf(dedent.Dedent(`
		export const %s = (props: %sProps) => {
		  return %s;
		};
	`), name, name, root)

	return joinBlocks(strings.Join(imports, "\n"), inlineTypes, body)
}

// contextFiles lays out a context directory: UserSettingsContext/ with the
// provider module plus the selected barrel and types siblings.
func contextFiles(name string, sel FileSelection) []GeneratedFile {
	contextName := name + "Context"

	var files []GeneratedFile
	if sel.Index {
		files = append(files, GeneratedFile{Path: "index.ts", Content: contextBarrel(name, sel)})
	}
	if sel.Types {
		files = append(files, GeneratedFile{Path: contextName + ".types.ts", Content: contextTypes(name, true)})
	}
	files = append(files, GeneratedFile{Path: contextName + ".tsx", Content: contextMain(name, sel)})

	return files
}

func contextBarrel(name string, sel FileSelection) string {
	contextName := name + "Context"

	lines := []string{
		fmt.Sprintf("export { %s, %sProvider, use%s } from './%s';", contextName, name, contextName, contextName),
	}
	if sel.Types {
		lines = append(lines, fmt.Sprintf("export type { %sState, %sValue } from './%s.types';", name, contextName, contextName))
	}
	return barrel(lines)
}

// contextTypes declares the state shape and the context value extending it.
// The declarations live either in the types file (exported) or inline in the
// main file, decided by the caller, never in both.
func contextTypes(name string, exported bool) string {
	prefix := ""
	if exported {
		prefix = "export "
	}

	return fmt.Sprintf(dedent.Dedent(`
		%[1]stype %[2]sState = {};

		%[1]stype %[2]sContextValue = %[2]sState & {
		  setState: (state: %[2]sState) => void;
		};
	`), prefix, name)[1:]
}

// contextMain assembles the provider module: react imports, the type
// declarations (imported or inline), the initial state, the context object
// with an undefined default, the provider, and the accessor that throws
// outside a provider.
func contextMain(name string, sel FileSelection) string {
	contextName := name + "Context"

	imports := "import { createContext, useContext, useState, type ReactNode } from 'react';"
	if sel.Types {
		imports += "\n" + fmt.Sprintf("import type { %sState, %sValue } from './%s.types';", name, contextName, contextName)
	}

	var inlineTypes string
	if !sel.Types {
		inlineTypes = contextTypes(name, false)
	}

	body := fmt.Sprintf(dedent.Dedent(`
		const initialState: %[1]sState = {};

		export const %[2]s = createContext<%[2]sValue | undefined>(undefined);

		export const %[1]sProvider = ({ children }: { children: ReactNode }) => {
		  const [state, setState] = useState<%[1]sState>(initialState);

		  return (
		    <%[2]s.Provider value={{ ...state, setState }}>
		      {children}
		    </%[2]s.Provider>
		  );
		};

		export const use%[2]s = () => {
		  const context = useContext(%[2]s);
		  if (context === undefined) {
		    throw new Error('use%[2]s must be used within a %[1]sProvider');
		  }
		  return context;
		};
	`), name, contextName)

	return joinBlocks(imports, inlineTypes, body)
}

// hookFiles lays out a hook directory: the base name without the use prefix,
// Debounce/useDebounce.ts, plus the selected barrel and types siblings.
func hookFiles(base string, sel FileSelection) []GeneratedFile {
	hookName := "use" + base

	var files []GeneratedFile
	if sel.Index {
		files = append(files, GeneratedFile{Path: "index.ts", Content: hookBarrel(base, sel)})
	}
	if sel.Types {
		files = append(files, GeneratedFile{Path: hookName + ".types.ts", Content: hookTypes(base)})
	}
	files = append(files, GeneratedFile{Path: hookName + ".ts", Content: hookMain(base, sel)})

	return files
}

func hookBarrel(base string, sel FileSelection) string {
	hookName := "use" + base

	lines := []string{
		fmt.Sprintf("export { %s } from './%s';", hookName, hookName),
	}
	if sel.Types {
		lines = append(lines, fmt.Sprintf("export type { %sOptions, %sReturn } from './%s.types';", hookName, hookName, hookName))
	}
	return barrel(lines)
}

func hookTypes(base string) string {
	hookName := "use" + base

	return fmt.Sprintf(dedent.Dedent(`
		export type %[1]sOptions = {};

		export type %[1]sReturn = {};
	`), hookName)[1:]
}

// hookMain emits the hook function. With the types file selected the
// signature is fully typed against it; without it the parameter is left
// untyped.
func hookMain(base string, sel FileSelection) string {
	hookName := "use" + base

	if !sel.Types {
		return fmt.Sprintf(dedent.Dedent(`
			export const %s = (options) => {
			  return {};
			};
		`), hookName)[1:]
	}

	return joinBlocks(
		fmt.Sprintf("import type { %[1]sOptions, %[1]sReturn } from './%[1]s.types';", hookName),
		fmt.Sprintf(dedent.Dedent(`
			export const %[1]s = (options: %[1]sOptions): %[1]sReturn => {
			  return {};
			};
		`), hookName),
	)
}

// stylesheet returns the module stylesheet with its single empty root rule.
func stylesheet() string {
	return dedent.Dedent(`
		.root {
		}
	`)[1:]
}

// barrel joins re-export lines into the index file content.
func barrel(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

// joinBlocks assembles file content from fragments, dropping empty blocks
// and separating the rest with one blank line.
func joinBlocks(blocks ...string) string {
	var parts []string
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block != "" {
			parts = append(parts, block)
		}
	}
	return strings.Join(parts, "\n\n") + "\n"
}
