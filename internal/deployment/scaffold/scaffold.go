// Package scaffold deterministically assembles a complete, buildable
// project around a generated component. All boilerplate lives in static
// template data; the only dynamic logic is template selection and
// placeholder substitution, so identical inputs produce byte-identical
// file sets.
package scaffold

import (
	"fmt"
	"strings"
)

// Framework selects the target project layout.
type Framework string

const (
	FrameworkNext  Framework = "next"
	FrameworkReact Framework = "react"
)

// DefaultComponentName is used when the caller does not declare one.
const DefaultComponentName = "GeneratedComponent"

// ParseFramework maps the request field onto a supported framework.
// An empty value defaults to Next.js.
func ParseFramework(s string) (Framework, error) {
	switch s {
	case "", string(FrameworkNext):
		return FrameworkNext, nil
	case string(FrameworkReact):
		return FrameworkReact, nil
	default:
		return "", fmt.Errorf("unsupported framework %q", s)
	}
}

// File is one (path, content) pair of a project file set.
type File struct {
	Path    string
	Content string
}

// Input describes a scaffolding request. ProjectName must already be
// resolved by the caller; Build itself never varies its output over time.
type Input struct {
	Source        string
	ComponentName string
	ProjectName   string
	Framework     Framework
}

// Build produces the ordered file set for a complete project: manifest,
// type-checker and styling configuration, the fixed UI-primitive library,
// an entry page importing the component, and the generated source verbatim
// under its fixed path.
func Build(in Input) ([]File, error) {
	name := strings.TrimSpace(in.ComponentName)
	if name == "" {
		name = DefaultComponentName
	}

	switch in.Framework {
	case FrameworkNext:
		return buildNext(in.ProjectName, name, in.Source), nil
	case FrameworkReact:
		return buildReact(in.ProjectName, name, in.Source), nil
	default:
		return nil, fmt.Errorf("unsupported framework %q", in.Framework)
	}
}

func buildNext(projectName, componentName, source string) []File {
	files := []File{
		{Path: "package.json", Content: renderPackageJSONNext(projectName)},
		{Path: "tsconfig.json", Content: tsconfigNext},
		{Path: "next.config.mjs", Content: nextConfig},
		{Path: "postcss.config.mjs", Content: postcssConfigNext},
		{Path: "tailwind.config.ts", Content: renderTailwindConfig(`["./app/**/*.{ts,tsx}", "./components/**/*.{ts,tsx}"]`)},
		{Path: "app/globals.css", Content: globalsCSS},
		{Path: "app/layout.tsx", Content: nextLayout},
		{Path: "app/page.tsx", Content: renderNextPage(componentName)},
		{Path: "lib/utils.ts", Content: libUtils},
		{Path: ".gitignore", Content: gitignoreNext},
	}
	files = append(files, uiPrimitives("components/ui")...)
	files = append(files, File{Path: "components/" + componentName + ".tsx", Content: source})
	return files
}

func buildReact(projectName, componentName, source string) []File {
	files := []File{
		{Path: "package.json", Content: renderPackageJSONReact(projectName)},
		{Path: "tsconfig.json", Content: tsconfigReact},
		{Path: "vite.config.ts", Content: viteConfig},
		{Path: "index.html", Content: renderIndexHTML(projectName)},
		{Path: "postcss.config.cjs", Content: postcssConfigReact},
		{Path: "tailwind.config.ts", Content: renderTailwindConfig(`["./index.html", "./src/**/*.{ts,tsx}"]`)},
		{Path: "src/index.css", Content: globalsCSS},
		{Path: "src/main.tsx", Content: reactMain},
		{Path: "src/App.tsx", Content: renderReactApp(componentName)},
		{Path: "src/lib/utils.ts", Content: libUtils},
		{Path: ".gitignore", Content: gitignoreReact},
	}
	files = append(files, uiPrimitives("src/components/ui")...)
	files = append(files, File{Path: "src/components/" + componentName + ".tsx", Content: source})
	return files
}

// uiPrimitives returns the fixed primitive library under dir. These ship
// unconditionally so generated code that references them compiles without
// a separate resolution step.
func uiPrimitives(dir string) []File {
	return []File{
		{Path: dir + "/button.tsx", Content: uiButton},
		{Path: dir + "/card.tsx", Content: uiCard},
		{Path: dir + "/input.tsx", Content: uiInput},
		{Path: dir + "/label.tsx", Content: uiLabel},
		{Path: dir + "/badge.tsx", Content: uiBadge},
		{Path: dir + "/progress.tsx", Content: uiProgress},
		{Path: dir + "/slider.tsx", Content: uiSlider},
	}
}
