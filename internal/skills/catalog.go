// Package skills holds the skill catalog, the workspace-to-skill
// recommendation logic, and the on-disk skill manager.
package skills

// All is the complete catalog of skills a kit can carry.
var All = []string{
	"clean-code", "api-patterns", "database-design", "testing-patterns",
	"security-fundamentals", "performance-profiling", "brainstorming",
	"plan-writing", "systematic-debugging", "realtime-patterns",
	"multi-tenancy", "queue-patterns", "docker-patterns", "kubernetes-patterns",
	"auth-patterns", "github-actions", "gitlab-ci-patterns", "prompt-engineering",
	"react-patterns", "typescript-patterns", "e2e-testing", "postgres-patterns",
	"redis-patterns", "graphql-patterns", "ai-rag-patterns",
	"monitoring-observability", "terraform-patterns", "flutter-patterns",
	"react-native-patterns", "seo-patterns", "accessibility-patterns",
	"mermaid-diagrams", "i18n-localization", "mobile-design",
	"documentation-templates", "tailwind-patterns", "frontend-design",
	"ui-ux-pro-max", "nodejs-best-practices",
}

// Core skills are always recommended and never disabled.
var Core = []string{
	"clean-code",
	"brainstorming",
	"plan-writing",
	"systematic-debugging",
	"testing-patterns",
	"security-fundamentals",
}

// markerSkills maps framework marker files to the skills they activate.
var markerSkills = map[string][]string{
	"next.config.js":      {"react-patterns", "seo-patterns", "frontend-design"},
	"next.config.mjs":     {"react-patterns", "seo-patterns", "frontend-design"},
	"next.config.ts":      {"react-patterns", "seo-patterns", "frontend-design"},
	"vite.config.js":      {"react-patterns", "frontend-design"},
	"vite.config.ts":      {"react-patterns", "frontend-design"},
	"angular.json":        {"typescript-patterns", "frontend-design"},
	"nuxt.config.js":      {"frontend-design", "seo-patterns"},
	"nuxt.config.ts":      {"frontend-design", "seo-patterns"},
	"tailwind.config.js":  {"tailwind-patterns"},
	"tailwind.config.ts":  {"tailwind-patterns"},
	"tailwind.config.mjs": {"tailwind-patterns"},
	"Dockerfile":          {"docker-patterns"},
	"docker-compose.yml":  {"docker-patterns"},
	"docker-compose.yaml": {"docker-patterns"},
	".gitlab-ci.yml":      {"gitlab-ci-patterns"},
}

// directorySkills maps marker directories to skills.
var directorySkills = map[string][]string{
	".github/workflows": {"github-actions"},
	"k8s":               {"kubernetes-patterns"},
	"kubernetes":        {"kubernetes-patterns"},
	"terraform":         {"terraform-patterns"},
	"prisma":            {"database-design", "postgres-patterns"},
}

// dependencySkills maps npm dependency fragments to skills.
// Matching is substring: "react" also catches "react-dom" and
// "@tanstack/react-query".
var dependencySkills = map[string][]string{
	"react":                 {"react-patterns"},
	"next":                  {"react-patterns", "seo-patterns"},
	"@tanstack/react-query": {"react-patterns"},
	"vue":                   {"frontend-design"},
	"graphql":               {"graphql-patterns"},
	"@apollo":               {"graphql-patterns"},
	"redis":                 {"redis-patterns"},
	"ioredis":               {"redis-patterns"},
	"pg":                    {"postgres-patterns"},
	"postgres":              {"postgres-patterns"},
	"@prisma/client":        {"database-design", "postgres-patterns"},
	"drizzle-orm":           {"database-design"},
	"socket.io":             {"realtime-patterns"},
	"ws":                    {"realtime-patterns"},
	"bullmq":                {"queue-patterns"},
	"bee-queue":             {"queue-patterns"},
	"passport":              {"auth-patterns"},
	"@auth":                 {"auth-patterns"},
	"next-auth":             {"auth-patterns"},
	"openai":                {"ai-rag-patterns", "prompt-engineering"},
	"langchain":             {"ai-rag-patterns"},
	"@langchain":            {"ai-rag-patterns"},
	"playwright":            {"e2e-testing"},
	"@playwright":           {"e2e-testing"},
	"cypress":               {"e2e-testing"},
	"jest":                  {"testing-patterns"},
	"vitest":                {"testing-patterns"},
	"eslint":                {"clean-code"},
	"prettier":              {"clean-code"},
	"typescript":            {"typescript-patterns"},
}

// configTechs maps package-manager config files to the technology labels
// reported by the analyzer. This deliberately differs from the language
// table used by the techstack profile (build.gradle means "android" to a
// skill recommender, "kotlin" to a language profile).
var configTechs = map[string]string{
	"package.json":     "nodejs",
	"pubspec.yaml":     "flutter",
	"pyproject.toml":   "python",
	"requirements.txt": "python",
	"Cargo.toml":       "rust",
	"go.mod":           "go",
	"build.gradle":     "android",
	"build.gradle.kts": "android",
	"Podfile":          "ios",
	"composer.json":    "php",
	"Gemfile":          "ruby",
}

// IsCore reports whether name is a core skill.
func IsCore(name string) bool {
	for _, c := range Core {
		if c == name {
			return true
		}
	}
	return false
}
