package workspace

// Detection mapping tables. These are the heuristic heart of the scanner:
// presence of a marker file, directory, or dependency maps to technology
// labels and capability categories.

// marker ties a framework label to its capability category.
type marker struct {
	Framework string
	Category  string
}

// configLanguages maps package-manager config files to languages/platforms.
var configLanguages = map[string]string{
	"package.json":     "nodejs",
	"tsconfig.json":    "typescript",
	"pubspec.yaml":     "dart",
	"pyproject.toml":   "python",
	"requirements.txt": "python",
	"Cargo.toml":       "rust",
	"go.mod":           "go",
	"build.gradle":     "kotlin",
	"build.gradle.kts": "kotlin",
	"Podfile":          "swift",
	"composer.json":    "php",
	"Gemfile":          "ruby",
}

// frameworkMarkers maps framework-specific config files to framework + category.
var frameworkMarkers = map[string]marker{
	"next.config.js":      {"nextjs", "frontend"},
	"next.config.mjs":     {"nextjs", "frontend"},
	"next.config.ts":      {"nextjs", "frontend"},
	"vite.config.js":      {"vite", "frontend"},
	"vite.config.ts":      {"vite", "frontend"},
	"angular.json":        {"angular", "frontend"},
	"nuxt.config.js":      {"nuxtjs", "frontend"},
	"nuxt.config.ts":      {"nuxtjs", "frontend"},
	"tailwind.config.js":  {"tailwindcss", "styling"},
	"tailwind.config.ts":  {"tailwindcss", "styling"},
	"tailwind.config.mjs": {"tailwindcss", "styling"},
	"Dockerfile":          {"docker", "devops"},
	"docker-compose.yml":  {"docker-compose", "devops"},
	"docker-compose.yaml": {"docker-compose", "devops"},
	".gitlab-ci.yml":      {"gitlab-ci", "cicd"},
	"pubspec.yaml":        {"flutter", "mobile"},
}

// directoryMarkers maps special directories to framework + category.
// Matched frameworks are also recorded as tools.
var directoryMarkers = map[string]marker{
	".github/workflows": {"github-actions", "cicd"},
	"k8s":               {"kubernetes", "devops"},
	"kubernetes":        {"kubernetes", "devops"},
	"terraform":         {"terraform", "iac"},
	"prisma":            {"prisma", "database"},
}

// npmCategories maps npm dependencies to capability categories.
// Matching is exact name or scoped prefix (pattern + "/").
var npmCategories = map[string]string{
	// Frontend
	"react":         "frontend",
	"react-dom":     "frontend",
	"vue":           "frontend",
	"@angular/core": "frontend",
	"svelte":        "frontend",
	// Backend
	"express":      "backend",
	"fastify":      "backend",
	"@nestjs/core": "backend",
	"koa":          "backend",
	"hono":         "backend",
	// Database
	"@prisma/client": "database",
	"drizzle-orm":    "database",
	"pg":             "database",
	"mysql2":         "database",
	"mongodb":        "database",
	"mongoose":       "database",
	"redis":          "database",
	"ioredis":        "database",
	// AI
	"openai":            "ai",
	"langchain":         "ai",
	"@langchain/core":   "ai",
	"@anthropic-ai/sdk": "ai",
	// Realtime
	"socket.io":        "realtime",
	"socket.io-client": "realtime",
	"ws":               "realtime",
	// Queue
	"bullmq":    "queue",
	"bull":      "queue",
	"bee-queue": "queue",
	"amqplib":   "queue",
	// Testing
	"jest":             "testing",
	"vitest":           "testing",
	"playwright":       "testing",
	"@playwright/test": "testing",
	"cypress":          "testing",
	// Auth
	"passport":   "auth",
	"next-auth":  "auth",
	"@auth/core": "auth",
	// GraphQL
	"graphql":        "graphql",
	"@apollo/server": "graphql",
	"@apollo/client": "graphql",
}

// npmFrameworks maps npm dependencies (exact match) to framework labels.
var npmFrameworks = map[string]string{
	"next":           "nextjs",
	"react":          "react",
	"vue":            "vue",
	"@angular/core":  "angular",
	"express":        "express",
	"fastify":        "fastify",
	"@nestjs/core":   "nestjs",
	"socket.io":      "socketio",
	"tailwindcss":    "tailwindcss",
	"@prisma/client": "prisma",
	"drizzle-orm":    "drizzle",
}

// mainCategories is the fixed set of category flags every profile carries.
var mainCategories = []string{
	"frontend", "backend", "mobile", "database", "devops",
	"ai", "realtime", "queue", "graphql", "auth", "testing",
}

// categoryFold maps sub-categories onto the main category flags.
var categoryFold = map[string]string{
	"styling": "frontend",
	"iac":     "devops",
	"cicd":    "devops",
}

// databaseFrameworks are frameworks that imply a database technology.
var databaseFrameworks = []string{"prisma", "drizzle", "mongodb", "postgresql", "mysql"}
