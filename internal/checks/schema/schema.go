// Package schema validates database schema files: Prisma schemas,
// Drizzle table definitions, and TypeORM entities. Findings are
// advisory; the check never hard-fails a build.
package schema

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/nvdnvd00/agent-kits/internal/config"
	"github.com/nvdnvd00/agent-kits/internal/scan"
)

var (
	prismaModelRE = regexp.MustCompile(`(?s)model\s+(\w+)\s*\{([^}]+)\}`)
	prismaEnumRE  = regexp.MustCompile(`enum\s+(\w+)\s*\{`)
	foreignKeyRE  = regexp.MustCompile(`(\w+Id)\s+\w+`)
	drizzleTblRE  = regexp.MustCompile(`(?:export\s+const|const)\s+(\w+)\s*=\s*(?:pgTable|mysqlTable|sqliteTable)`)
)

// Result is the validation outcome for one schema file.
type Result struct {
	File   string   `json:"file"`
	Type   string   `json:"type"`
	Passed []string `json:"passed"`
	Issues []string `json:"issues"`
}

// Report is the validation outcome for a project.
type Report struct {
	Script         string   `json:"script"`
	Skill          string   `json:"skill"`
	Project        string   `json:"project"`
	SchemasChecked int      `json:"schemas_checked"`
	TotalIssues    int      `json:"total_issues"`
	Passed         bool     `json:"passed"`
	Message        string   `json:"message,omitempty"`
	Results        []Result `json:"results,omitempty"`
}

// Check validates up to the configured number of schema files under
// dir. Prisma schemas are found first, then Drizzle, then TypeORM.
func Check(dir string, cfg *config.Config) *Report {
	rep := &Report{
		Script:  "schema_validator",
		Skill:   "database-design",
		Project: dir,
	}

	files := findSchemaFiles(dir, cfg.Scan.SkipDirs, cfg.Scan.MaxSchemaFiles)
	if len(files) == 0 {
		rep.Passed = true
		rep.Message = "No schema files found"
		return rep
	}

	for _, f := range files {
		var res Result
		switch f.kind {
		case "prisma":
			res = validatePrisma(f.path)
		case "drizzle":
			res = validateDrizzle(f.path)
		case "typeorm":
			res = validateTypeORM(f.path)
		}
		res.File = filepath.Base(f.path)
		res.Type = f.kind
		rep.Results = append(rep.Results, res)
		rep.TotalIssues += len(res.Issues)
	}

	rep.SchemasChecked = len(files)
	rep.Passed = rep.TotalIssues < cfg.Thresholds.SchemaMaxIssues
	return rep
}

type schemaFile struct {
	kind string
	path string
}

func findSchemaFiles(dir string, skipDirs []string, limit int) []schemaFile {
	w := scan.NewWalker(skipDirs)

	prisma := w.Collect(dir, 0, func(rel string, d fs.DirEntry) bool {
		return filepath.Base(filepath.Dir(rel)) == "prisma" && filepath.Base(rel) == "schema.prisma"
	})
	drizzle := w.Collect(dir, 0, func(rel string, d fs.DirEntry) bool {
		if filepath.Ext(rel) != ".ts" {
			return false
		}
		parent := filepath.Base(filepath.Dir(rel))
		name := strings.ToLower(filepath.Base(rel))
		switch parent {
		case "drizzle":
			return strings.Contains(name, "schema") || strings.Contains(name, "table")
		case "db":
			return strings.HasPrefix(name, "schema")
		case "schema":
			return strings.Contains(name, "schema") || strings.Contains(name, "table")
		}
		return false
	})
	typeorm := w.Collect(dir, 0, func(rel string, d fs.DirEntry) bool {
		return filepath.Ext(rel) == ".ts" && filepath.Base(filepath.Dir(rel)) == "entities"
	})

	var files []schemaFile
	seen := map[string]bool{}
	add := func(kind string, paths []string) {
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				files = append(files, schemaFile{kind, p})
			}
		}
	}
	add("prisma", prisma)
	add("drizzle", drizzle)
	add("typeorm", typeorm)

	if len(files) > limit {
		files = files[:limit]
	}
	return files
}

func validatePrisma(path string) Result {
	var res Result

	content, ok := scan.ReadText(path)
	if !ok {
		res.Issues = append(res.Issues, "Read error")
		return res
	}

	models := prismaModelRE.FindAllStringSubmatch(content, -1)
	if len(models) == 0 {
		res.Issues = append(res.Issues, "No models found in schema")
		return res
	}
	res.Passed = append(res.Passed, fmt.Sprintf("Found %d models", len(models)))

	for _, m := range models {
		name, body := m[1], m[2]

		if !unicode.IsUpper(rune(name[0])) {
			res.Issues = append(res.Issues, fmt.Sprintf("Model '%s' should be PascalCase", name))
		}
		if !strings.Contains(body, "@id") {
			res.Issues = append(res.Issues, fmt.Sprintf("Model '%s' missing @id field", name))
		}
		if !scan.ContainsAny(body, "createdAt", "created_at") {
			res.Issues = append(res.Issues, fmt.Sprintf("Model '%s' missing createdAt (recommended)", name))
		}
		if !scan.ContainsAny(body, "updatedAt", "updated_at") {
			res.Issues = append(res.Issues, fmt.Sprintf("Model '%s' missing updatedAt (recommended)", name))
		}

		for _, fk := range foreignKeyRE.FindAllStringSubmatch(body, -1) {
			field := fk[1]
			if !strings.Contains(content, fmt.Sprintf("@@index([%s])", field)) &&
				!strings.Contains(content, fmt.Sprintf(`@@index(["%s"])`, field)) {
				res.Issues = append(res.Issues, fmt.Sprintf("Consider @@index([%s]) in %s", field, name))
			}
		}
	}

	if enums := prismaEnumRE.FindAllStringSubmatch(content, -1); len(enums) > 0 {
		res.Passed = append(res.Passed, fmt.Sprintf("Found %d enums", len(enums)))
		for _, e := range enums {
			if !unicode.IsUpper(rune(e[1][0])) {
				res.Issues = append(res.Issues, fmt.Sprintf("Enum '%s' should be PascalCase", e[1]))
			}
		}
	}

	if strings.Contains(content, "datasource") {
		res.Passed = append(res.Passed, "Datasource configured")
	} else {
		res.Issues = append(res.Issues, "Missing datasource configuration")
	}
	if strings.Contains(content, "generator") {
		res.Passed = append(res.Passed, "Generator configured")
	}

	return res
}

func validateDrizzle(path string) Result {
	var res Result

	content, ok := scan.ReadText(path)
	if !ok {
		res.Issues = append(res.Issues, "Read error")
		return res
	}

	if tables := drizzleTblRE.FindAllStringSubmatch(content, -1); len(tables) > 0 {
		res.Passed = append(res.Passed, fmt.Sprintf("Found %d tables", len(tables)))
	} else {
		res.Issues = append(res.Issues, "No table definitions found")
	}

	if strings.Contains(content, "primaryKey") {
		res.Passed = append(res.Passed, "Primary keys defined")
	} else {
		res.Issues = append(res.Issues, "Missing primary key definitions")
	}

	if strings.Contains(strings.ToLower(content), "timestamp") || strings.Contains(content, "createdAt") {
		res.Passed = append(res.Passed, "Timestamp fields found")
	}
	if strings.Contains(content, "relations") {
		res.Passed = append(res.Passed, "Relations defined")
	}

	return res
}

func validateTypeORM(path string) Result {
	var res Result

	content, ok := scan.ReadText(path)
	if !ok {
		res.Issues = append(res.Issues, "Read error")
		return res
	}

	if strings.Contains(content, "@Entity") {
		res.Passed = append(res.Passed, "@Entity decorator found")
	} else {
		res.Issues = append(res.Issues, "Missing @Entity decorator")
	}

	if scan.ContainsAny(content, "@PrimaryGeneratedColumn", "@PrimaryColumn") {
		res.Passed = append(res.Passed, "Primary key defined")
	} else {
		res.Issues = append(res.Issues, "Missing primary key column")
	}

	if strings.Contains(content, "@CreateDateColumn") {
		res.Passed = append(res.Passed, "CreateDateColumn found")
	} else {
		res.Issues = append(res.Issues, "Consider adding @CreateDateColumn")
	}

	return res
}
