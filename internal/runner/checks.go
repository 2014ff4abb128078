// Package runner orchestrates external skill scripts against a target
// project: the priority-ordered core checklist, URL-gated performance
// checks, and the full pre-deployment verification suite.
package runner

// Check is one external validation script shipped by a skill.
type Check struct {
	Name     string
	Skill    string
	Script   string
	Priority int
	Required bool
	NeedsURL bool
}

// CoreChecks run for every project, in priority order.
var CoreChecks = []Check{
	{
		Name:     "Security Scan",
		Skill:    "security-fundamentals",
		Script:   ".agent/skills/security-fundamentals/scripts/security_scan.py",
		Priority: 0,
		Required: true,
	},
	{
		Name:     "Lint Check",
		Skill:    "clean-code",
		Script:   ".agent/skills/clean-code/scripts/lint_runner.py",
		Priority: 1,
		Required: true,
	},
	{
		Name:     "Schema Validation",
		Skill:    "database-design",
		Script:   ".agent/skills/database-design/scripts/schema_validator.py",
		Priority: 2,
	},
	{
		Name:     "Test Runner",
		Skill:    "testing-patterns",
		Script:   ".agent/skills/testing-patterns/scripts/test_runner.py",
		Priority: 3,
	},
	{
		Name:     "UX Audit",
		Skill:    "frontend-design",
		Script:   ".agent/skills/frontend-design/scripts/ux_audit.py",
		Priority: 4,
	},
	{
		Name:     "SEO Check",
		Skill:    "seo-patterns",
		Script:   ".agent/skills/seo-patterns/scripts/seo_checker.py",
		Priority: 5,
	},
}

// PerformanceChecks need a reachable URL and only run when one is given.
var PerformanceChecks = []Check{
	{
		Name:     "Lighthouse Audit",
		Skill:    "performance-profiling",
		Script:   ".agent/skills/performance-profiling/scripts/lighthouse_audit.py",
		Priority: 6,
		NeedsURL: true,
	},
	{
		Name:     "E2E Tests",
		Skill:    "e2e-testing",
		Script:   ".agent/skills/e2e-testing/scripts/playwright_runner.py",
		Priority: 7,
		NeedsURL: true,
	},
}

// QuickCheckNames is the subset run under --quick.
var QuickCheckNames = map[string]bool{
	"Security Scan": true,
	"Lint Check":    true,
	"Test Runner":   true,
}

// Category is one verification suite stage.
type Category struct {
	Name        string
	Priority    int
	RequiresURL bool
	Checks      []Check
}

// VerificationSuite is the complete pre-deployment check set, grouped
// by category. Categories are filtered by detected project type.
var VerificationSuite = []Category{
	{
		Name:     "Security",
		Priority: 0,
		Checks: []Check{
			{Name: "Security Scan", Skill: "security-fundamentals", Script: ".agent/skills/security-fundamentals/scripts/security_scan.py", Required: true},
			{Name: "Dependency Audit", Skill: "security-fundamentals", Script: ".agent/skills/security-fundamentals/scripts/dependency_audit.py"},
			{Name: "Auth Validation", Skill: "auth-patterns", Script: ".agent/skills/auth-patterns/scripts/auth_validator.py"},
		},
	},
	{
		Name:     "Code Quality",
		Priority: 1,
		Checks: []Check{
			{Name: "Lint Check", Skill: "clean-code", Script: ".agent/skills/clean-code/scripts/lint_runner.py", Required: true},
			{Name: "Type Coverage", Skill: "typescript-patterns", Script: ".agent/skills/typescript-patterns/scripts/type_coverage.py"},
		},
	},
	{
		Name:     "Data Layer",
		Priority: 2,
		Checks: []Check{
			{Name: "Schema Validation", Skill: "database-design", Script: ".agent/skills/database-design/scripts/schema_validator.py"},
			{Name: "PostgreSQL Audit", Skill: "postgres-patterns", Script: ".agent/skills/postgres-patterns/scripts/postgres_audit.py"},
		},
	},
	{
		Name:     "Testing",
		Priority: 3,
		Checks: []Check{
			{Name: "Test Suite", Skill: "testing-patterns", Script: ".agent/skills/testing-patterns/scripts/test_runner.py"},
		},
	},
	{
		Name:     "UX & Accessibility",
		Priority: 4,
		Checks: []Check{
			{Name: "UX Audit", Skill: "frontend-design", Script: ".agent/skills/frontend-design/scripts/ux_audit.py"},
			{Name: "Accessibility Check", Skill: "accessibility-patterns", Script: ".agent/skills/accessibility-patterns/scripts/accessibility_checker.py"},
		},
	},
	{
		Name:     "SEO",
		Priority: 5,
		Checks: []Check{
			{Name: "SEO Check", Skill: "seo-patterns", Script: ".agent/skills/seo-patterns/scripts/seo_checker.py"},
		},
	},
	{
		Name:        "Performance",
		Priority:    6,
		RequiresURL: true,
		Checks: []Check{
			{Name: "Lighthouse Audit", Skill: "performance-profiling", Script: ".agent/skills/performance-profiling/scripts/lighthouse_audit.py", Required: true, NeedsURL: true},
		},
	},
	{
		Name:        "E2E Testing",
		Priority:    7,
		RequiresURL: true,
		Checks: []Check{
			{Name: "Playwright E2E", Skill: "e2e-testing", Script: ".agent/skills/e2e-testing/scripts/playwright_runner.py", NeedsURL: true},
		},
	},
	{
		Name:     "Mobile",
		Priority: 8,
		Checks: []Check{
			{Name: "Mobile Audit", Skill: "mobile-design", Script: ".agent/skills/mobile-design/scripts/mobile_audit.py"},
		},
	},
	{
		Name:     "API",
		Priority: 9,
		Checks: []Check{
			{Name: "API Validator", Skill: "api-patterns", Script: ".agent/skills/api-patterns/scripts/api_validator.py"},
		},
	},
}
