package security

import "regexp"

// secretPattern flags hardcoded credentials in source and config files.
type secretPattern struct {
	re       *regexp.Regexp
	kind     string
	severity string
}

// dangerousPattern flags risky code constructs, matched line by line so
// findings carry a line number.
type dangerousPattern struct {
	re       *regexp.Regexp
	name     string
	severity string
	category string
}

var secretPatterns = []secretPattern{
	{regexp.MustCompile(`(?i)api[_-]?key\s*[=:]\s*["'][^"']{10,}["']`), "API Key", "high"},
	{regexp.MustCompile(`(?i)token\s*[=:]\s*["'][^"']{10,}["']`), "Token", "high"},
	{regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-_.]+`), "Bearer Token", "critical"},

	{regexp.MustCompile(`(?i)AKIA[0-9A-Z]{16}`), "AWS Access Key", "critical"},
	{regexp.MustCompile(`(?i)aws[_-]?secret[_-]?access[_-]?key\s*[=:]\s*["'][^"']+["']`), "AWS Secret", "critical"},

	{regexp.MustCompile(`(?i)password\s*[=:]\s*["'][^"']{4,}["']`), "Password", "high"},
	{regexp.MustCompile(`(?i)(mongodb|postgres|mysql|redis)://[^\s"']+`), "Database URI", "critical"},

	{regexp.MustCompile(`(?i)-----BEGIN\s+(RSA|PRIVATE|EC)\s+KEY-----`), "Private Key", "critical"},

	{regexp.MustCompile(`(?i)eyJ[A-Za-z0-9-_]+\.eyJ[A-Za-z0-9-_]+\.[A-Za-z0-9-_]+`), "JWT Token", "high"},
}

var dangerousPatterns = []dangerousPattern{
	{regexp.MustCompile(`(?i)eval\s*\(`), "eval()", "critical", "Code Injection"},
	{regexp.MustCompile(`(?i)exec\s*\(`), "exec()", "critical", "Code Injection"},
	{regexp.MustCompile(`(?i)new\s+Function\s*\(`), "Function constructor", "high", "Code Injection"},
	{regexp.MustCompile(`(?i)child_process\.exec\s*\(`), "child_process.exec", "high", "Command Injection"},

	{regexp.MustCompile(`(?i)dangerouslySetInnerHTML`), "dangerouslySetInnerHTML", "high", "XSS"},
	{regexp.MustCompile(`(?i)\.innerHTML\s*=`), "innerHTML assignment", "medium", "XSS"},

	{regexp.MustCompile(`(?i)["'][^"']*\+\s*[a-zA-Z_]+\s*\+\s*["'].*(SELECT|INSERT|UPDATE|DELETE)`), "SQL Concat", "critical", "SQL Injection"},

	{regexp.MustCompile(`(?i)verify\s*=\s*False`), "SSL Verify Disabled", "high", "MITM"},
}

var codeExtensions = map[string]bool{
	".js": true, ".ts": true, ".jsx": true, ".tsx": true,
	".py": true, ".go": true, ".java": true,
}

var configExtensions = map[string]bool{
	".json": true, ".yaml": true, ".yml": true, ".toml": true, ".env": true,
}
