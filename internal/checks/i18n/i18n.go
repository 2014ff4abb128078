// Package i18n audits internationalization readiness: locale file key
// parity across languages and hardcoded user-facing strings in code
// that shows no translation-library usage.
package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/nvdnvd00/agent-kits/internal/config"
	"github.com/nvdnvd00/agent-kits/internal/scan"
)

// hardcodedPatterns flag literal user-facing text per source flavor.
var hardcodedPatterns = map[string][]*regexp.Regexp{
	"jsx": {
		regexp.MustCompile(`>\s*[A-Z][a-zA-Z\s]{3,30}\s*</`),
		regexp.MustCompile(`(title|placeholder|label|alt)="[A-Z][a-zA-Z\s]{2,}"`),
	},
	"vue": {
		regexp.MustCompile(`>\s*[A-Z][a-zA-Z\s]{3,30}\s*</`),
		regexp.MustCompile(`(placeholder|label|title)="[A-Z][a-zA-Z\s]{2,}"`),
	},
	"python": {
		regexp.MustCompile(`(print|raise\s+\w+)\s*\(\s*["'][A-Z][^"']{5,}["']`),
		regexp.MustCompile(`flash\s*\(\s*["'][A-Z][^"']{5,}["']`),
	},
}

// i18nPatterns indicate a file already goes through a translation layer.
var i18nPatterns = []*regexp.Regexp{
	regexp.MustCompile(`t\(["']`),
	regexp.MustCompile(`useTranslation`),
	regexp.MustCompile(`\$t\(`),
	regexp.MustCompile(`_\(["']`),
	regexp.MustCompile(`gettext\(`),
	regexp.MustCompile(`useTranslations`),
	regexp.MustCompile(`FormattedMessage`),
}

var codeFileTypes = map[string]string{
	".tsx": "jsx", ".jsx": "jsx", ".ts": "jsx", ".js": "jsx",
	".vue": "vue",
	".py":  "python",
}

var localeDirNames = map[string]bool{
	"locales": true, "translations": true, "lang": true, "i18n": true,
}

// SectionResult holds one audit section for rendering.
type SectionResult struct {
	Passed []string
	Issues []string
}

// Report is the audit outcome for a project.
type Report struct {
	Script      string `json:"script"`
	Skill       string `json:"skill"`
	Project     string `json:"project"`
	LocaleFiles int    `json:"locale_files"`
	Issues      int    `json:"issues"`
	Passed      bool   `json:"passed"`

	Locales SectionResult `json:"-"`
	Code    SectionResult `json:"-"`
}

// Check audits locale completeness and hardcoded strings under dir.
// Issues mentioning hardcoded strings or missing keys are the failing
// kind; everything else is advisory.
func Check(dir string, cfg *config.Config) *Report {
	rep := &Report{
		Script:  "i18n_checker",
		Skill:   "i18n-localization",
		Project: dir,
	}

	w := scan.NewWalker(cfg.Scan.SkipDirs)

	localeFiles := w.Collect(dir, 0, isLocaleFile)
	rep.LocaleFiles = len(localeFiles)
	rep.Locales = checkLocaleCompleteness(localeFiles)

	rep.Code = checkHardcodedStrings(w, dir, cfg.Scan.MaxCodeFiles)

	critical := 0
	for _, issue := range append(append([]string{}, rep.Locales.Issues...), rep.Code.Issues...) {
		rep.Issues++
		l := strings.ToLower(issue)
		if strings.Contains(l, "hardcoded") || strings.Contains(l, "missing") {
			critical++
		}
	}
	rep.Passed = critical == 0
	return rep
}

func isLocaleFile(rel string, d fs.DirEntry) bool {
	if strings.ToLower(filepath.Ext(rel)) != ".json" {
		return false
	}
	parts := strings.Split(filepath.Dir(rel), "/")
	for _, p := range parts {
		if localeDirNames[p] {
			return true
		}
	}
	// messages/ only matches as the direct parent
	return len(parts) > 0 && parts[len(parts)-1] == "messages"
}

// checkLocaleCompleteness groups locale files by language directory and
// compares flattened key sets per namespace against the first language.
func checkLocaleCompleteness(files []string) SectionResult {
	var res SectionResult
	if len(files) == 0 {
		res.Passed = append(res.Passed, "No locale files found (not required)")
		return res
	}

	locales := map[string]map[string]map[string]bool{}
	for _, path := range files {
		content, ok := scan.ReadText(path)
		if !ok {
			continue
		}
		var doc map[string]any
		if err := json.Unmarshal([]byte(content), &doc); err != nil {
			continue
		}
		lang := filepath.Base(filepath.Dir(path))
		ns := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if locales[lang] == nil {
			locales[lang] = map[string]map[string]bool{}
		}
		locales[lang][ns] = flattenKeys(doc, "")
	}

	if len(locales) < 2 {
		res.Passed = append(res.Passed, fmt.Sprintf("Found %d locale file(s)", len(files)))
		return res
	}

	langs := make([]string, 0, len(locales))
	for lang := range locales {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	res.Passed = append(res.Passed,
		fmt.Sprintf("Found %d languages: %s", len(langs), strings.Join(langs, ", ")))

	base := langs[0]
	namespaces := make([]string, 0, len(locales[base]))
	for ns := range locales[base] {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)

	for _, ns := range namespaces {
		baseKeys := locales[base][ns]
		for _, lang := range langs[1:] {
			otherKeys := locales[lang][ns]

			missing := 0
			for k := range baseKeys {
				if !otherKeys[k] {
					missing++
				}
			}
			if missing > 0 {
				res.Issues = append(res.Issues,
					fmt.Sprintf("%s/%s: Missing %d keys", lang, ns, missing))
			}

			extra := 0
			for k := range otherKeys {
				if !baseKeys[k] {
					extra++
				}
			}
			if extra > 3 {
				res.Issues = append(res.Issues,
					fmt.Sprintf("%s/%s: %d extra keys", lang, ns, extra))
			}
		}
	}

	if len(res.Issues) == 0 {
		res.Passed = append(res.Passed, "All locales have matching keys")
	}
	return res
}

func flattenKeys(doc map[string]any, prefix string) map[string]bool {
	keys := map[string]bool{}
	for k, v := range doc {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			for nk := range flattenKeys(nested, full) {
				keys[nk] = true
			}
		} else {
			keys[full] = true
		}
	}
	return keys
}

func checkHardcodedStrings(w *scan.Walker, dir string, limit int) SectionResult {
	var res SectionResult

	files := w.Collect(dir, 0, func(rel string, d fs.DirEntry) bool {
		if _, ok := codeFileTypes[strings.ToLower(filepath.Ext(rel))]; !ok {
			return false
		}
		return !scan.ContainsAny(filepath.Base(rel), "test", "spec", "config")
	})
	if len(files) == 0 {
		res.Passed = append(res.Passed, "No code files found")
		return res
	}

	withI18n := 0
	withHardcoded := 0
	var examples []string

	scanned := files
	if len(scanned) > limit {
		scanned = scanned[:limit]
	}
	for _, path := range scanned {
		content, ok := scan.ReadText(path)
		if !ok {
			continue
		}

		hasI18n := false
		for _, p := range i18nPatterns {
			if p.MatchString(content) {
				hasI18n = true
				break
			}
		}
		if hasI18n {
			withI18n++
			continue
		}

		fileType := codeFileTypes[strings.ToLower(filepath.Ext(path))]
		for _, p := range hardcodedPatterns[fileType] {
			m := p.FindString(content)
			if m == "" {
				continue
			}
			withHardcoded++
			if len(examples) < 5 {
				if len(m) > 30 {
					m = m[:30]
				}
				examples = append(examples, fmt.Sprintf("%s: %s...", filepath.Base(path), m))
			}
			break
		}
	}

	res.Passed = append(res.Passed, fmt.Sprintf("Analyzed %d code files", len(files)))
	if withI18n > 0 {
		res.Passed = append(res.Passed, fmt.Sprintf("%d files use i18n patterns", withI18n))
	}

	if withHardcoded > 0 {
		res.Issues = append(res.Issues,
			fmt.Sprintf("%d files may have hardcoded strings", withHardcoded))
		for i, ex := range examples {
			if i == 3 {
				break
			}
			res.Issues = append(res.Issues, "  -> "+ex)
		}
	} else {
		res.Passed = append(res.Passed, "No obvious hardcoded strings detected")
	}
	return res
}
