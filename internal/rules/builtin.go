package rules

import "github.com/accrava/codesweep/internal/types"

// Language tags shared with the scanner's extension table.
var jsFamily = []string{"JavaScript", "JavaScript React", "TypeScript", "TypeScript React"}

// builtinSecurity is the security rule table. Universal categories apply to
// every file; rules with Languages set only run for matching files.
var builtinSecurity = []Spec{
	// sql_injection
	{
		ID:       "sql-concat",
		Category: "sql_injection",
		Pattern:  `(SELECT|INSERT|UPDATE|DELETE).*\+.*['"]`,
		Message:  "Potential SQL injection: String concatenation in SQL query",
		Severity: types.SevHigh,
	},
	{
		ID:       "sql-dynamic-query",
		Category: "sql_injection",
		Pattern:  `query\s*\(\s*["'].*\+.*["']?\s*\)`,
		Message:  "Potential SQL injection: Dynamic query construction",
		Severity: types.SevHigh,
	},
	// xss
	{
		ID:       "xss-innerhtml",
		Category: "xss",
		Pattern:  `innerHTML\s*=\s*.*\+.*`,
		Message:  "Potential XSS: Dynamic HTML content without sanitization",
		Severity: types.SevHigh,
	},
	{
		ID:       "xss-document-write",
		Category: "xss",
		Pattern:  `document\.write\s*\(\s*.*\+.*\)`,
		Message:  "Potential XSS: document.write with dynamic content",
		Severity: types.SevMed,
	},
	{
		ID:       "xss-eval-concat",
		Category: "xss",
		Pattern:  `eval\s*\(\s*.*\+.*\)`,
		Message:  "Potential code injection: eval() with dynamic content",
		Severity: types.SevHigh,
	},
	// insecure_crypto
	{
		ID:       "crypto-weak-hash",
		Category: "insecure_crypto",
		Pattern:  `(md5|sha1)\s*\(`,
		Message:  "Insecure cryptographic hash function (MD5/SHA1)",
		Severity: types.SevMed,
	},
	{
		ID:       "crypto-math-random",
		Category: "insecure_crypto",
		Pattern:  `Math\.random\(\)`,
		Message:  "Weak random number generator - use crypto.randomBytes() instead",
		Severity: types.SevLow,
	},
	// hardcoded_secrets
	{
		ID:       "secret-assignment",
		Category: "hardcoded_secrets",
		Pattern:  `(password|secret|key|token)\s*=\s*["'][a-zA-Z0-9+/=]{10,}["']`,
		Message:  "Potential hardcoded secret or password",
		Severity: types.SevHigh,
	},
	{
		ID:       "secret-api-key",
		Category: "hardcoded_secrets",
		Pattern:  `(api_key|apikey)\s*=\s*["'][a-zA-Z0-9_-]{20,}["']`,
		Message:  "Potential hardcoded API key",
		Severity: types.SevHigh,
	},
	// path_traversal
	{
		ID:       "path-dotdot",
		Category: "path_traversal",
		Pattern:  `(open|read|write).*\.\./`,
		Message:  "Potential path traversal vulnerability",
		Severity: types.SevHigh,
	},
	{
		ID:       "path-fs-concat",
		Category: "path_traversal",
		Pattern:  `fs\.(readFile|writeFile).*\+.*`,
		Message:  "Potential path injection in file operations",
		Severity: types.SevMed,
	},
	// insecure_deserialization
	{
		ID:       "deser-pickle",
		Category: "insecure_deserialization",
		Pattern:  `pickle\.loads?\s*\(`,
		Message:  "Insecure deserialization with pickle",
		Severity: types.SevHigh,
	},
	{
		ID:       "deser-yaml-load",
		Category: "insecure_deserialization",
		Pattern:  `yaml\.load\s*\(\s*.*\)`,
		Message:  "Potential unsafe YAML deserialization",
		Severity: types.SevMed,
	},
	// command_injection
	{
		ID:       "cmd-dynamic-exec",
		Category: "command_injection",
		Pattern:  `(system|exec|popen|subprocess)\s*\(.*\+.*\)`,
		Message:  "Potential command injection: Dynamic command execution",
		Severity: types.SevHigh,
	},
	{
		ID:       "cmd-os-system",
		Category: "command_injection",
		Pattern:  `os\.system\s*\(.*\+.*\)`,
		Message:  "Potential command injection in os.system()",
		Severity: types.SevHigh,
	},
	// insecure_transport
	{
		ID:       "transport-plain-http",
		Category: "insecure_transport",
		Pattern:  `http://`,
		Unless:   `http://(localhost|127\.0\.0\.1|0\.0\.0\.0)`,
		Message:  "Insecure HTTP connection - use HTTPS",
		Severity: types.SevMed,
	},
	{
		ID:       "transport-ssl-noverify",
		Category: "insecure_transport",
		Pattern:  `ssl.*verify.*false|verify.*false.*ssl`,
		Message:  "SSL certificate verification disabled",
		Severity: types.SevHigh,
	},
	// JavaScript family
	{
		ID:        "js-eval",
		Category:  "code_injection",
		Pattern:   `\beval\s*\(`,
		Message:   "Use of eval() function - potential code injection risk",
		Severity:  types.SevHigh,
		Languages: jsFamily,
	},
	{
		ID:        "js-proto-pollution",
		Category:  "prototype_pollution",
		Pattern:   `__proto__|constructor\.prototype`,
		Message:   "Potential prototype pollution vulnerability",
		Severity:  types.SevMed,
		Languages: jsFamily,
	},
	// Python
	{
		ID:        "py-unsafe-import",
		Category:  "insecure_deserialization",
		Pattern:   `import\s+(pickle|marshal|shelve)`,
		Message:   "Potentially unsafe deserialization module imported",
		Severity:  types.SevHigh,
		Languages: []string{"Python"},
	},
	// Java
	{
		ID:        "java-xml-factory",
		Category:  "xxe",
		Pattern:   `XMLInputFactory|DocumentBuilderFactory`,
		Message:   "XML parser - ensure XXE protection is enabled",
		Severity:  types.SevMed,
		Languages: []string{"Java"},
	},
	// PHP
	{
		ID:        "php-dangerous-func",
		Category:  "command_injection",
		Pattern:   `\b(eval|exec|system|shell_exec|passthru)\s*\(`,
		Message:   "Dangerous function used - potential command injection",
		Severity:  types.SevHigh,
		Languages: []string{"PHP"},
	},
}

// builtinLint is the style rule table. Lint findings use the same ternary
// severity scale: what the classic linters call "error" maps to high and
// "warning" maps to medium.
var builtinLint = []Spec{
	{
		ID:       "trailing-whitespace",
		Category: "whitespace",
		Pattern:  `[ \t]+$`,
		Message:  "Trailing whitespace",
		Severity: types.SevMed,
	},
	{
		ID:       "line-too-long",
		Category: "line-length",
		Pattern:  `^.{121,}$`,
		Message:  "Line too long (> 120 characters)",
		Severity: types.SevMed,
	},
	{
		ID:       "mixed-indentation",
		Category: "indentation",
		Pattern:  `(\t.* {4})|( {4}.*\t)`,
		Message:  "Mixed tabs and spaces for indentation",
		Severity: types.SevMed,
	},
	{
		ID:        "js-missing-semicolon",
		Category:  "javascript-style",
		Pattern:   `[^;{}:,\s]\s*$`,
		Unless:    `^\s*(if|for|while|function|class|const|let|var|//)`,
		Message:   "Missing semicolon",
		Severity:  types.SevMed,
		Languages: jsFamily,
	},
	{
		ID:        "py-odd-indentation",
		Category:  "python-indentation",
		Pattern:   `^( {4})* {1,3}[^ ]`,
		Message:   "Indentation should be a multiple of 4 spaces",
		Severity:  types.SevMed,
		Languages: []string{"Python"},
	},
	{
		ID:        "java-brace-spacing",
		Category:  "java-style",
		Pattern:   `\S\{\s*$`,
		Unless:    `^\s*(if|for|while|class|public|private|protected)\b`,
		Message:   "Opening brace should be preceded by a space",
		Severity:  types.SevMed,
		Languages: []string{"Java"},
	},
}
