package scan

import (
	"path/filepath"
	"strings"
)

// extToLang maps file extensions to language tags. Unknown extensions map to
// "Unknown" and receive only the universal rules.
var extToLang = map[string]string{
	".js":    "JavaScript",
	".jsx":   "JavaScript React",
	".ts":    "TypeScript",
	".tsx":   "TypeScript React",
	".py":    "Python",
	".java":  "Java",
	".go":    "Go",
	".rs":    "Rust",
	".cpp":   "C++",
	".c":     "C",
	".h":     "C/C++ Header",
	".cs":    "C#",
	".php":   "PHP",
	".rb":    "Ruby",
	".swift": "Swift",
	".kt":    "Kotlin",
	".scala": "Scala",
}

// Language infers the language tag from a path's extension.
func Language(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := extToLang[ext]; ok {
		return lang
	}
	return "Unknown"
}
