package completion

import (
	"strings"
)

func escapeBash(desc string) string {
	desc = strings.ReplaceAll(desc, `"`, `\"`)
	desc = strings.ReplaceAll(desc, `'`, `\'`)
	desc = strings.ReplaceAll(desc, `$`, `\$`)
	desc = strings.ReplaceAll(desc, `[`, `\[`)
	desc = strings.ReplaceAll(desc, `]`, `\]`)
	return desc
}

func escapeFish(desc string) string {
	return strings.ReplaceAll(desc, `"`, `\"`)
}

// lastComponent returns the final command name of a space-joined command path
func lastComponent(path string) string {
	if idx := strings.LastIndex(path, " "); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
