package ai

import (
	"strings"
)


// BuildSQLPrompt constructs the prompt for a dialect instruction and the user's request
func BuildSQLPrompt(instruction string, userQuery string) string {
	var promptBuilder strings.Builder
	promptBuilder.WriteString(instruction)
	promptBuilder.WriteString("\n\n")
	promptBuilder.WriteString("Generate SQL for: ")
	promptBuilder.WriteString(userQuery)
	promptBuilder.WriteString("\n\nSQL:")

	return promptBuilder.String()
}

// CleanSQL strips markdown code fences anywhere in the completion and trims it.
// Tagged openers are removed in a full pass before bare fences.
func CleanSQL(raw string) string {
	sql := strings.ReplaceAll(raw, "```sql", "")
	sql = strings.ReplaceAll(sql, "```SQL", "")
	sql = strings.ReplaceAll(sql, "```", "")
	return strings.TrimSpace(sql)
}
