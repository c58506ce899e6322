package prompt

import (
	"fmt"
	"strings"

	"spi-eshop-be/pkg/department"
	"spi-eshop-be/pkg/llm"
)

// MaxHistoryTurns caps how much caller-supplied conversation is forwarded upstream.
const MaxHistoryTurns = 20

// Build renders the single-shot search instruction.
// The JSON field names in the reply contract are read back by the response interpreter.
func Build(catalog *department.Catalog, query string, matched *department.Department) string {
	var prompt strings.Builder

	writeIntro(&prompt)
	writeDepartments(&prompt, catalog)
	writeRules(&prompt)
	writeUserQuery(&prompt, query, matched)
	prompt.WriteString("\nProvide a helpful response:")

	return prompt.String()
}

// BuildChat renders the chat variant: the instruction as a system turn,
// then the prior conversation, then the new user turn.
func BuildChat(catalog *department.Catalog, message string, matched *department.Department, history []llm.Message) []llm.Message {
	var system strings.Builder
	writeIntro(&system)
	writeDepartments(&system, catalog)
	writeRules(&system)

	var user strings.Builder
	writeUserQuery(&user, message, matched)

	prior := sanitizeHistory(history)
	messages := make([]llm.Message, 0, len(prior)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: strings.TrimSpace(system.String())})
	messages = append(messages, prior...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: strings.TrimSpace(user.String())})

	return messages
}

func writeIntro(prompt *strings.Builder) {
	prompt.WriteString("You are an AI shopping assistant for Spi E-shop, an institute e-commerce platform. ")
	prompt.WriteString("Your role is to help users find products from specific departments.\n\n")
}

func writeDepartments(prompt *strings.Builder, catalog *department.Catalog) {
	prompt.WriteString("DEPARTMENT INFORMATION:\n")
	for _, d := range catalog.List() {
		fmt.Fprintf(prompt, "\n%s - %s\n", d.Code, d.FullName)
		fmt.Fprintf(prompt, "  Sub-categories: %s\n", strings.Join(d.SubCategories, ", "))
		fmt.Fprintf(prompt, "  Common keywords: %s\n", strings.Join(d.Keywords, ", "))
	}
	prompt.WriteString("\n")
}

func writeRules(prompt *strings.Builder) {
	prompt.WriteString("IMPORTANT RULES:\n")
	prompt.WriteString("1. If the user mentions a department (by code, full name, or keywords), ONLY suggest products from that specific department.\n")
	prompt.WriteString("2. Do NOT suggest products from other departments.\n")
	prompt.WriteString("3. If department context is unclear, ask the user to clarify which department they're interested in.\n")
	prompt.WriteString("4. Be concise and helpful.\n")
	prompt.WriteString("5. Reply ONLY with a JSON object with exactly this structure:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"department\": \"department code or null\",\n")
	prompt.WriteString("  \"subCategory\": \"sub-category name or null\",\n")
	prompt.WriteString("  \"suggestions\": [\"product suggestion 1\", \"product suggestion 2\"],\n")
	prompt.WriteString("  \"message\": \"helpful message to the user\"\n")
	prompt.WriteString("}\n\n")
}

func writeUserQuery(prompt *strings.Builder, query string, matched *department.Department) {
	fmt.Fprintf(prompt, "User Query: \"%s\"\n", query)
	if matched != nil {
		fmt.Fprintf(prompt, "\nDetected Department: %s - %s\n", matched.Code, matched.FullName)
	}
}

// sanitizeHistory keeps user/assistant turns with content, newest MaxHistoryTurns only.
func sanitizeHistory(history []llm.Message) []llm.Message {
	out := make([]llm.Message, 0, len(history))
	for _, msg := range history {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		switch strings.ToLower(msg.Role) {
		case llm.RoleUser:
			out = append(out, llm.Message{Role: llm.RoleUser, Content: content})
		case llm.RoleAssistant, "model", "bot":
			out = append(out, llm.Message{Role: llm.RoleAssistant, Content: content})
		}
	}
	if len(out) > MaxHistoryTurns {
		out = out[len(out)-MaxHistoryTurns:]
	}
	return out
}
