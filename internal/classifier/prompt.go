package classifier

import (
	"fmt"
	"strings"

	"github.com/youruser/bubblesticker/internal/emotion"
)

const maxPromptLabels = 3

func systemPrompt(table *emotion.PriorityTable) string {
	names := make([]string, 0, table.Len())
	for _, l := range table.Labels() {
		names = append(names, string(l))
	}
	return fmt.Sprintf(`You label the emotions of short chat messages.
Reply with 1 to %d labels from this list, comma separated, most prominent first, and nothing else:
%s`, maxPromptLabels, strings.Join(names, ", "))
}

// parseLabels keeps the labels in reply that the table knows, in order. If none are
// known, the first token is kept verbatim so the caller still sees what came back.
func parseLabels(reply string, table *emotion.PriorityTable) string {
	tokens := strings.FieldsFunc(strings.ToLower(reply), func(r rune) bool {
		return r == ',' || r == '\n' || r == ';' || r == '|'
	})
	var known, all emotion.LabelSet
	for _, tok := range tokens {
		l, ok := emotion.ParseLabel(strings.Trim(tok, " \t.\"'`*-"))
		if !ok {
			continue
		}
		all = append(all, l)
		if _, inTable := table.Lookup(l); inTable && !known.Contains(l) {
			known = append(known, l)
		}
	}
	switch {
	case len(known) > 0:
		return known.Join()
	case len(all) > 0:
		return string(all[0])
	default:
		return ""
	}
}
