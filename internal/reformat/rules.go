package reformat

import "strings"

// rewriteRule inserts line breaks around one kind of structural token.
type rewriteRule interface {
	apply(string) string
}

// rewriteRules run in order over the cumulative text: each rule sees the
// insertions of every rule before it, and the ordering is load-bearing.
// For example, the bare `class` rule relies on the `public class` rule having
// already claimed its matches, and the modifier rules match text positioned
// by the brace and semicolon rules.
var rewriteRules = []rewriteRule{
	keywordRule{words: []string{"package"}, replacement: "\npackage "},
	keywordRule{words: []string{"import"}, replacement: "\nimport "},
	keywordRule{words: []string{"public", "class"}, replacement: "\n\npublic class "},
	keywordRule{words: []string{"public", "interface"}, replacement: "\n\npublic interface "},
	keywordRule{words: []string{"public", "enum"}, replacement: "\n\npublic enum "},
	keywordRule{words: []string{"class"}, replacement: "\nclass ", notAfter: []string{"public"}},
	keywordRule{words: []string{"interface"}, replacement: "\ninterface ", notAfter: []string{"public"}},
	keywordRule{words: []string{"enum"}, replacement: "\nenum ", notAfter: []string{"public"}},
	literalRule{old: "{", new: " {\n"},
	literalRule{old: "}", new: "\n}\n"},
	literalRule{old: ";", new: ";\n"},
	keywordRule{words: []string{"private"}, replacement: "\n" + IndentUnit + "private "},
	keywordRule{words: []string{"protected"}, replacement: "\n" + IndentUnit + "protected "},
	keywordRule{words: []string{"public"}, replacement: "\n" + IndentUnit + "public ",
		notBefore: []string{"class", "interface", "enum"}},
	keywordRule{words: []string{"static"}, replacement: "static "},
	keywordRule{words: []string{"final"}, replacement: "final "},
}

// insertBreaks applies the ordered rewrite rules, inserting line breaks
// around structural keywords, braces and semicolons. Only whitespace is ever
// added or removed: the structural characters themselves are conserved.
func insertBreaks(text string) string {
	for _, r := range rewriteRules {
		text = r.apply(text)
	}
	return text
}

// literalRule replaces every occurrence of a literal token. Replacements are
// not rescanned, so a rule whose replacement contains its own token (as the
// brace rules do) terminates after one left-to-right pass.
type literalRule struct {
	old string
	new string
}

func (r literalRule) apply(text string) string {
	return strings.ReplaceAll(text, r.old, r.new)
}

// keywordRule matches a keyword sequence anchored on identifier boundaries:
// the preceding character must not be an identifier character, and each
// keyword must be followed by at least one whitespace character. The match
// consumes the keywords together with their trailing whitespace runs, so the
// replacement also renormalises spacing. Identifiers that merely contain a
// keyword as a substring (such as finalScore) can never match.
type keywordRule struct {
	words       []string
	replacement string
	notBefore   []string // skip when the text after the match starts with one of these
	notAfter    []string // skip when the identifier preceding the match is one of these
}

func (r keywordRule) apply(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)

	i := 0
	for i < len(text) {
		end, ok := r.match(text, i)
		if !ok {
			b.WriteByte(text[i])
			i++
			continue
		}
		b.WriteString(r.replacement)
		i = end
	}

	return b.String()
}

// match reports whether the rule matches at offset i, and if so returns the
// offset just past the consumed text.
func (r keywordRule) match(text string, i int) (int, bool) {
	if i > 0 && isIdentChar(text[i-1]) {
		return 0, false
	}

	if r.excludedByPrecedingWord(text, i) {
		return 0, false
	}

	pos := i
	for _, w := range r.words {
		if !strings.HasPrefix(text[pos:], w) {
			return 0, false
		}
		pos += len(w)

		n := leadingWhitespace(text[pos:])
		if n == 0 {
			return 0, false
		}
		pos += n
	}

	for _, nb := range r.notBefore {
		if strings.HasPrefix(text[pos:], nb) {
			return 0, false
		}
	}

	return pos, true
}

// excludedByPrecedingWord walks back over the whitespace before offset i and
// checks whether the identifier ending there is one of the notAfter words.
func (r keywordRule) excludedByPrecedingWord(text string, i int) bool {
	if len(r.notAfter) == 0 {
		return false
	}

	end := i
	for end > 0 && isSpace(text[end-1]) {
		end--
	}
	if end == i {
		// No whitespace between the preceding character and the keyword, so
		// there is no preceding word to exclude on.
		return false
	}

	start := end
	for start > 0 && isIdentChar(text[start-1]) {
		start--
	}

	word := text[start:end]
	for _, na := range r.notAfter {
		if word == na {
			return true
		}
	}
	return false
}

func leadingWhitespace(s string) int {
	n := 0
	for n < len(s) && isSpace(s[n]) {
		n++
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isIdentChar(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
