// Package extract pulls tag-delimited spans out of model-generated text.
//
// Models in this project are prompted to wrap structured answers in paired
// markup tags, for example <book>Treasure Island</book>. The helpers here
// locate those spans without requiring the surrounding text to be
// well-formed markup.
package extract

import "regexp"

// tagPattern matches one <tag>...</tag> pair and captures the enclosed
// text. Tag names match case-insensitively, opening tags may carry
// attributes, and captures span newlines.
func tagPattern(tag string) *regexp.Regexp {
	name := regexp.QuoteMeta(tag)
	return regexp.MustCompile(`(?is)<` + name + `(?:\s[^>]*)?>(.*?)</` + name + `\s*>`)
}

// ByTag returns the content of the last <tag>...</tag> pair in text. The
// boolean reports whether any pair was found. When the tag occurs more
// than once, the last occurrence wins.
func ByTag(text, tag string) (string, bool) {
	matches := tagPattern(tag).FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return "", false
	}
	return matches[len(matches)-1][1], true
}

// AllByTag returns the content of every <tag>...</tag> pair in text, in
// document order. It returns nil when the tag is absent.
func AllByTag(text, tag string) []string {
	matches := tagPattern(tag).FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	contents := make([]string, 0, len(matches))
	for _, match := range matches {
		contents = append(contents, match[1])
	}
	return contents
}
