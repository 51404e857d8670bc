package blocktool

import (
	"strings"

	"golang.org/x/net/html"
)

// Rule declares which tags survive the host's scrub of one output field.
// An empty allowed set strips every tag, keeping only text.
type Rule struct {
	AllowedTags []string `json:"allowedTags,omitempty"`
}

func (r Rule) allows(tag string) bool {
	for _, allowed := range r.AllowedTags {
		if strings.EqualFold(allowed, tag) {
			return true
		}
	}
	return false
}

// Policy maps each output field name to its sanitize rule.
type Policy map[string]Rule

// Scrub applies a policy to a payload's fields and returns the scrubbed
// field map. Fields without a rule pass through unchanged.
func Scrub(policy Policy, data Data) map[string]string {
	fields := data.Fields()
	scrubbed := make(map[string]string, len(fields))
	for name, value := range fields {
		rule, ok := policy[name]
		if !ok {
			scrubbed[name] = value
			continue
		}
		scrubbed[name] = scrubHTML(value, rule)
	}
	return scrubbed
}

// StripTags removes all markup from an HTML fragment, keeping text content
// with entities decoded. Malformed markup degrades to whatever text the
// tokenizer can recover; StripTags never fails.
func StripTags(fragment string) string {
	return scrubHTML(fragment, Rule{})
}

// scrubHTML re-emits a fragment keeping only tags the rule allows. Void
// and unknown constructs (comments, doctypes) are dropped.
func scrubHTML(fragment string, rule Rule) string {
	if fragment == "" {
		return ""
	}
	if !strings.ContainsAny(fragment, "<&") {
		return fragment
	}

	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	stripAll := len(rule.AllowedTags) == 0
	var sb strings.Builder

	for {
		tokenType := tokenizer.Next()
		switch tokenType {
		case html.ErrorToken:
			// io.EOF or malformed input; either way, emit what we have.
			return sb.String()
		case html.TextToken:
			if stripAll {
				// Plain-text result: entities decoded.
				sb.WriteString(string(tokenizer.Text()))
			} else {
				// Fragment stays HTML: keep the original escaping.
				sb.Write(tokenizer.Raw())
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if rule.allows(string(name)) {
				sb.Write(tokenizer.Raw())
			}
		}
	}
}
