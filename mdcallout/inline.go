package mdcallout

import (
	"fmt"
	stdhtml "html"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	xhtml "golang.org/x/net/html"
)

// htmlToMarkdown converts the inline HTML a block's editable region holds
// (b/i/code/a/br and their synonyms) into markdown. Unknown tags are
// dropped, their text kept.
func htmlToMarkdown(fragment string) string {
	if fragment == "" {
		return ""
	}
	if !strings.ContainsAny(fragment, "<&") {
		return fragment
	}

	tokenizer := xhtml.NewTokenizer(strings.NewReader(fragment))
	var sb strings.Builder
	var linkHrefs []string

	for {
		switch tokenizer.Next() {
		case xhtml.ErrorToken:
			return sb.String()

		case xhtml.TextToken:
			sb.WriteString(string(tokenizer.Text()))

		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "b", "strong":
				sb.WriteString("**")
			case "i", "em":
				sb.WriteString("*")
			case "code":
				sb.WriteString("`")
			case "s", "del", "strike":
				sb.WriteString("~~")
			case "a":
				href := ""
				for _, attr := range token.Attr {
					if attr.Key == "href" {
						href = attr.Val
					}
				}
				linkHrefs = append(linkHrefs, href)
				sb.WriteString("[")
			case "br":
				sb.WriteString("\\\n")
			}

		case xhtml.EndTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "b", "strong":
				sb.WriteString("**")
			case "i", "em":
				sb.WriteString("*")
			case "code":
				sb.WriteString("`")
			case "s", "del", "strike":
				sb.WriteString("~~")
			case "a":
				href := ""
				if n := len(linkHrefs); n > 0 {
					href = linkHrefs[n-1]
					linkHrefs = linkHrefs[:n-1]
				}
				sb.WriteString("](" + href + ")")
			}
		}
	}
}

// inlineHTML renders a goldmark inline sequence back into the HTML form
// editable regions store.
func (s *importState) inlineHTML(parent ast.Node) string {
	var sb strings.Builder
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		s.writeInlineHTML(&sb, child)
	}
	return strings.TrimSpace(sb.String())
}

// inlineHTMLFrom renders the inline sequence starting at node, following
// siblings.
func (s *importState) inlineHTMLFrom(node ast.Node) string {
	var sb strings.Builder
	for ; node != nil; node = node.NextSibling() {
		s.writeInlineHTML(&sb, node)
	}
	return strings.TrimSpace(sb.String())
}

func (s *importState) writeInlineHTML(sb *strings.Builder, node ast.Node) {
	switch typed := node.(type) {
	case *ast.Text:
		sb.WriteString(stdhtml.EscapeString(string(typed.Value(s.source))))
		if typed.HardLineBreak() {
			sb.WriteString("<br>")
		} else if typed.SoftLineBreak() {
			sb.WriteString(" ")
		}

	case *ast.String:
		sb.WriteString(stdhtml.EscapeString(string(typed.Value)))

	case *ast.Emphasis:
		tag := "i"
		if typed.Level >= 2 {
			tag = "b"
		}
		sb.WriteString("<" + tag + ">")
		for child := typed.FirstChild(); child != nil; child = child.NextSibling() {
			s.writeInlineHTML(sb, child)
		}
		sb.WriteString("</" + tag + ">")

	case *extast.Strikethrough:
		sb.WriteString("<s>")
		for child := typed.FirstChild(); child != nil; child = child.NextSibling() {
			s.writeInlineHTML(sb, child)
		}
		sb.WriteString("</s>")

	case *ast.CodeSpan:
		sb.WriteString("<code>")
		for child := typed.FirstChild(); child != nil; child = child.NextSibling() {
			if text, ok := child.(*ast.Text); ok {
				sb.WriteString(stdhtml.EscapeString(string(text.Value(s.source))))
			}
		}
		sb.WriteString("</code>")

	case *ast.Link:
		fmt.Fprintf(sb, `<a href="%s">`, stdhtml.EscapeString(string(typed.Destination)))
		for child := typed.FirstChild(); child != nil; child = child.NextSibling() {
			s.writeInlineHTML(sb, child)
		}
		sb.WriteString("</a>")

	case *ast.AutoLink:
		url := stdhtml.EscapeString(string(typed.URL(s.source)))
		fmt.Fprintf(sb, `<a href="%s">%s</a>`, url, url)

	default:
		// Unknown inline constructs keep their children's text.
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			s.writeInlineHTML(sb, child)
		}
	}
}

// plainText collects the unformatted text of an inline subtree.
func (s *importState) plainText(node ast.Node) string {
	var sb strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		if text, ok := n.(*ast.Text); ok {
			sb.Write(text.Value(s.source))
		}
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			walk(child)
		}
	}
	walk(node)
	return sb.String()
}
