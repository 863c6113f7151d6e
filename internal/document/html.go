package document

import (
	"bytes"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"golang.org/x/net/html"
)

var excessiveLinesRe = regexp.MustCompile(`\n{3,}`)

// FromHTML converts an HTML draft to markdown. Only the <body> is converted.
// When the body has no H1 the document <title> is used as the title line.
func FromHTML(content string) (string, error) {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", err
	}
	title := findTitle(root)

	body := content
	if n := findElement(root, "body"); n != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, n); err == nil {
			body = buf.String()
		}
	}

	conv := md.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())
	out, err := conv.ConvertString(body)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(excessiveLinesRe.ReplaceAllString(out, "\n\n"))

	if title != "" && !hasTitleLine(out) {
		out = titlePrefix + title + "\n\n" + out
	}
	return out + "\n", nil
}

func findTitle(n *html.Node) string {
	t := findElement(n, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return strings.TrimSpace(t.FirstChild.Data)
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func hasTitleLine(markdown string) bool {
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(line, titlePrefix) {
			return true
		}
	}
	return false
}
