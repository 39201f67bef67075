package render

import (
	"slices"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/taigrr/scriptindex/internal/types"
)

var markdown = goldmark.New()

// Unlinked returns the files whose listing line a markdown renderer would
// not turn into a link to the file's folder, such as folders with spaces.
func Unlinked(files []types.MatchedFile) []types.MatchedFile {
	var broken []types.MatchedFile
	for _, m := range files {
		if !slices.Contains(ListLinks([]byte(Line(m))), m.Folder) {
			broken = append(broken, m)
		}
	}
	return broken
}

// ListLinks returns the destination of every link found inside a list item
// of the markdown source, in document order.
func ListLinks(source []byte) []string {
	doc := markdown.Parser().Parse(text.NewReader(source))

	var dests []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}

		for p := n.Parent(); p != nil; p = p.Parent() {
			if p.Kind() == ast.KindListItem {
				dests = append(dests, string(link.Destination))
				break
			}
		}
		return ast.WalkSkipChildren, nil
	})

	return dests
}
