// Package htmlmask formats BRL amounts inside server-rendered HTML fragments.
//
// Elements marked data-brl-text or data-money-text get their text replaced by
// the display form. Inputs marked data-money="brl" get a numeric keyboard hint,
// a formatted initial value, the canonical value in data-raw and the strategy
// in data-money-mode. Rewriting an already rewritten fragment changes nothing.
package htmlmask

import (
	"fmt"
	"strings"

	"github.com/SscSPs/abase_form_kit/internal/utils/brl"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	attrBRLText     = "data-brl-text"
	attrMoneyText   = "data-money-text"
	attrMoney       = "data-money"
	attrMode        = "data-money-mode"
	attrRaw         = "data-raw"
	attrInitialized = "data-money-initialized"

	formattedClass = "money-formatted"
)

// Rewriter applies the money display rules to HTML fragments.
type Rewriter struct {
	defaultStrategy brl.Strategy
}

// NewRewriter returns a Rewriter that uses defaultStrategy for inputs without
// a valid data-money-mode.
func NewRewriter(defaultStrategy brl.Strategy) *Rewriter {
	return &Rewriter{defaultStrategy: defaultStrategy}
}

// Rewrite formats one fragment on its own.
func (rw *Rewriter) Rewrite(fragment string) (string, error) {
	return rw.RewriteWith(NewRegistry(), fragment)
}

// RewriteWith formats a fragment, skipping inputs whose id reg already holds.
func (rw *Rewriter) RewriteWith(reg *Registry, fragment string) (string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), fragmentContext(fragment))
	if err != nil {
		return "", fmt.Errorf("failed to parse html fragment: %w", err)
	}

	var b strings.Builder
	for _, n := range nodes {
		rw.walk(reg, n)
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("failed to render html fragment: %w", err)
		}
	}
	return b.String(), nil
}

// fragmentContext picks the parent element a fragment is parsed under.
// Table rows, cells and options are dropped by the parser outside their
// own parents, so the first start tag decides.
func fragmentContext(fragment string) *html.Node {
	parent := atom.Body
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		name, _ := z.TagName()
		switch atom.Lookup(name) {
		case atom.Tr:
			parent = atom.Tbody
		case atom.Td, atom.Th:
			parent = atom.Tr
		case atom.Tbody, atom.Thead, atom.Tfoot, atom.Caption, atom.Colgroup:
			parent = atom.Table
		case atom.Col:
			parent = atom.Colgroup
		case atom.Option, atom.Optgroup:
			parent = atom.Select
		}
		break
	}
	return &html.Node{Type: html.ElementNode, Data: parent.String(), DataAtom: parent}
}

func (rw *Rewriter) walk(reg *Registry, n *html.Node) {
	if n.Type == html.ElementNode {
		switch {
		case n.DataAtom == atom.Input && attr(n, attrMoney) == "brl":
			rw.bindInput(reg, n)
		case hasAttr(n, attrBRLText) || hasAttr(n, attrMoneyText):
			formatText(n)
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rw.walk(reg, c)
	}
}

func (rw *Rewriter) bindInput(reg *Registry, n *html.Node) {
	if attr(n, attrInitialized) == "true" || !reg.Bind(attr(n, "id")) {
		return
	}
	strategy, err := brl.ParseStrategy(attr(n, attrMode))
	if err != nil {
		strategy = rw.defaultStrategy
	}

	inputMode := "decimal"
	if strategy == brl.StrategyDigitAccumulation {
		inputMode = "numeric"
	}
	setAttr(n, "inputmode", inputMode)
	setAttr(n, attrMode, strategy.String())

	if value := attr(n, "value"); brl.HasDigit(value) {
		f := brl.NewField(strategy, value)
		setAttr(n, "value", f.Value())
		setAttr(n, attrRaw, f.Raw())
	}
	setAttr(n, attrInitialized, "true")
}

// formatText replaces the children of n with the display form of its text.
// An element without digits in its text takes the amount from its
// data-money-text or data-brl-text value.
func formatText(n *html.Node) {
	var text strings.Builder
	collectText(n, &text)
	amount := text.String()
	if !brl.HasDigit(amount) {
		for _, key := range []string{attrMoneyText, attrBRLText} {
			if v := attr(n, key); brl.HasDigit(v) {
				amount = v
				break
			}
		}
	}

	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: brl.FormatDisplay(brl.Parse(amount))})

	class := attr(n, "class")
	for _, c := range strings.Fields(class) {
		if c == formattedClass {
			return
		}
	}
	setAttr(n, "class", strings.TrimSpace(class+" "+formattedClass))
}

func collectText(n *html.Node, b *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		collectText(c, b)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
