package docast

// NodeKind classifies the type of a block-level AST node.
type NodeKind uint8

// Node kinds for block-level reStructuredText elements.
const (
	NodeTitle NodeKind = iota
	NodeParagraph
	NodeCodeBlock
	NodeList
	NodeTable
	NodeDirective
	NodeLinkTarget
	NodeBlockQuote
	NodeDefinitionList
)

// String returns the lowercase name of the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeTitle:
		return "title"
	case NodeParagraph:
		return "paragraph"
	case NodeCodeBlock:
		return "codeblock"
	case NodeList:
		return "list"
	case NodeTable:
		return "table"
	case NodeDirective:
		return "directive"
	case NodeLinkTarget:
		return "linktarget"
	case NodeBlockQuote:
		return "blockquote"
	case NodeDefinitionList:
		return "definitionlist"
	default:
		return "unknown"
	}
}

// Node represents a single block-level node in a parsed document.
// Nodes appear in the AST in source line order. Only the fields relevant
// to a node's Kind are populated.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Line is the 1-based source line the node starts on.
	Line int

	// Title fields.
	Text  string
	Level int

	// Raw content for Paragraph, CodeBlock and BlockQuote nodes.
	Content  string
	Language string

	// List fields.
	Items   []string
	Ordered bool

	// Table fields.
	Headers []string
	Rows    [][]string

	// Directive and LinkTarget fields.
	Name    string
	Args    []string
	Options map[string]string

	// DefinitionList items.
	Defs []DefinitionItem
}

// DefinitionItem is a single term/definition pair in a definition list.
type DefinitionItem struct {
	Term       string
	Definition string
}

// NewTitle constructs a Title node.
func NewTitle(text string, level, line int) Node {
	return Node{Kind: NodeTitle, Text: text, Level: level, Line: line}
}

// NewParagraph constructs a Paragraph node.
func NewParagraph(content string, line int) Node {
	return Node{Kind: NodeParagraph, Content: content, Line: line}
}

// NewCodeBlock constructs a CodeBlock node. Language may be empty for
// unlabeled literal blocks.
func NewCodeBlock(language, content string, line int) Node {
	return Node{Kind: NodeCodeBlock, Language: language, Content: content, Line: line}
}

// NewLinkTarget constructs a LinkTarget node for `.. _name:` targets.
func NewLinkTarget(name string, line int) Node {
	return Node{Kind: NodeLinkTarget, Name: name, Line: line}
}

// NewBlockQuote constructs a BlockQuote node.
func NewBlockQuote(content string, line int) Node {
	return Node{Kind: NodeBlockQuote, Content: content, Line: line}
}
