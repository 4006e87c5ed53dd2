// Package view holds the storefront widgets. Widgets are stateless
// from the core's perspective: every Render receives a full snapshot
// and returns a displayable Node; user intent leaves a widget only as
// an event on the bus (or through a caller-supplied action callback),
// never as a direct call into the state.
package view

import "strings"

// Node is a minimal displayable element tree, the render target the
// widgets produce in place of a browser DOM node. Interactive nodes
// carry click and input callbacks so a headless harness can drive the
// same intents a user would.
type Node struct {
	Tag      string
	Text     string
	Class    string
	Disabled bool
	Kids     []*Node

	onClick func()
	onInput func(value string)
}

// El builds an element node.
func El(tag, class string, kids ...*Node) *Node {
	return &Node{Tag: tag, Class: class, Kids: kids}
}

// TextEl builds an element node with text content.
func TextEl(tag, class, text string) *Node {
	return &Node{Tag: tag, Class: class, Text: text}
}

// OnClick attaches a click callback and returns the node.
func (n *Node) OnClick(fn func()) *Node {
	n.onClick = fn
	return n
}

// OnInput attaches an input callback and returns the node.
func (n *Node) OnInput(fn func(string)) *Node {
	n.onInput = fn
	return n
}

// Click fires the node's click callback. Clicking a disabled or inert
// node does nothing.
func (n *Node) Click() {
	if n == nil || n.Disabled || n.onClick == nil {
		return
	}
	n.onClick()
}

// Input fires the node's input callback with the typed value.
func (n *Node) Input(value string) {
	if n == nil || n.onInput == nil {
		return
	}
	n.onInput(value)
}

// Find returns the first node in the tree with the given class.
func (n *Node) Find(class string) *Node {
	if n == nil {
		return nil
	}
	if n.Class == class {
		return n
	}
	for _, k := range n.Kids {
		if found := k.Find(class); found != nil {
			return found
		}
	}
	return nil
}

// String renders the tree as indented markup for logs and the demo
// frontend.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	sb.WriteString("<" + n.Tag)
	if n.Class != "" {
		sb.WriteString(` class="` + n.Class + `"`)
	}
	if n.Disabled {
		sb.WriteString(" disabled")
	}
	sb.WriteString(">")
	if n.Text != "" {
		sb.WriteString(n.Text)
	}
	if len(n.Kids) > 0 {
		sb.WriteString("\n")
		for _, k := range n.Kids {
			k.write(sb, depth+1)
			sb.WriteString("\n")
		}
		sb.WriteString(indent)
	}
	sb.WriteString("</" + n.Tag + ">")
}
