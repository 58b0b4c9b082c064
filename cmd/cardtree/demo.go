package main

import (
	"github.com/inkwell-run/cardtree/pkg/entity"
	"github.com/inkwell-run/cardtree/pkg/node"
)

// demoTree builds a small card subtree exercising a selection of block and
// inline kinds (heading, paragraph, bold, italic, block quote, ordered list,
// code block, thematic break), used by the demo, store and metrics-serve
// commands.
func demoTree() (*entity.MemStore, entity.ID) {
	root := entity.Card(0,
		entity.Spec{Kind: node.Heading, Data: node.HeadingData{Level: 1}, Children: []entity.Spec{
			entity.Text("cardtree"),
		}},
		entity.Spec{Kind: node.Paragraph, Children: []entity.Spec{
			entity.Text("Welcome to "),
			{Kind: node.Important, Children: []entity.Spec{entity.Text("cardtree")}},
			entity.Text(", the "),
			{Kind: node.Emphasize, Children: []entity.Spec{entity.Text("best")}},
			entity.Text(" framework!"),
		}},
		entity.Spec{Kind: node.BlockQuote, Children: []entity.Spec{
			entity.Spec{Kind: node.Heading, Data: node.HeadingData{Level: 2}, Children: []entity.Spec{
				entity.Text("Warning"),
			}},
		}},
		entity.Spec{
			Kind: node.ListMarker,
			Data: node.ListMarkerData{Ordered: true, Start: 1, HasStart: true},
			Children: []entity.Spec{
				{Kind: node.ListItem, Children: []entity.Spec{entity.Text("first")}},
				{Kind: node.ListItem, Children: []entity.Spec{entity.Text("second")}},
			},
		},
		entity.Spec{
			Kind: node.CodeBlock,
			Data: node.CodeBlockData{Language: "go", HasLang: true},
			Children: []entity.Spec{
				entity.Text("func main() {}\n"),
			},
		},
		entity.Spec{Kind: node.ThematicBreak},
	)
	return entity.Build(root)
}
