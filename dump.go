package csel

import (
	tp "github.com/xlab/treeprint"
)

// Dump renders the binary tree structure of a selector for debugging.
// Combined selectors become branches labelled with their combinator token,
// compound selectors become leaves labelled with their textual form.
func Dump(sel Selectable) string {
	p := tp.New()
	dump(p, sel)
	return p.String()
}

func dump(p tp.Tree, sel Selectable) {
	switch s := sel.(type) {
	case *CombinedSelector:
		branch := p.AddBranch("'" + string(s.combinator) + "'")
		dump(branch, s.left)
		dump(branch, s.right)
	case *CompoundSelector:
		p.AddNode(s.Stringify())
	default:
		p.AddNode("<unknown selector>")
	}
}
