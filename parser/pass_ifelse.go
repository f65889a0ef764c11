package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/span"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/zerr"
)

// passIfElse is pass 2 (spec.md §4.2): recognise
// `if cond { … } [elif cond { … }]* [else { … }]?` and fold it into one
// If node. By this point pass 1 has already folded every `{ … }` into an
// *ast.Block item, so a branch's extent is simply "from here to the next
// Block item".
func passIfElse(buf Buffer) (Buffer, *zerr.Error) {
	for i := 0; i < len(buf); i++ {
		it := buf[i]
		if !it.IsToken() || !it.Tok.IsKeyword(token.KwIf) {
			continue
		}
		start := i
		cond, blockIdx, err := consumeCondAndBlock(buf, i+1)
		if err != nil {
			return nil, err
		}
		block := buf[blockIdx].Node.(*ast.Block)
		branches := []ast.IfBranch{{Cond: cond, Body: block}}
		end := blockIdx
		pos := blockIdx + 1

		for pos < len(buf) && buf[pos].IsToken() && buf[pos].Tok.IsKeyword(token.KwElif) {
			c, bi, err := consumeCondAndBlock(buf, pos+1)
			if err != nil {
				return nil, err
			}
			branches = append(branches, ast.IfBranch{Cond: c, Body: buf[bi].Node.(*ast.Block)})
			end = bi
			pos = bi + 1
		}

		if pos < len(buf) && buf[pos].IsToken() && buf[pos].Tok.IsKeyword(token.KwElse) {
			pos++
			if pos >= len(buf) || buf[pos].IsToken() {
				sp := buf[pos-1].Span()
				return nil, zerr.P004Malformed("else clause", &sp)
			}
			elseBlock, ok := buf[pos].Node.(*ast.Block)
			if !ok {
				sp := buf[pos].Span()
				return nil, zerr.P004Malformed("else clause", &sp)
			}
			branches = append(branches, ast.IfBranch{Cond: nil, Body: elseBlock})
			end = pos
		}

		sp := mergeSpans(buf[start], buf[end])
		ifNode := &ast.If{Base: ast.Base{Span: sp}, Branches: branches}
		var nb Buffer
		nb, i = buf.splice(start, end+1, nodeItem(ifNode))
		buf = nb
	}
	return buf, nil
}

// consumeCondAndBlock scans forward from pos for the first already-folded
// *ast.Block item, parses everything before it as the condition
// expression, and returns (condition, index-of-block).
func consumeCondAndBlock(buf Buffer, pos int) (ast.Node, int, *zerr.Error) {
	blockIdx := -1
	for j := pos; j < len(buf); j++ {
		if b, ok := buf[j].Node.(*ast.Block); ok {
			_ = b
			blockIdx = j
			break
		}
	}
	if blockIdx == -1 {
		var sp *span.Span
		if pos > 0 && pos-1 < len(buf) {
			sp = optionalSpan(buf[pos-1])
		}
		return nil, 0, zerr.P004Malformed("if/elif missing body block", sp)
	}
	cond, err := parseSegment(buf[pos:blockIdx])
	if err != nil {
		return nil, 0, err
	}
	return cond, blockIdx, nil
}

func optionalSpan(it Item) *span.Span {
	s := it.Span()
	return &s
}
