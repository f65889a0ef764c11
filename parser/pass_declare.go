package parser

import (
	"github.com/zyxt-lang/zyxt/ast"
	"github.com/zyxt-lang/zyxt/token"
	"github.com/zyxt-lang/zyxt/zerr"
)

// passDeclare is pass 9 (spec.md §4.2): `[flag*] name [: Type] := expr` →
// Declare. By this point pass 6 has already folded `name` into an
// *ast.Ident, so this pass looks for an Ident immediately (modulo a
// leading run of flag tokens and an optional type annotation) followed by
// the declaration operator, and consumes the rest of the statement as the
// value expression.
func passDeclare(buf Buffer) (Buffer, *zerr.Error) {
	for i := 0; i < len(buf); i++ {
		ident, ok := buf[i].Node.(*ast.Ident)
		if !ok {
			continue
		}
		flagStart := i
		for flagStart > 0 && buf[flagStart-1].IsToken() && buf[flagStart-1].Tok.Kind == token.KindFlag {
			flagStart--
		}

		pos := i + 1
		var typeAnn ast.Node
		if pos < len(buf) && buf[pos].IsToken() && buf[pos].Tok.Value == ":" {
			declIdx := -1
			for j := pos + 1; j < len(buf); j++ {
				if buf[j].IsToken() && buf[j].Tok.Kind == token.KindDeclareOp {
					declIdx = j
					break
				}
			}
			if declIdx == -1 {
				continue
			}
			ta, err := parseSegment(buf[pos+1 : declIdx])
			if err != nil {
				return nil, err
			}
			typeAnn = ta
			pos = declIdx
		}

		if pos >= len(buf) || !buf[pos].IsToken() || buf[pos].Tok.Kind != token.KindDeclareOp {
			continue
		}
		declIdx := pos
		if declIdx+1 >= len(buf) {
			sp := buf[declIdx].Span()
			return nil, zerr.P004Malformed("declaration missing value", &sp)
		}
		rhs, err := parseSegment(buf[declIdx+1:])
		if err != nil {
			return nil, err
		}

		var flags []token.Flag
		for k := flagStart; k < i; k++ {
			f, _ := token.AsFlag(buf[k].Tok.Value)
			flags = append(flags, f)
		}

		sp := mergeSpans(buf[flagStart], buf[len(buf)-1])
		decl := &ast.Declare{
			Base: ast.Base{Span: sp}, Flags: flags, Name: ident.Name, TypeAnnotation: typeAnn, Value: rhs,
		}
		var nb Buffer
		nb, i = buf.splice(flagStart, len(buf), nodeItem(decl))
		buf = nb
	}
	return buf, nil
}
