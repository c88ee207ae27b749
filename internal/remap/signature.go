package remap

import "strings"

// Signature maps every class name embedded in a generic signature. When
// typeSig is true, sig is a field or local variable type signature; otherwise
// it is a class or method signature. Malformed input is returned unchanged.
func (r remapper) Signature(sig string, typeSig bool) string {
	if sig == "" {
		return sig
	}

	p := &sigParser{r: r, s: sig}
	if typeSig {
		p.refType()
	} else {
		p.declaration()
	}

	if p.err != nil || p.pos != len(p.s) {
		return sig
	}

	return p.out.String()
}

// sigParser is a recursive-descent rewriter over the signature grammar.
// Every production copies its input to out, mapping class type names.
type sigParser struct {
	r   remapper
	s   string
	pos int
	out strings.Builder
	err error
}

func (p *sigParser) peek() byte {
	if p.pos >= len(p.s) {
		p.err = errMalformed
		return 0
	}

	return p.s[p.pos]
}

func (p *sigParser) copyByte() {
	if p.pos >= len(p.s) {
		p.err = errMalformed
		return
	}

	p.out.WriteByte(p.s[p.pos])
	p.pos++
}

func (p *sigParser) expect(c byte) {
	if p.peek() != c {
		p.err = errMalformed
		return
	}

	p.copyByte()
}

// declaration parses a class signature or a method signature.
func (p *sigParser) declaration() {
	if p.peek() == '<' {
		p.typeParameters()
	}

	if p.err != nil {
		return
	}

	if p.peek() == '(' {
		p.copyByte()

		for p.err == nil && p.peek() != ')' {
			p.javaType()
		}

		p.expect(')')
		p.javaType()

		for p.err == nil && p.pos < len(p.s) && p.s[p.pos] == '^' {
			p.copyByte()
			p.refType()
		}

		return
	}

	// superclass followed by superinterfaces
	for p.err == nil && p.pos < len(p.s) {
		p.refType()
	}
}

func (p *sigParser) typeParameters() {
	p.expect('<')

	for p.err == nil && p.peek() != '>' {
		end := strings.IndexByte(p.s[p.pos:], ':')
		if end <= 0 {
			p.err = errMalformed
			return
		}

		p.out.WriteString(p.s[p.pos : p.pos+end])
		p.pos += end

		// class bound (possibly empty) followed by interface bounds
		for p.err == nil && p.peek() == ':' {
			p.copyByte()

			switch p.peek() {
			case 'L', 'T', '[':
				p.refType()
			}
		}
	}

	p.expect('>')
}

func (p *sigParser) javaType() {
	switch p.peek() {
	case 'Z', 'C', 'B', 'S', 'I', 'F', 'J', 'D', 'V':
		p.copyByte()
	default:
		p.refType()
	}
}

func (p *sigParser) refType() {
	switch p.peek() {
	case 'L':
		p.classType()
	case 'T':
		end := strings.IndexByte(p.s[p.pos:], ';')
		if end < 2 {
			p.err = errMalformed
			return
		}

		p.out.WriteString(p.s[p.pos : p.pos+end+1])
		p.pos += end + 1
	case '[':
		p.copyByte()
		p.javaType()
	default:
		p.err = errMalformed
	}
}

// classType maps "Lpkg/Outer<args>.Inner<args>;". Inner class suffixes are
// mapped as Outer$Inner and written back relative to the mapped outer name.
func (p *sigParser) classType() {
	p.expect('L')

	className := p.ident()
	if p.err != nil {
		return
	}

	p.out.WriteString(p.r.m.MapType(className))

	for p.err == nil {
		switch p.peek() {
		case '<':
			p.typeArguments()
		case '.':
			p.copyByte()

			inner := p.ident()
			if p.err != nil {
				return
			}

			remappedOuter := p.r.m.MapType(className) + "$"
			className += "$" + inner
			remapped := p.r.m.MapType(className)

			idx := strings.LastIndexByte(remapped, '$') + 1
			if strings.HasPrefix(remapped, remappedOuter) {
				idx = len(remappedOuter)
			}

			p.out.WriteString(remapped[idx:])
		case ';':
			p.copyByte()
			return
		default:
			p.err = errMalformed
		}
	}
}

func (p *sigParser) typeArguments() {
	p.expect('<')

	for p.err == nil && p.peek() != '>' {
		switch p.peek() {
		case '*':
			p.copyByte()
		case '+', '-':
			p.copyByte()
			p.refType()
		default:
			p.refType()
		}
	}

	p.expect('>')
}

// ident reads up to the next '<', '.' or ';' without copying.
func (p *sigParser) ident() string {
	start := p.pos
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case '<', '.', ';':
			if p.pos == start {
				p.err = errMalformed
			}

			return p.s[start:p.pos]
		}

		p.pos++
	}

	p.err = errMalformed

	return ""
}
