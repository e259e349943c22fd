package gdl

import (
	"strconv"
	"strings"
)

// Encode serializes a document back to canonical GDL text.
// Sibling-block order and property order are preserved; formatting is
// normalized (one property per line, tab indentation, quoted strings).
func Encode(doc *Document) string {
	var sb strings.Builder
	for i, b := range doc.Blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		encodeBlock(&sb, b, 0)
	}
	return sb.String()
}

func encodeBlock(sb *strings.Builder, b *Block, depth int) {
	indent := strings.Repeat("\t", depth)
	sb.WriteString(indent)
	sb.WriteString(b.Keyword)
	if b.Name != "" {
		sb.WriteString(" " + strconv.Quote(b.Name))
	}
	sb.WriteString(" {\n")
	for _, p := range b.Props {
		sb.WriteString(indent + "\t" + p.Key + ": ")
		encodeValue(sb, p.Val, depth+1)
		sb.WriteByte('\n')
	}
	for _, c := range b.Blocks {
		encodeBlock(sb, c, depth+1)
	}
	sb.WriteString(indent + "}\n")
}

func encodeValue(sb *strings.Builder, v Value, depth int) {
	switch v.Kind {
	case KindNumber:
		sb.WriteString(formatNumber(v.Num))
	case KindString:
		sb.WriteString(strconv.Quote(v.Str))
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case KindArray:
		sb.WriteByte('[')
		for i, el := range v.Arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			encodeValue(sb, el, depth)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteString("{ ")
		for i, p := range v.Obj {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Key + ": ")
			encodeValue(sb, p.Val, depth)
		}
		sb.WriteString(" }")
	}
}

func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}
