package josa

import (
	"fmt"
	"strconv"
	"strings"
)

// Format interpolates template with args, resolving particle placeholders.
//
// A placeholder is {N} or {N:tag}, where N is a zero-based argument index
// and tag is any tag Resolve accepts. {N:tag} writes the argument followed
// by the resolved suffix; {N:-tag} writes the suffix alone. Literal braces
// are escaped as {{ and }}.
//
//	Format("{0:은} {1:로} 불린다.", "나오", "검은사신")
//	// "나오는 검은사신으로 불린다."
func (r *Resolver) Format(template string, args ...any) (string, error) {
	var b strings.Builder
	for i := 0; i < len(template); {
		switch c := template[i]; c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("josa: unclosed placeholder at offset %d", i)
			}
			end += i
			if err := r.writePlaceholder(&b, template[i+1:end], args); err != nil {
				return "", err
			}
			i = end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("josa: unmatched '}' at offset %d", i)
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

func (r *Resolver) writePlaceholder(b *strings.Builder, spec string, args []any) error {
	indexPart, tag, _ := strings.Cut(spec, ":")
	index, err := strconv.Atoi(indexPart)
	if err != nil {
		return fmt.Errorf("josa: bad placeholder index %q", indexPart)
	}
	if index < 0 || index >= len(args) {
		return fmt.Errorf("josa: placeholder index %d out of range (%d args)", index, len(args))
	}
	word := fmt.Sprint(args[index])
	if tag == "" {
		b.WriteString(word)
		return nil
	}
	suffixOnly := strings.HasPrefix(tag, "-")
	if suffixOnly {
		tag = tag[1:]
	}
	suffix, err := r.Resolve(word, tag)
	if err != nil {
		return err
	}
	if !suffixOnly {
		b.WriteString(word)
	}
	b.WriteString(suffix)
	return nil
}

// Format interpolates template with the Default resolver.
func Format(template string, args ...any) (string, error) {
	return Default.Format(template, args...)
}
