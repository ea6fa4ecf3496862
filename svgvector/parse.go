package svgvector

import (
	"bytes"
	"encoding/xml"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// Element is a node of a parsed SVG document. Tag and attribute names
// have their namespace stripped, so `{http://www.w3.org/2000/svg}path`
// is seen as `path`.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []*Element
}

// Attr returns the value of the attribute `name`, and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// AttrOr returns the value of the attribute `name`, or `def` if the
// attribute is missing.
func (e *Element) AttrOr(name, def string) string {
	if v, ok := e.Attrs[name]; ok {
		return v
	}
	return def
}

// Walk calls fn on e and all its descendants, depth first, parents
// before children, in document order. It stops at the first error.
func (e *Element) Walk(fn func(*Element) error) error {
	if err := fn(e); err != nil {
		return err
	}
	for _, child := range e.Children {
		if err := child.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// attribute values are whitespace normalized, as an XML processor does
var attrSpaces = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func newElement(se xml.StartElement) *Element {
	el := &Element{Tag: se.Name.Local, Attrs: make(map[string]string, len(se.Attr))}
	for _, attr := range se.Attr {
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue // namespace declarations are not attributes
		}
		el.Attrs[attrKey(attr.Name)] = attrSpaces.Replace(attr.Value)
	}
	return el
}

// attrKey keeps namespaced attributes apart from plain ones,
// as `{space}local`.
func attrKey(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

// entityDecl matches the general entities of a DTD internal subset.
var entityDecl = regexp.MustCompile(`<!ENTITY\s+([^\s%"']+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

// readEntities adds the entities declared in a DOCTYPE directive to m.
func readEntities(dir xml.Directive, m map[string]string) {
	if !bytes.HasPrefix(bytes.TrimSpace(dir), []byte("DOCTYPE")) {
		return
	}
	for _, match := range entityDecl.FindAllSubmatch(dir, -1) {
		name := string(match[1])
		if _, ok := m[name]; ok {
			continue // the first declaration is binding
		}
		m[name] = string(match[2]) + string(match[3])
	}
}

// Parse reads a whole XML document from stream and returns its root element.
// The encoding declared by the document is honored.
// Any well-formedness problem is reported as a *ParseError.
func Parse(stream io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Entity = map[string]string{}

	var (
		root  *Element
		stack []*Element
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, &ParseError{Err: err}
		}
		switch se := t.(type) {
		case xml.StartElement:
			el := newElement(se)
			if len(stack) == 0 {
				if root != nil {
					return nil, &ParseError{Err: errors.Errorf("junk after document element: <%s>", se.Name.Local)}
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.Directive:
			readEntities(se, decoder.Entity)
		case xml.CharData:
			if len(stack) == 0 && len(strings.TrimSpace(string(se))) != 0 {
				return nil, &ParseError{Err: errors.New("text outside of the document element")}
			}
		}
	}
	if root == nil {
		return nil, &ParseError{Err: errors.New("no element found")}
	}
	if len(stack) != 0 {
		return nil, &ParseError{Err: errors.Errorf("unclosed element <%s>", stack[len(stack)-1].Tag)}
	}
	return root, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}
