package figsvg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"golang.org/x/net/html/charset"
)

// ErrorMode controls how the document reader reacts to elements it
// does not handle.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unhandled elements.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips unhandled elements and logs a warning.
	WarnErrorMode
	// StrictErrorMode aborts parsing on the first unhandled element.
	StrictErrorMode
)

// ReadDocumentStream parses a serialized figure document back into a
// canvas, restoring size, margin and the ordered shape list.
// Only the shapes emitted by SvgCanvas are understood; errMode decides
// what happens to anything else found in the document.
func ReadDocumentStream(stream io.Reader, errMode ErrorMode) (*SvgCanvas, error) {
	canvas := &SvgCanvas{}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenRoot := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenRoot {
					return nil, errors.New("figsvg: invalid figure document")
				}
				break
			}
			return nil, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "svg":
			seenRoot = true
			if err := canvas.readRootAttrs(se.Attr); err != nil {
				return nil, err
			}
		case "rect":
			var r Rect
			if err := decoder.DecodeElement(&r, &se); err != nil {
				return nil, fmt.Errorf("figsvg: decoding rect: %w", err)
			}
			r.XMLName = xml.Name{} // normalize, so read shapes compare equal to emitted ones
			canvas.shapes = append(canvas.shapes, r)
		case "line":
			var l Line
			if err := decoder.DecodeElement(&l, &se); err != nil {
				return nil, fmt.Errorf("figsvg: decoding line: %w", err)
			}
			l.XMLName = xml.Name{}
			canvas.shapes = append(canvas.shapes, l)
		case "text":
			var txt Text
			if err := decoder.DecodeElement(&txt, &se); err != nil {
				return nil, fmt.Errorf("figsvg: decoding text: %w", err)
			}
			txt.XMLName = xml.Name{}
			canvas.shapes = append(canvas.shapes, txt)
		default:
			errStr := "figsvg: cannot process element " + se.Name.Local
			if errMode == StrictErrorMode {
				return nil, errors.New(errStr)
			} else if errMode == WarnErrorMode {
				log.Println(errStr)
			}
			if err := decoder.Skip(); err != nil {
				return nil, err
			}
		}
	}
	return canvas, nil
}

// ReadDocument parses the serialized figure document in the named file.
func ReadDocument(path string, errMode ErrorMode) (*SvgCanvas, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadDocumentStream(fin, errMode)
}

func (c *SvgCanvas) readRootAttrs(attrs []xml.Attr) error {
	for _, attr := range attrs {
		var dst *int
		switch attr.Name.Local {
		case "width":
			dst = &c.Width
		case "height":
			dst = &c.Height
		case "data-margin":
			dst = &c.Margin
		default:
			continue
		}
		v, err := strconv.Atoi(attr.Value)
		if err != nil {
			return fmt.Errorf("figsvg: invalid %s attribute %q", attr.Name.Local, attr.Value)
		}
		*dst = v
	}
	return nil
}
