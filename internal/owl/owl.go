package owl

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Decoder is a reference OWL/XML decoder. It is not a complete OWL/XML
// parser implementation; it recognises the handful of axiom-bearing
// elements needed to exercise the enumeration and explanation engine end
// to end (class/property assertions, subsumption, equivalence,
// sub-property chains, domain/range, and the three object-property
// characteristics this spec covers).
//
// Axioms returned by Unmarshal have their entities resolved against the
// ontology's declared base IRI.
type Decoder struct {
	xml  *xml.Decoder
	base string

	curr int
	buf  []Axiom
}

// NewDecoder returns a new Decoder that takes input from r. The base IRI
// is picked up from the first Ontology element encountered in the stream.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{xml: xml.NewDecoder(r)}
}

// Base returns the ontology base IRI collected from the XML stream so
// far. It is only guaranteed complete once Unmarshal has returned io.EOF.
func (dec *Decoder) Base() string { return dec.base }

// Unmarshal returns the next axiom from the input stream.
func (dec *Decoder) Unmarshal() (Axiom, error) {
	for len(dec.buf[dec.curr:]) == 0 {
		err := dec.fillBuffer()
		if err != nil {
			return Axiom{}, err
		}
	}
	a := dec.buf[dec.curr]
	dec.buf[dec.curr] = Axiom{}
	dec.curr++
	if len(dec.buf[dec.curr:]) == 0 {
		dec.curr = 0
		dec.buf = dec.buf[:0]
	}
	return a, nil
}

// entity resolves raw against the decoder's current base IRI.
func (dec *Decoder) entity(raw string) (Entity, error) {
	return NewEntity(raw, dec.base)
}

func (dec *Decoder) fillBuffer() (err error) {
	defer func() {
		r := recover()
		switch r := r.(type) {
		case nil:
			return
		case error:
			err = r
		default:
			panic(r)
		}
	}()

	tok, err := dec.xml.Token()
	if err != nil {
		return err
	}

	start, ok := tok.(xml.StartElement)
	if !ok {
		return nil
	}

	switch start.Name.Local {
	case "Ontology":
		// Only the start tag is read here; the axiom elements nested inside
		// are returned as later tokens and decoded one by one.
		for _, attr := range start.Attr {
			if attr.Name.Local == "ontologyIRI" && attr.Value != "" {
				dec.base = attr.Value
			}
		}

	case "ClassAssertion":
		var e classAssertionElem
		if err := dec.xml.DecodeElement(&e, &start); err != nil {
			return err
		}
		a, err := e.axiom(dec)
		if err != nil {
			return err
		}
		dec.buf = append(dec.buf, a)

	case "ObjectPropertyAssertion":
		var e objectPropertyAssertionElem
		if err := dec.xml.DecodeElement(&e, &start); err != nil {
			return err
		}
		a, err := e.axiom(dec)
		if err != nil {
			return err
		}
		dec.buf = append(dec.buf, a)

	case "DataPropertyAssertion":
		var e dataPropertyAssertionElem
		if err := dec.xml.DecodeElement(&e, &start); err != nil {
			return err
		}
		a, err := e.axiom(dec)
		if err != nil {
			return err
		}
		dec.buf = append(dec.buf, a)

	case "SubClassOf":
		var e subClassOfElem
		if err := dec.xml.DecodeElement(&e, &start); err != nil {
			return err
		}
		a, err := e.axiom(dec)
		if err != nil {
			return err
		}
		dec.buf = append(dec.buf, a)

	case "EquivalentClasses":
		var e equivalentClassesElem
		if err := dec.xml.DecodeElement(&e, &start); err != nil {
			return err
		}
		a, err := e.axiom(dec)
		if err != nil {
			return err
		}
		dec.buf = append(dec.buf, a)

	case "SubObjectPropertyOf":
		var e subObjectPropertyOfElem
		if err := dec.xml.DecodeElement(&e, &start); err != nil {
			return err
		}
		a, err := e.axiom(dec)
		if err != nil {
			return err
		}
		dec.buf = append(dec.buf, a)

	case "ObjectPropertyDomain":
		var e objectPropertyDomainElem
		if err := dec.xml.DecodeElement(&e, &start); err != nil {
			return err
		}
		a, err := e.axiom(dec)
		if err != nil {
			return err
		}
		dec.buf = append(dec.buf, a)

	case "ObjectPropertyRange":
		var e objectPropertyRangeElem
		if err := dec.xml.DecodeElement(&e, &start); err != nil {
			return err
		}
		a, err := e.axiom(dec)
		if err != nil {
			return err
		}
		dec.buf = append(dec.buf, a)

	case "TransitiveObjectProperty":
		var e transitiveObjectPropertyElem
		if err := dec.xml.DecodeElement(&e, &start); err != nil {
			return err
		}
		a, err := e.axiom(dec)
		if err != nil {
			return err
		}
		dec.buf = append(dec.buf, a)

	case "SymmetricObjectProperty":
		var e symmetricObjectPropertyElem
		if err := dec.xml.DecodeElement(&e, &start); err != nil {
			return err
		}
		a, err := e.axiom(dec)
		if err != nil {
			return err
		}
		dec.buf = append(dec.buf, a)

	case "FunctionalObjectProperty":
		var e functionalObjectPropertyElem
		if err := dec.xml.DecodeElement(&e, &start); err != nil {
			return err
		}
		a, err := e.axiom(dec)
		if err != nil {
			return err
		}
		dec.buf = append(dec.buf, a)

	case "InverseObjectProperties":
		var e inverseObjectPropertiesElem
		if err := dec.xml.DecodeElement(&e, &start); err != nil {
			return err
		}
		a, err := e.axiom(dec)
		if err != nil {
			return err
		}
		dec.buf = append(dec.buf, a)

	case "EquivalentObjectProperties":
		var e equivalentObjectPropertiesElem
		if err := dec.xml.DecodeElement(&e, &start); err != nil {
			return err
		}
		a, err := e.axiom(dec)
		if err != nil {
			return err
		}
		dec.buf = append(dec.buf, a)

	case "Declaration", "Prefix", "Import", "Annotation", "AnnotationAssertion",
		"DisjointClasses", "DisjointObjectProperties", "DifferentIndividuals",
		"SameIndividual", "NegativeObjectPropertyAssertion", "HasKey":
		// Not axiom-bearing for this decoder's purposes; skip the subtree.
		if err := dec.xml.Skip(); err != nil {
			return err
		}

	default:
		return fmt.Errorf("owl: unrecognised element %+v", start.Name)
	}

	return nil
}
