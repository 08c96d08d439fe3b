package owl

import "encoding/xml"

// This file contains the OWL/XML element structs the Decoder recognises
// and the logic mapping each to the Axiom it denotes. For a description
// of the standard this is a (partial) reference implementation of, see
// https://www.w3.org/TR/owl2-xml-serialization/.

type classRef struct {
	IRI string `xml:"IRI,attr"`
}

type objPropRef struct {
	IRI string `xml:"IRI,attr"`
}

type dataPropRef struct {
	IRI string `xml:"IRI,attr"`
}

type indRef struct {
	IRI string `xml:"IRI,attr"`
}

type ontologyElem struct {
	XMLName xml.Name
	IRI     string `xml:"ontologyIRI,attr"`
}

type classAssertionElem struct {
	XMLName    xml.Name
	Class      classRef `xml:"Class"`
	Individual indRef   `xml:"NamedIndividual"`
}

func (e classAssertionElem) axiom(dec *Decoder) (Axiom, error) {
	cls, err := dec.entity(e.Class.IRI)
	if err != nil {
		return Axiom{}, err
	}
	ind, err := dec.entity(e.Individual.IRI)
	if err != nil {
		return Axiom{}, err
	}
	return NewClassAssertion(ind, cls, true), nil
}

type objectPropertyAssertionElem struct {
	XMLName     xml.Name
	Property    objPropRef `xml:"ObjectProperty"`
	Individuals []indRef   `xml:"NamedIndividual"`
}

func (e objectPropertyAssertionElem) axiom(dec *Decoder) (Axiom, error) {
	p, err := dec.entity(e.Property.IRI)
	if err != nil {
		return Axiom{}, err
	}
	if len(e.Individuals) != 2 {
		return Axiom{}, errMalformedElement("ObjectPropertyAssertion", "expected 2 NamedIndividual children")
	}
	s, err := dec.entity(e.Individuals[0].IRI)
	if err != nil {
		return Axiom{}, err
	}
	o, err := dec.entity(e.Individuals[1].IRI)
	if err != nil {
		return Axiom{}, err
	}
	return NewObjectPropertyAssertion(s, p, o, true), nil
}

type dataPropertyAssertionElem struct {
	XMLName    xml.Name
	Property   dataPropRef `xml:"DataProperty"`
	Individual indRef      `xml:"NamedIndividual"`
	Literal    string      `xml:"Literal"`
}

func (e dataPropertyAssertionElem) axiom(dec *Decoder) (Axiom, error) {
	p, err := dec.entity(e.Property.IRI)
	if err != nil {
		return Axiom{}, err
	}
	s, err := dec.entity(e.Individual.IRI)
	if err != nil {
		return Axiom{}, err
	}
	return NewDataPropertyAssertion(s, p, e.Literal, true), nil
}

type subClassOfElem struct {
	XMLName xml.Name
	Classes []classRef `xml:"Class"`
}

func (e subClassOfElem) axiom(dec *Decoder) (Axiom, error) {
	if len(e.Classes) != 2 {
		return Axiom{}, errMalformedElement("SubClassOf", "expected 2 Class children")
	}
	sub, err := dec.entity(e.Classes[0].IRI)
	if err != nil {
		return Axiom{}, err
	}
	sup, err := dec.entity(e.Classes[1].IRI)
	if err != nil {
		return Axiom{}, err
	}
	return NewSubClassOf(sub, sup, true), nil
}

type equivalentClassesElem struct {
	XMLName xml.Name
	Classes []classRef `xml:"Class"`
}

func (e equivalentClassesElem) axiom(dec *Decoder) (Axiom, error) {
	classes := make([]Entity, len(e.Classes))
	for i, c := range e.Classes {
		ent, err := dec.entity(c.IRI)
		if err != nil {
			return Axiom{}, err
		}
		classes[i] = ent
	}
	return NewEquivalentClasses(classes, true), nil
}

type objectPropertyChainElem struct {
	XMLName    xml.Name
	Properties []objPropRef `xml:"ObjectProperty"`
}

type subObjectPropertyOfElem struct {
	XMLName    xml.Name
	Chain      *objectPropertyChainElem `xml:"ObjectPropertyChain"`
	Properties []objPropRef             `xml:"ObjectProperty"`
}

func (e subObjectPropertyOfElem) axiom(dec *Decoder) (Axiom, error) {
	if e.Chain != nil {
		if len(e.Properties) != 1 {
			return Axiom{}, errMalformedElement("SubObjectPropertyOf", "expected 1 super ObjectProperty alongside ObjectPropertyChain")
		}
		sup, err := dec.entity(e.Properties[0].IRI)
		if err != nil {
			return Axiom{}, err
		}
		chain := make([]Entity, len(e.Chain.Properties))
		for i, p := range e.Chain.Properties {
			ent, err := dec.entity(p.IRI)
			if err != nil {
				return Axiom{}, err
			}
			chain[i] = ent
		}
		return NewSubPropertyChain(chain, sup, true), nil
	}
	if len(e.Properties) != 2 {
		return Axiom{}, errMalformedElement("SubObjectPropertyOf", "expected 2 ObjectProperty children")
	}
	sub, err := dec.entity(e.Properties[0].IRI)
	if err != nil {
		return Axiom{}, err
	}
	sup, err := dec.entity(e.Properties[1].IRI)
	if err != nil {
		return Axiom{}, err
	}
	return NewSubObjectPropertyOf(sub, sup, true), nil
}

type objectPropertyDomainElem struct {
	XMLName  xml.Name
	Property objPropRef `xml:"ObjectProperty"`
	Class    classRef   `xml:"Class"`
}

func (e objectPropertyDomainElem) axiom(dec *Decoder) (Axiom, error) {
	p, err := dec.entity(e.Property.IRI)
	if err != nil {
		return Axiom{}, err
	}
	c, err := dec.entity(e.Class.IRI)
	if err != nil {
		return Axiom{}, err
	}
	return NewObjectPropertyDomain(p, c, true), nil
}

type objectPropertyRangeElem struct {
	XMLName  xml.Name
	Property objPropRef `xml:"ObjectProperty"`
	Class    classRef   `xml:"Class"`
}

func (e objectPropertyRangeElem) axiom(dec *Decoder) (Axiom, error) {
	p, err := dec.entity(e.Property.IRI)
	if err != nil {
		return Axiom{}, err
	}
	c, err := dec.entity(e.Class.IRI)
	if err != nil {
		return Axiom{}, err
	}
	return NewObjectPropertyRange(p, c, true), nil
}

type transitiveObjectPropertyElem struct {
	XMLName  xml.Name
	Property objPropRef `xml:"ObjectProperty"`
}

func (e transitiveObjectPropertyElem) axiom(dec *Decoder) (Axiom, error) {
	p, err := dec.entity(e.Property.IRI)
	if err != nil {
		return Axiom{}, err
	}
	return NewTransitiveObjectProperty(p, true), nil
}

type symmetricObjectPropertyElem struct {
	XMLName  xml.Name
	Property objPropRef `xml:"ObjectProperty"`
}

func (e symmetricObjectPropertyElem) axiom(dec *Decoder) (Axiom, error) {
	p, err := dec.entity(e.Property.IRI)
	if err != nil {
		return Axiom{}, err
	}
	return NewSymmetricObjectProperty(p, true), nil
}

type functionalObjectPropertyElem struct {
	XMLName  xml.Name
	Property objPropRef `xml:"ObjectProperty"`
}

func (e functionalObjectPropertyElem) axiom(dec *Decoder) (Axiom, error) {
	p, err := dec.entity(e.Property.IRI)
	if err != nil {
		return Axiom{}, err
	}
	return NewFunctionalObjectProperty(p, true), nil
}

type inverseObjectPropertiesElem struct {
	XMLName    xml.Name
	Properties []objPropRef `xml:"ObjectProperty"`
}

func (e inverseObjectPropertiesElem) axiom(dec *Decoder) (Axiom, error) {
	if len(e.Properties) != 2 {
		return Axiom{}, errMalformedElement("InverseObjectProperties", "expected 2 ObjectProperty children")
	}
	p, err := dec.entity(e.Properties[0].IRI)
	if err != nil {
		return Axiom{}, err
	}
	q, err := dec.entity(e.Properties[1].IRI)
	if err != nil {
		return Axiom{}, err
	}
	return NewInverseObjectProperties(p, q, true), nil
}

type equivalentObjectPropertiesElem struct {
	XMLName    xml.Name
	Properties []objPropRef `xml:"ObjectProperty"`
}

func (e equivalentObjectPropertiesElem) axiom(dec *Decoder) (Axiom, error) {
	properties := make([]Entity, len(e.Properties))
	for i, p := range e.Properties {
		ent, err := dec.entity(p.IRI)
		if err != nil {
			return Axiom{}, err
		}
		properties[i] = ent
	}
	return NewEquivalentObjectProperties(properties, true), nil
}

func errMalformedElement(elem, reason string) error {
	return &malformedElementError{elem: elem, reason: reason}
}

type malformedElementError struct {
	elem   string
	reason string
}

func (e *malformedElementError) Error() string {
	return "owl: malformed " + e.elem + " element: " + e.reason
}
