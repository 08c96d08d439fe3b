package explain

import "github.com/SaraFlht/owlexplain/internal/owl"

// propertyPatterns implements the seven ordered property-goal patterns of
// the pattern-based fallback; every pattern that succeeds contributes its
// own block.
func (e *Service) propertyPatterns(subj, prop, obj owl.Entity, depth int, inProgress map[string]bool) [][]owl.Axiom {
	if depth <= 0 {
		return nil
	}
	key := "P|" + subj.FullIRI() + "|" + prop.FullIRI() + "|" + obj.FullIRI()
	if inProgress[key] {
		return nil
	}
	inProgress[key] = true
	defer delete(inProgress, key)

	var blocks [][]owl.Axiom

	if e.ont.ContainsPropertyAssertion(subj, prop, obj) {
		blocks = append(blocks, []owl.Axiom{owl.NewObjectPropertyAssertion(subj, prop, obj, true)})
	}

	for _, q := range e.schema.inverseOf[prop.FullIRI()] {
		if e.ont.ContainsPropertyAssertion(obj, q, subj) {
			blocks = append(blocks, []owl.Axiom{
				owl.NewInverseObjectProperties(prop, q, true),
				owl.NewObjectPropertyAssertion(obj, q, subj, true),
			})
		}
	}

	if e.schema.symmetric[prop.FullIRI()] && e.ont.ContainsPropertyAssertion(obj, prop, subj) {
		blocks = append(blocks, []owl.Axiom{
			owl.NewSymmetricObjectProperty(prop, true),
			owl.NewObjectPropertyAssertion(obj, prop, subj, true),
		})
	}

	for qIRI, path := range e.schema.subPropertiesInto(prop, depth) {
		q := owl.MustEntity(qIRI, "")
		if e.ont.ContainsPropertyAssertion(subj, q, obj) {
			block := append([]owl.Axiom{owl.NewObjectPropertyAssertion(subj, q, obj, true)}, path...)
			blocks = append(blocks, block)
		}
	}

	if e.schema.transitive[prop.FullIRI()] {
		for _, a := range e.ont.AxiomsOfKind(owl.ObjectPropertyAssertion) {
			if a.Property.FullIRI() != prop.FullIRI() || a.Subject.FullIRI() != subj.FullIRI() {
				continue
			}
			m := a.Object
			if m.FullIRI() == obj.FullIRI() {
				continue
			}
			if !e.reasoner.Entails(owl.NewObjectPropertyAssertion(m, prop, obj, false)) {
				continue
			}
			if sub := e.propertyPatterns(m, prop, obj, depth-1, inProgress); len(sub) > 0 {
				block := append([]owl.Axiom{owl.NewTransitiveObjectProperty(prop, true), a}, sub[0]...)
				blocks = append(blocks, block)
			}
		}
	}

	for _, ch := range e.schema.chains {
		if ch.sup.FullIRI() != prop.FullIRI() {
			continue
		}
		if witness := e.chainWitness(subj, obj, ch.factors); witness != nil {
			block := append([]owl.Axiom{owl.NewSubPropertyChain(ch.factors, ch.sup, true)}, witness...)
			blocks = append(blocks, block)
		}
	}

	for _, q := range e.schema.equivProps[prop.FullIRI()] {
		if e.ont.ContainsPropertyAssertion(subj, q, obj) {
			blocks = append(blocks, []owl.Axiom{
				owl.NewEquivalentObjectProperties([]owl.Entity{prop, q}, true),
				owl.NewObjectPropertyAssertion(subj, q, obj, true),
			})
		}
	}

	return blocks
}

// chainWitness searches for individuals x0=subj, ..., xn=obj such that
// each xi is connected to xi+1 by the corresponding chain factor.
func (e *Service) chainWitness(subj, obj owl.Entity, factors []owl.Entity) []owl.Axiom {
	return e.chainWitnessFrom(subj, obj, factors, 0)
}

func (e *Service) chainWitnessFrom(cur, target owl.Entity, factors []owl.Entity, i int) []owl.Axiom {
	if i == len(factors) {
		if cur.FullIRI() == target.FullIRI() {
			return []owl.Axiom{}
		}
		return nil
	}
	for _, a := range e.ont.AxiomsOfKind(owl.ObjectPropertyAssertion) {
		if a.Property.FullIRI() != factors[i].FullIRI() || a.Subject.FullIRI() != cur.FullIRI() {
			continue
		}
		if rest := e.chainWitnessFrom(a.Object, target, factors, i+1); rest != nil {
			return append([]owl.Axiom{a}, rest...)
		}
	}
	return nil
}

// typePatterns implements the five ordered class-membership-goal patterns.
func (e *Service) typePatterns(ind, cls owl.Entity, depth int, inProgress map[string]bool) [][]owl.Axiom {
	if depth <= 0 {
		return nil
	}
	key := "T|" + ind.FullIRI() + "|" + cls.FullIRI()
	if inProgress[key] {
		return nil
	}
	inProgress[key] = true
	defer delete(inProgress, key)

	var blocks [][]owl.Axiom

	if e.ont.ContainsClassAssertion(ind, cls) {
		blocks = append(blocks, []owl.Axiom{owl.NewClassAssertion(ind, cls, true)})
	}

	for _, a := range e.ont.AxiomsOfKind(owl.ClassAssertion) {
		if a.Subject.FullIRI() != ind.FullIRI() || a.Object.FullIRI() == cls.FullIRI() {
			continue
		}
		if chain := e.schema.subClassPath(a.Object, cls, depth); chain != nil {
			blocks = append(blocks, append([]owl.Axiom{a}, chain...))
		}
	}

	for _, eq := range e.schema.equivClasses[cls.FullIRI()] {
		if sub := e.typePatterns(ind, eq, depth-1, inProgress); len(sub) > 0 {
			block := append([]owl.Axiom{owl.NewEquivalentClasses([]owl.Entity{cls, eq}, true)}, sub[0]...)
			blocks = append(blocks, block)
		}
	}

	for pIRI, domCls := range e.schema.domainOf {
		if domCls.FullIRI() != cls.FullIRI() {
			continue
		}
		p := owl.MustEntity(pIRI, "")
		for _, a := range e.ont.AxiomsOfKind(owl.ObjectPropertyAssertion) {
			if a.Property.FullIRI() == pIRI && a.Subject.FullIRI() == ind.FullIRI() {
				blocks = append(blocks, []owl.Axiom{owl.NewObjectPropertyDomain(p, cls, true), a})
				break
			}
		}
	}

	for pIRI, rngCls := range e.schema.rangeOf {
		if rngCls.FullIRI() != cls.FullIRI() {
			continue
		}
		p := owl.MustEntity(pIRI, "")
		for _, a := range e.ont.AxiomsOfKind(owl.ObjectPropertyAssertion) {
			if a.Property.FullIRI() == pIRI && a.Object.FullIRI() == ind.FullIRI() {
				blocks = append(blocks, []owl.Axiom{owl.NewObjectPropertyRange(p, cls, true), a})
				break
			}
		}
	}

	return blocks
}

// subClassPatterns implements the three ordered subsumption-goal patterns.
func (e *Service) subClassPatterns(sub, sup owl.Entity, depth int, inProgress map[string]bool) [][]owl.Axiom {
	if depth <= 0 {
		return nil
	}
	key := "S|" + sub.FullIRI() + "|" + sup.FullIRI()
	if inProgress[key] {
		return nil
	}
	inProgress[key] = true
	defer delete(inProgress, key)

	var blocks [][]owl.Axiom

	if e.ont.ContainsSubClassOf(sub, sup) {
		blocks = append(blocks, []owl.Axiom{owl.NewSubClassOf(sub, sup, true)})
	}

	for _, eq := range e.schema.equivClasses[sub.FullIRI()] {
		if subproof := e.subClassPatterns(eq, sup, depth-1, inProgress); len(subproof) > 0 {
			block := append([]owl.Axiom{owl.NewEquivalentClasses([]owl.Entity{sub, eq}, true)}, subproof[0]...)
			blocks = append(blocks, block)
		}
	}

	if chain := e.schema.subClassPath(sub, sup, depth); len(chain) > 0 {
		blocks = append(blocks, chain)
	}

	return blocks
}
