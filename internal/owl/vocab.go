package owl

// Well-known vocabulary entities referenced by the reasoner and enumerator
// when excluding the top and bottom of the class hierarchy.
var (
	Thing   = MustEntity("http://www.w3.org/2002/07/owl#Thing", "")
	Nothing = MustEntity("http://www.w3.org/2002/07/owl#Nothing", "")
)
