package Store

/* What producers (parsers) need from a store. */
type Registrar interface {
	RegisterClass(*ClassData) error
	RegisterCategory(*CategoryData) error
	RegisterProtocol(*ProtocolData) error
	UnregisterTopLevelObject(TopLevelObject)
}

/* What consumers (renderers, cross-referencers) need from a store. Returned slices are read-only snapshots. */
type Reader interface {
	ClassWithName(string) (*ClassData, bool)
	CategoryWithName(className, categoryName string) (*CategoryData, bool)
	CategoryWithID(string) (*CategoryData, bool)
	ProtocolWithName(string) (*ProtocolData, bool)

	Classes() []*ClassData
	Categories() []*CategoryData
	Protocols() []*ProtocolData

	ClassesSortedByName() []*ClassData
	CategoriesSortedByName() []*CategoryData
	ProtocolsSortedByName() []*ProtocolData
}

/* The full store API. */
type Provider interface {
	Registrar
	Reader
}

var _ Provider = (*Store)(nil)
