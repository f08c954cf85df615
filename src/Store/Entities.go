package Store

import "strings"

/* Where a declaration was found. A declaration may be seen in several files (forward declarations, headers). */
type SourceInfo struct {
	Filename string
	Line     int
}

/*
Any of the three entity kinds held by the store, as opposed to members nested within them.

The set of implementations is closed: only ClassData, CategoryData and ProtocolData satisfy it.
*/
type TopLevelObject interface {
	Kind() Kind
	/* Textual identity key, unique within the object's collection. */
	Key() string

	unregisterFrom(s *Store) bool
}

/* One parsed class declaration, keyed by its name. */
type ClassData struct {
	Name           string
	SuperclassName string
	Protocols      []string
	SourceInfos    []SourceInfo
}

func NewClass(name string) *ClassData {
	return &ClassData{Name: name}
}

func (c *ClassData) Kind() Kind { return KindClass }

func (c *ClassData) Key() string { return c.Name }

func (c *ClassData) unregisterFrom(s *Store) bool { return s.UnregisterClass(c) }

/*
One parsed category or extension of a class, keyed by (class name, category name).

An empty CategoryName denotes an extension.
*/
type CategoryData struct {
	ClassName    string
	CategoryName string
	Protocols    []string
	SourceInfos  []SourceInfo
}

func NewCategory(className, categoryName string) *CategoryData {
	return &CategoryData{ClassName: className, CategoryName: categoryName}
}

func NewExtension(className string) *CategoryData {
	return NewCategory(className, "")
}

func (c *CategoryData) Kind() Kind { return KindCategory }

func (c *CategoryData) Key() string { return c.ID() }

func (c *CategoryData) IsExtension() bool { return c.CategoryName == "" }

/* Formatted as ClassName(CategoryName); extensions render as ClassName(). */
func (c *CategoryData) ID() string {
	return CategoryID(c.ClassName, c.CategoryName)
}

func (c *CategoryData) unregisterFrom(s *Store) bool { return s.UnregisterCategory(c) }

func (c *CategoryData) key() categoryKey {
	return categoryKey{className: c.ClassName, categoryName: c.CategoryName}
}

/* One parsed protocol declaration, keyed by its name. */
type ProtocolData struct {
	Name        string
	Protocols   []string
	SourceInfos []SourceInfo
}

func NewProtocol(name string) *ProtocolData {
	return &ProtocolData{Name: name}
}

func (p *ProtocolData) Kind() Kind { return KindProtocol }

func (p *ProtocolData) Key() string { return p.Name }

func (p *ProtocolData) unregisterFrom(s *Store) bool { return s.UnregisterProtocol(p) }

type categoryKey struct {
	className    string
	categoryName string
}

func CategoryID(className, categoryName string) string {
	return className + "(" + categoryName + ")"
}

/*
Splits an id of the form ClassName(CategoryName) or ClassName() into its two components.

ok is false when the id is not of that form or the class name is empty.
*/
func ParseCategoryID(id string) (className string, categoryName string, ok bool) {
	open := strings.IndexByte(id, '(')

	if open <= 0 || !strings.HasSuffix(id, ")") {
		return "", "", false
	}

	className = id[:open]
	categoryName = id[open+1 : len(id)-1]

	if strings.ContainsAny(categoryName, "()") || strings.ContainsAny(className, ")") {
		return "", "", false
	}

	return className, categoryName, true
}
