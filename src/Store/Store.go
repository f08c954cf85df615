package Store

import (
	"fmt"

	"github.com/j7mbo/gostore/Logger"
	"github.com/j7mbo/gostore/src/Cache"
)

/*
The in-memory store of all top-level objects found while parsing.

Three independent collections (classes, categories including extensions, protocols) are keyed by an identity key
derived from each entity. The store shares the entity pointers it is given and never copies them. It has no internal
locking: populate it from one goroutine, then read it.
*/
type Store struct {
	classes    map[string]*ClassData
	categories map[categoryKey]*CategoryData
	protocols  map[string]*ProtocolData

	/* Sorted listings, flushed per collection on every mutation. */
	views Cache.ViewCache

	logger *Logger.Logger
}

/* The logger may be nil. */
func New(logger *Logger.Logger) *Store {
	return &Store{
		classes:    make(map[string]*ClassData),
		categories: make(map[categoryKey]*CategoryData),
		protocols:  make(map[string]*ProtocolData),
		views:      Cache.NewViewCache(),
		logger:     logger,
	}
}

/*
Registers the class. Registering the instance that is already registered does nothing; registering a different
instance with the same name fails with a *DuplicateRegistrationError and leaves the store unchanged.
*/
func (s *Store) RegisterClass(class *ClassData) error {
	if class == nil || class.Name == "" {
		return s.invalid(KindClass, "nil class or empty class name")
	}

	if existing, exists := s.classes[class.Name]; exists {
		if existing == class {
			return nil
		}

		return s.duplicate(KindClass, class.Name)
	}

	s.classes[class.Name] = class
	s.changed(KindClass)
	s.log(fmt.Sprintf("Registered class: %s", class.Name))

	return nil
}

/* Same rules as RegisterClass, keyed by class name and category name together. */
func (s *Store) RegisterCategory(category *CategoryData) error {
	if category == nil || category.ClassName == "" {
		return s.invalid(KindCategory, "nil category or empty class name")
	}

	key := category.key()

	if existing, exists := s.categories[key]; exists {
		if existing == category {
			return nil
		}

		return s.duplicate(KindCategory, category.ID())
	}

	s.categories[key] = category
	s.changed(KindCategory)
	s.log(fmt.Sprintf("Registered category: %s", category.ID()))

	return nil
}

/* Same rules as RegisterClass, keyed by protocol name. */
func (s *Store) RegisterProtocol(protocol *ProtocolData) error {
	if protocol == nil || protocol.Name == "" {
		return s.invalid(KindProtocol, "nil protocol or empty protocol name")
	}

	if existing, exists := s.protocols[protocol.Name]; exists {
		if existing == protocol {
			return nil
		}

		return s.duplicate(KindProtocol, protocol.Name)
	}

	s.protocols[protocol.Name] = protocol
	s.changed(KindProtocol)
	s.log(fmt.Sprintf("Registered protocol: %s", protocol.Name))

	return nil
}

/* Removes whatever is registered under the object's identity key. Unknown objects, and nil, are ignored. */
func (s *Store) UnregisterTopLevelObject(object TopLevelObject) {
	if object == nil {
		return
	}

	object.unregisterFrom(s)
}

/* Reports whether a class was removed. */
func (s *Store) UnregisterClass(class *ClassData) bool {
	if class == nil {
		return false
	}

	if _, exists := s.classes[class.Name]; !exists {
		return false
	}

	delete(s.classes, class.Name)
	s.changed(KindClass)
	s.log(fmt.Sprintf("Unregistered class: %s", class.Name))

	return true
}

/* Reports whether a category was removed. */
func (s *Store) UnregisterCategory(category *CategoryData) bool {
	if category == nil {
		return false
	}

	key := category.key()

	if _, exists := s.categories[key]; !exists {
		return false
	}

	delete(s.categories, key)
	s.changed(KindCategory)
	s.log(fmt.Sprintf("Unregistered category: %s", category.ID()))

	return true
}

/* Reports whether a protocol was removed. */
func (s *Store) UnregisterProtocol(protocol *ProtocolData) bool {
	if protocol == nil {
		return false
	}

	if _, exists := s.protocols[protocol.Name]; !exists {
		return false
	}

	delete(s.protocols, protocol.Name)
	s.changed(KindProtocol)
	s.log(fmt.Sprintf("Unregistered protocol: %s", protocol.Name))

	return true
}

/* Exact, case-sensitive match. */
func (s *Store) ClassWithName(name string) (*ClassData, bool) {
	class, exists := s.classes[name]

	return class, exists
}

/* Exact, case-sensitive match on both components. An empty categoryName finds the extension. */
func (s *Store) CategoryWithName(className, categoryName string) (*CategoryData, bool) {
	category, exists := s.categories[categoryKey{className: className, categoryName: categoryName}]

	return category, exists
}

/* Looks a category up by its ClassName(CategoryName) id. Malformed ids are simply not found. */
func (s *Store) CategoryWithID(id string) (*CategoryData, bool) {
	className, categoryName, ok := ParseCategoryID(id)

	if !ok {
		return nil, false
	}

	return s.CategoryWithName(className, categoryName)
}

/* Exact, case-sensitive match. */
func (s *Store) ProtocolWithName(name string) (*ProtocolData, bool) {
	protocol, exists := s.protocols[name]

	return protocol, exists
}

/* All registered classes in no particular order. The slice is the caller's own. */
func (s *Store) Classes() []*ClassData {
	classes := make([]*ClassData, 0, len(s.classes))

	for _, class := range s.classes {
		classes = append(classes, class)
	}

	return classes
}

/* All registered categories and extensions in no particular order. The slice is the caller's own. */
func (s *Store) Categories() []*CategoryData {
	categories := make([]*CategoryData, 0, len(s.categories))

	for _, category := range s.categories {
		categories = append(categories, category)
	}

	return categories
}

/* All registered protocols in no particular order. The slice is the caller's own. */
func (s *Store) Protocols() []*ProtocolData {
	protocols := make([]*ProtocolData, 0, len(s.protocols))

	for _, protocol := range s.protocols {
		protocols = append(protocols, protocol)
	}

	return protocols
}

func (s *Store) ClassCount() int { return len(s.classes) }

func (s *Store) CategoryCount() int { return len(s.categories) }

func (s *Store) ProtocolCount() int { return len(s.protocols) }

/* Drops the cached sorted view of the mutated collection. */
func (s *Store) changed(kind Kind) {
	s.views.Invalidate(kind.Collection())
}

func (s *Store) duplicate(kind Kind, key string) error {
	err := &DuplicateRegistrationError{Kind: kind, Key: key}

	s.elog(err.Error())

	return err
}

func (s *Store) invalid(kind Kind, reason string) error {
	err := fmt.Errorf("%w: cannot register %s: %s", ErrInvalidEntity, kind, reason)

	s.elog(err.Error())

	return err
}

/* Log normal 'debug-level' stuff. */
func (s *Store) log(msg string) {
	if s.logger != nil {
		s.logger.Debug(msg)
	}
}

/* Log error stuff. */
func (s *Store) elog(msg string) {
	if s.logger != nil {
		s.logger.Error(msg)
	}
}
