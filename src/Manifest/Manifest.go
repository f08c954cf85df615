/*
Package Manifest feeds declarations listed in a YAML document into a store.

It stands in for a source parser: each entry becomes a new entity instance, so a manifest that lists the same
declaration twice is reported the same way a parser bug would be, as a duplicate registration.
*/
package Manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/j7mbo/gostore/src/Store"
)

var ErrMalformedCategoryID = errors.New("malformed category id")

type Manifest struct {
	Classes    []ClassEntry    `yaml:"classes"`
	Categories []CategoryEntry `yaml:"categories"`
	Protocols  []ProtocolEntry `yaml:"protocols"`
	Unregister Retractions     `yaml:"unregister"`
}

type ClassEntry struct {
	Name       string   `yaml:"name"`
	Superclass string   `yaml:"superclass"`
	Protocols  []string `yaml:"protocols"`
	File       string   `yaml:"file"`
	Line       int      `yaml:"line"`
}

/* An empty Name declares an extension. */
type CategoryEntry struct {
	Class     string   `yaml:"class"`
	Name      string   `yaml:"name"`
	Protocols []string `yaml:"protocols"`
	File      string   `yaml:"file"`
	Line      int      `yaml:"line"`
}

type ProtocolEntry struct {
	Name      string   `yaml:"name"`
	Protocols []string `yaml:"protocols"`
	File      string   `yaml:"file"`
	Line      int      `yaml:"line"`
}

/* Declarations to discard once everything is registered. Categories are given as Class(Category) ids. */
type Retractions struct {
	Classes    []string `yaml:"classes"`
	Categories []string `yaml:"categories"`
	Protocols  []string `yaml:"protocols"`
}

func Parse(data []byte) (*Manifest, error) {
	var manifest Manifest

	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	return &manifest, nil
}

func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	manifest, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return manifest, nil
}

/*
Registers every class, then every category, then every protocol, then applies the retractions.

Stops at the first failure. Registration errors from the store stay reachable through errors.Is / errors.As.
*/
func (m *Manifest) Populate(store Store.Registrar) error {
	for i, entry := range m.Classes {
		if err := store.RegisterClass(entry.toClass()); err != nil {
			return fmt.Errorf("classes[%d]: %w", i, err)
		}
	}

	for i, entry := range m.Categories {
		if err := store.RegisterCategory(entry.toCategory()); err != nil {
			return fmt.Errorf("categories[%d]: %w", i, err)
		}
	}

	for i, entry := range m.Protocols {
		if err := store.RegisterProtocol(entry.toProtocol()); err != nil {
			return fmt.Errorf("protocols[%d]: %w", i, err)
		}
	}

	return m.Unregister.apply(store)
}

func (r Retractions) apply(store Store.Registrar) error {
	for _, name := range r.Classes {
		store.UnregisterTopLevelObject(Store.NewClass(name))
	}

	for i, id := range r.Categories {
		className, categoryName, ok := Store.ParseCategoryID(id)
		if !ok {
			return fmt.Errorf("unregister.categories[%d]: %w: %q", i, ErrMalformedCategoryID, id)
		}

		store.UnregisterTopLevelObject(Store.NewCategory(className, categoryName))
	}

	for _, name := range r.Protocols {
		store.UnregisterTopLevelObject(Store.NewProtocol(name))
	}

	return nil
}

func (e ClassEntry) toClass() *Store.ClassData {
	return &Store.ClassData{
		Name:           e.Name,
		SuperclassName: e.Superclass,
		Protocols:      e.Protocols,
		SourceInfos:    sourceInfos(e.File, e.Line),
	}
}

func (e CategoryEntry) toCategory() *Store.CategoryData {
	return &Store.CategoryData{
		ClassName:    e.Class,
		CategoryName: e.Name,
		Protocols:    e.Protocols,
		SourceInfos:  sourceInfos(e.File, e.Line),
	}
}

func (e ProtocolEntry) toProtocol() *Store.ProtocolData {
	return &Store.ProtocolData{
		Name:        e.Name,
		Protocols:   e.Protocols,
		SourceInfos: sourceInfos(e.File, e.Line),
	}
}

func sourceInfos(file string, line int) []Store.SourceInfo {
	if file == "" {
		return nil
	}

	return []Store.SourceInfo{{Filename: file, Line: line}}
}
