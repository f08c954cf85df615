package Store

import "sort"

/*
Classes ordered by name, byte-wise ascending (so "Banana" < "Zebra" < "apple"). The slice is the caller's own and is
never stale.
*/
func (s *Store) ClassesSortedByName() []*ClassData {
	if cached, ok := s.views.FindByName(KindClass.Collection()).([]*ClassData); ok {
		return append([]*ClassData(nil), cached...)
	}

	sorted := s.Classes()

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	s.views.Store(KindClass.Collection(), sorted)

	return append([]*ClassData(nil), sorted...)
}

/* Categories ordered by class name, then by category name; an extension sorts before the named categories of its class. */
func (s *Store) CategoriesSortedByName() []*CategoryData {
	if cached, ok := s.views.FindByName(KindCategory.Collection()).([]*CategoryData); ok {
		return append([]*CategoryData(nil), cached...)
	}

	sorted := s.Categories()

	sort.Slice(sorted, func(i, j int) bool {
		return lessCategory(sorted[i], sorted[j])
	})

	s.views.Store(KindCategory.Collection(), sorted)

	return append([]*CategoryData(nil), sorted...)
}

/* Protocols ordered by name, byte-wise ascending. */
func (s *Store) ProtocolsSortedByName() []*ProtocolData {
	if cached, ok := s.views.FindByName(KindProtocol.Collection()).([]*ProtocolData); ok {
		return append([]*ProtocolData(nil), cached...)
	}

	sorted := s.Protocols()

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	s.views.Store(KindProtocol.Collection(), sorted)

	return append([]*ProtocolData(nil), sorted...)
}

func lessCategory(a, b *CategoryData) bool {
	if a.ClassName != b.ClassName {
		return a.ClassName < b.ClassName
	}

	return a.CategoryName < b.CategoryName
}
