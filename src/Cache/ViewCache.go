package Cache

import (
	gocache "github.com/patrickmn/go-cache"
)

/*
A ViewCache holds derived, read-only views (such as sorted listings) keyed by name.

Views never expire on their own; the owner must Invalidate or Flush them whenever the data they were derived from
changes.
*/
type ViewCache interface {
	Store(string, interface{})
	FindByName(string) interface{}
	Invalidate(...string)
	Flush()
}

type viewCache struct {
	cachedViews *gocache.Cache
}

/* No default expiration and no janitor goroutine: views live until invalidated. */
func NewViewCache() ViewCache {
	return &viewCache{cachedViews: gocache.New(gocache.NoExpiration, 0)}
}

func (r *viewCache) Store(name string, view interface{}) {
	r.cachedViews.Set(name, view, gocache.NoExpiration)
}

/* Returns nil when no view is stored under the given name. */
func (r *viewCache) FindByName(name string) interface{} {
	if theView, exists := r.cachedViews.Get(name); exists {
		return theView
	}

	return nil
}

func (r *viewCache) Invalidate(names ...string) {
	for _, name := range names {
		r.cachedViews.Delete(name)
	}
}

func (r *viewCache) Flush() {
	r.cachedViews.Flush()
}
