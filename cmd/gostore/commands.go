package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/j7mbo/gostore/src/Store"
)

var (
	errNotFound    = errors.New("not found")
	errUnknownKind = errors.New("unknown kind")
)

const kindAll = "all"

/* One collection's names, in listing order. */
type listing struct {
	Collection string   `json:"collection"`
	Names      []string `json:"names"`
}

func newListCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered classes, categories and protocols sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.populate()
			if err != nil {
				return err
			}

			listings, err := sortedListings(store, kind)
			if err != nil {
				return err
			}

			return writeListings(cmd.OutOrStdout(), a.cfg.Format, listings)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kindAll, "classes, categories, protocols or all")

	return cmd
}

func newLookupCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Resolve a class, protocol or Class(Category) name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.populate()
			if err != nil {
				return err
			}

			object, err := resolve(store, args[0], kind)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), describe(object))

			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kindAll, "Restrict the lookup to classes, categories or protocols")

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Populate the store and report duplicate or invalid declarations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.populate()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d classes, %d categories, %d protocols\n",
				store.ClassCount(), store.CategoryCount(), store.ProtocolCount())

			return nil
		},
	}
}

func sortedListings(store Store.Reader, kind string) ([]listing, error) {
	var listings []listing

	if kind == kindAll || kind == Store.KindClass.Collection() {
		names := make([]string, 0)
		for _, class := range store.ClassesSortedByName() {
			names = append(names, class.Name)
		}
		listings = append(listings, listing{Collection: Store.KindClass.Collection(), Names: names})
	}

	if kind == kindAll || kind == Store.KindCategory.Collection() {
		names := make([]string, 0)
		for _, category := range store.CategoriesSortedByName() {
			names = append(names, category.ID())
		}
		listings = append(listings, listing{Collection: Store.KindCategory.Collection(), Names: names})
	}

	if kind == kindAll || kind == Store.KindProtocol.Collection() {
		names := make([]string, 0)
		for _, protocol := range store.ProtocolsSortedByName() {
			names = append(names, protocol.Name)
		}
		listings = append(listings, listing{Collection: Store.KindProtocol.Collection(), Names: names})
	}

	if listings == nil {
		return nil, fmt.Errorf("%w: %q", errUnknownKind, kind)
	}

	return listings, nil
}

func writeListings(w io.Writer, format string, listings []listing) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(listings)
	}

	for _, l := range listings {
		fmt.Fprintf(w, "%s:\n", l.Collection)

		for _, name := range l.Names {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}

	return nil
}

/* Class(Category) ids go to categories; plain names try classes, then protocols. */
func resolve(store Store.Reader, name, kind string) (Store.TopLevelObject, error) {
	switch kind {
	case kindAll:
	case Store.KindClass.Collection(), Store.KindCategory.Collection(), Store.KindProtocol.Collection():
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownKind, kind)
	}

	if kind == kindAll || kind == Store.KindCategory.Collection() {
		if category, ok := store.CategoryWithID(name); ok {
			return category, nil
		}
	}

	if kind == kindAll || kind == Store.KindClass.Collection() {
		if class, ok := store.ClassWithName(name); ok {
			return class, nil
		}
	}

	if kind == kindAll || kind == Store.KindProtocol.Collection() {
		if protocol, ok := store.ProtocolWithName(name); ok {
			return protocol, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", errNotFound, name)
}

func describe(object Store.TopLevelObject) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s", object.Kind(), object.Key())

	switch o := object.(type) {
	case *Store.ClassData:
		if o.SuperclassName != "" {
			fmt.Fprintf(&b, " : %s", o.SuperclassName)
		}
		writeProtocols(&b, o.Protocols)
		writeSources(&b, o.SourceInfos)
	case *Store.CategoryData:
		if o.IsExtension() {
			b.WriteString(" (extension)")
		}
		writeProtocols(&b, o.Protocols)
		writeSources(&b, o.SourceInfos)
	case *Store.ProtocolData:
		writeProtocols(&b, o.Protocols)
		writeSources(&b, o.SourceInfos)
	}

	return b.String()
}

func writeProtocols(b *strings.Builder, protocols []string) {
	if len(protocols) > 0 {
		fmt.Fprintf(b, " <%s>", strings.Join(protocols, ", "))
	}
}

func writeSources(b *strings.Builder, sources []Store.SourceInfo) {
	for _, source := range sources {
		fmt.Fprintf(b, " [%s:%d]", source.Filename, source.Line)
	}
}
