package Store

import "fmt"

/* The kind of a top-level object, which also selects the collection it is stored in. */
type Kind int

const (
	KindClass Kind = iota
	KindCategory
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindCategory:
		return "category"
	case KindProtocol:
		return "protocol"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

/* Name of the collection holding objects of this kind. Also used as the name of its sorted view. */
func (k Kind) Collection() string {
	switch k {
	case KindClass:
		return "classes"
	case KindCategory:
		return "categories"
	case KindProtocol:
		return "protocols"
	default:
		return fmt.Sprintf("collection(%d)", int(k))
	}
}
