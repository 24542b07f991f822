package main

// Declaration list names, as written in struct tag keys.
const (
	listImplement   = "implement"
	listTransparent = "transparent"
	listCapability  = "capability"
	keyPermissive   = "permissive"
)

// grant is one entry of the capability catalogue: a declaration name, the
// list it may appear under, and the marker method emitted for it.
type grant struct {
	name   string
	list   string
	method string
}

// catalog is the fixed capability catalogue, in emission order. Every name
// a declaration may use appears here exactly once; the permissive flag
// expands to the whole table.
var catalog = []grant{
	{name: "inner", list: listCapability, method: "CanInner"},
	{name: "from", list: listCapability, method: "CanFrom"},
	{name: "map", list: listCapability, method: "CanMap"},
	{name: "cloned", list: listCapability, method: "CanCloned"},
	{name: "ref", list: listCapability, method: "CanRef"},
	{name: "default", list: listImplement, method: "CanDefault"},
	{name: "clone", list: listImplement, method: "CanClone"},
	{name: "copy", list: listImplement, method: "CanCopy"},
	{name: "equal", list: listImplement, method: "CanEqual"},
	{name: "strict_equal", list: listImplement, method: "CanStrictEqual"},
	{name: "order", list: listImplement, method: "CanOrder"},
	{name: "strict_order", list: listImplement, method: "CanStrictOrder"},
	{name: "hash", list: listImplement, method: "CanHash"},
	{name: "deref", list: listImplement, method: "CanDeref"},
	{name: "add", list: listImplement, method: "CanAdd"},
	{name: "sub", list: listImplement, method: "CanSub"},
	{name: "mul", list: listImplement, method: "CanMul"},
	{name: "div", list: listImplement, method: "CanDiv"},
	{name: "format", list: listTransparent, method: "CanFormat"},
	{name: "debug", list: listTransparent, method: "CanDebug"},
	{name: "parse", list: listTransparent, method: "CanParse"},
	{name: "marshal", list: listTransparent, method: "CanMarshal"},
	{name: "unmarshal", list: listTransparent, method: "CanUnmarshal"},
}

// lookupGrant resolves a declaration name within one list.
func lookupGrant(list, name string) (grant, bool) {
	for _, g := range catalog {
		if g.list == list && g.name == name {
			return g, true
		}
	}
	return grant{}, false
}
