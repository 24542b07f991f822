package tagged

// Capability markers.
//
// Each interface below is a single-method marker. A brand type carries a
// marker by declaring the (empty) method, which the taggen tool generates
// from the brand's declaration tags. Presence of a marker is a compile-time
// fact: the gated functions in this package constrain their tag type
// parameter on these interfaces and become unavailable for brands that lack
// the grant.
//
// The catalogue is fixed. taggen rejects any declaration name that does not
// map to one of these markers.

// CanInner grants access to the inner value via Inner.
type CanInner interface{ CanInner() }

// CanFrom grants construction from the inner type via From.
type CanFrom interface{ CanFrom() }

// CanMap grants inner-value mapping via Map and TryMap.
type CanMap interface{ CanMap() }

// CanCloned grants converting a pointer-inner wrapper to an owned one via
// Cloned.
type CanCloned interface{ CanCloned() }

// CanRef grants borrowing a wrapper as a pointer-inner wrapper via Ref.
type CanRef interface{ CanRef() }

// CanDeref grants direct pointer access to the inner value via Deref.
type CanDeref interface{ CanDeref() }

// CanDefault grants zero-value construction via Default.
type CanDefault interface{ CanDefault() }

// CanClone grants duplication via Clone.
type CanClone interface{ CanClone() }

// CanCopy grants explicit by-value copying via Copy. Copy additionally
// requires CanClone, matching the clone/copy prerequisite chain.
type CanCopy interface{ CanCopy() }

// CanEqual grants (partial) equality via Equal.
type CanEqual interface{ CanEqual() }

// CanStrictEqual grants strict equality via StrictEqual. StrictEqual
// additionally requires CanEqual.
type CanStrictEqual interface{ CanStrictEqual() }

// CanOrder grants (partial) ordering via Less. Less additionally requires
// CanEqual.
type CanOrder interface{ CanOrder() }

// CanStrictOrder grants total ordering via Compare. Compare additionally
// requires CanOrder, CanStrictEqual and CanEqual.
type CanStrictOrder interface{ CanStrictOrder() }

// CanHash grants seeded hashing via Hash.
type CanHash interface{ CanHash() }

// CanAdd grants addition via Add.
type CanAdd interface{ CanAdd() }

// CanSub grants subtraction via Sub.
type CanSub interface{ CanSub() }

// CanMul grants multiplication via Mul.
type CanMul interface{ CanMul() }

// CanDiv grants division via Div.
type CanDiv interface{ CanDiv() }

// CanFormat grants transparent display formatting via Format.
type CanFormat interface{ CanFormat() }

// CanDebug grants transparent debug formatting via Debug.
type CanDebug interface{ CanDebug() }

// CanParse grants transparent text parsing via Parse.
type CanParse interface{ CanParse() }

// CanMarshal grants transparent serialization via Marshal.
type CanMarshal interface{ CanMarshal() }

// CanUnmarshal grants transparent deserialization via Unmarshal.
type CanUnmarshal interface{ CanUnmarshal() }

// Permissive is a zero-size struct that can be embedded in a brand type to
// grant every marker in the catalogue at once:
//
//	type GatewayTag struct{ tagged.Permissive }
//
// Method promotion makes the embedding brand satisfy every marker
// interface, so a permissive brand behaves identically to one that grants
// each marker individually. taggen's `permissive:"true"` declaration emits
// the same full grant set without embedding.
type Permissive struct{}

func (Permissive) CanInner()       {}
func (Permissive) CanFrom()        {}
func (Permissive) CanMap()         {}
func (Permissive) CanCloned()      {}
func (Permissive) CanRef()         {}
func (Permissive) CanDeref()       {}
func (Permissive) CanDefault()     {}
func (Permissive) CanClone()       {}
func (Permissive) CanCopy()        {}
func (Permissive) CanEqual()       {}
func (Permissive) CanStrictEqual() {}
func (Permissive) CanOrder()       {}
func (Permissive) CanStrictOrder() {}
func (Permissive) CanHash()        {}
func (Permissive) CanAdd()         {}
func (Permissive) CanSub()         {}
func (Permissive) CanMul()         {}
func (Permissive) CanDiv()         {}
func (Permissive) CanFormat()      {}
func (Permissive) CanDebug()       {}
func (Permissive) CanParse()       {}
func (Permissive) CanMarshal()     {}
func (Permissive) CanUnmarshal()   {}
