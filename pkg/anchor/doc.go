// Package anchor collects layout measurements for a bottom sheet.
//
// Measured subtrees push values into a [Channel]: anchor markers push their
// global positions, the header and the scroll content push their intrinsic
// heights. A channel folds the contributions of all its scopes with a reduce
// function and notifies subscribers, so the sheet never reads ambient state.
//
// Anchor channels are namespaced by [Key] in a [Registry]; two sheets using
// different keys never see each other's anchors.
//
// Scopes sharing a key are concatenated in the order the scopes were opened.
// Duplicate positions reported by two scopes are kept twice:
//
//	reg := anchor.NewRegistry()
//	list := reg.Anchors(anchor.DefaultKey).Scope()
//	anchor.Register(list, anchor.Point{Y: 420})
//	nested := reg.Anchors(anchor.DefaultKey).Scope()
//	anchor.Register(nested, anchor.Point{Y: 420})
//	reg.Anchors(anchor.DefaultKey).Value() // [{0 420} {0 420}]
package anchor
