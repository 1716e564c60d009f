// Package canvas defines the element and document model shared by every
// geometry package in kanvax.
//
// # Elements
//
// An [Element] is a tagged union over a shared base. The base carries the
// identity and geometry every element has (id, name, position, size,
// rotation, opacity, locked and visible flags). [Kind] selects the variant:
//
//   - [KindImage]: the element has an [ImageProps] payload with an opaque
//     source reference and independent scale factors.
//   - [KindFrame]: the element has a [FrameProps] payload with an optional
//     background color. Frames act as containers, viewports and export
//     targets and never carry an image source.
//
// Geometry functions in the sibling packages operate on the base fields and
// only branch on [Element.Kind] where the variants differ.
//
// # Documents
//
// A [Document] is an ordered element list (order is paint order) plus
// document metadata. A document without explicit Width and Height is an
// infinite canvas.
//
// # Updates
//
// Geometry packages never mutate elements. They return [Update] values (or a
// [Rect] for resize) which callers apply with [Document.Apply] and
// [Document.Resize]. Both return a new document and apply nothing when any
// referenced id is unknown.
//
// # Sanitizing
//
// [Sanitize] turns loosely typed input (for example decoded JSON) into
// well-formed elements. It coerces numeric strings, fills defaults, drops
// image sources from frames and guarantees unique ids.
package canvas
