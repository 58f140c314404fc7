// Package assoc provides the Association, the ordered and immutable key-value
// bag passed alongside every traversal call.
//
// Associations carry out-of-band configuration: the logger used by routes,
// the initial route state, the traversal method settings. They can be built
// in code with Of, or loaded from YAML with FromYAML, and typed values are
// extracted with Decode and DecodeKey.
package assoc
