// Package sanitize guards every raw string before it is trusted for
// substitution or filesystem use. Control characters are stripped, path
// traversal is rejected for every kind (values can end up inside generated
// path segments), and each kind applies its own allow-list or structural
// check. Rejections are *Error values wrapping one of the exported sentinels
// and are meant to abort the whole generation.
package sanitize
