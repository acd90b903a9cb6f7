// Package share encodes roadmap documents into URL fragments and back.
//
// A document is first compacted (every field renamed to a one or two letter
// key, absent fields omitted), serialized as JSON and compressed with the
// lz-string URI-safe alphabet. The resulting text is placed after "#data="
// so it never reaches server logs. Older links carried the payload in the
// "data" query parameter and used the full field names; both are still read.
package share
