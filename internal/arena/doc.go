// Package arena provides the node arena backing the pathgo search engine.
//
// The arena owns every per-state record (Node) the engine ever creates. It
// deduplicates records by state identity through a hash table whose buckets
// resolve collisions with identity-ordered binary trees, grows by fixed-size
// blocks, and reuses record memory across searches via frame stamping: a
// record whose frame differs from the current search frame is reinitialized
// in place on its next access instead of being eagerly cleared.
//
// The package also contains the adjacency cache (an append-only buffer of
// previously enumerated neighbor lists, addressed per node by offset and
// length) and the open list (an intrusive sorted doubly-linked sequence
// bounded by an infinite-cost sentinel).
//
// Nothing here is safe for concurrent use. The arena is owned by a single
// Pather and driven by one search at a time.
package arena
