// Package query holds the pure functions consumers run over parsed venue
// lists: merging lists from several sources, ranking by next session,
// filtering by session type, fee and radius, and distance sorting.
//
// None of the functions do I/O or modify their inputs; every result is a
// fresh slice of fresh venues.
package query
