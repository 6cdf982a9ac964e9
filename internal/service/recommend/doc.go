// Package recommend implements the anime recommendation engine: a hybrid of
// content-based filtering (seed anime, genre and type filters) and a
// collaborative ranking boost derived from ratings of users with overlapping
// taste, with random backfill when too few candidates survive filtering.
package recommend
