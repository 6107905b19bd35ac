// Package biome classifies elevations into discrete terrain categories.
//
// A [Table] is an ascending list of [Biome] entries, each with an inclusive
// upper elevation bound. [Table.Classify] returns the first entry whose bound
// is at least the elevation, so a value sitting exactly on a threshold belongs
// to the lower biome. Valid tables end at 1.0, which makes every elevation in
// [0,1] classifiable; anything else yields the [Unknown] sentinel.
//
// Two built-in tables exist, [Classic] and [Wide]; both return fresh copies. They share names and colors
// but cut the elevation range differently.
package biome
