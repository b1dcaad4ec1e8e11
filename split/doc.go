/*
Package split implements the recursive partition core of tree growing:
the Path of variant-presence constraints that identifies a tree node,
and the Engine that filters matrix rows against a path and aggregates
ancestry distributions for it and for every candidate next variant.
*/
package split
