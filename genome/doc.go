/*
Package genome defines the immutable structures every tree-growing
query operates on: the binary genotype Matrix, the ancestry Catalog
and the population count Distribution.
*/
package genome
