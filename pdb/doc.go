/*
Package pdb reads the alpha carbons of a protein out of a PDB file and turns
them into a Structure: one Residue per alpha carbon, keyed by chain and
sequence number, with positions scaled and centered into the unit box
[-0.5, 0.5] on every axis.

Only ATOM and HETATM records named "CA" are used. Everything after the first
model is ignored, and a chain that has been closed by a TER record is not
reopened by later records. Residue names are resolved with the amino package,
so modified residues such as MSE are kept with the identity of the residue
they derive from.

The original coordinates can be recovered by multiplying a position by the
structure's Scale (up to a translation). A Structure can be rotated and
recolored in place; it is not safe to do so from multiple goroutines.
*/
package pdb
