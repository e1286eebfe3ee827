/*
Package amino resolves the three letter residue names found in PDB files to
one of the twenty standard amino acids.

Names that are not standard are looked up in a table of chemically modified
residues (selenomethionine, phosphoserine and hundreds of others). A
modified residue resolves to the standard residue it derives from, and keeps
the name it was observed with. Anything else resolves to the unknown amino
acid, with ID 0 and one letter code 'X'.

Lookup only fails when it is handed something that cannot be a three letter
code at all.
*/
package amino
