/*
Package fasta writes sequences in the FASTA format described by NCBI:
http://blast.ncbi.nlm.nih.gov/blastcgihelp.shtml

Each sequence is written as a '>' header line holding its name, followed by
its residues wrapped at a fixed number of columns.
*/
package fasta
