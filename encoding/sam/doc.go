/*Package sam parses plain-text SAM files: header lines grouped by record
  type and alignment lines reduced to the fields needed for region queries
  (read name, chromosome, 1-based position, CIGAR).  The reference span of an
  alignment is derived from its CIGAR string at parse time, so alignments can
  be fed directly to the interval package's overlap and binning engines.
  Binary BAM/CRAM input is out of scope.
*/
package sam
