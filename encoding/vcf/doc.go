/*Package vcf parses plain-text VCF files: "##" meta-header lines grouped by
  key, and data lines reduced to the eight mandatory columns plus the DP
  (read depth) annotation extracted from INFO.  Variants are point records —
  End equals Pos — and implement interval.Entry, so they feed the same
  overlap and binning engines as SAM alignments.  Multi-sample genotype
  columns and compressed input are out of scope.
*/
package vcf
