/*Package interval implements region-overlap queries and fixed-window
  aggregation over streams of genomic records (SAM alignments, VCF variants).
  Records carry 1-based inclusive [start, end] coordinates as produced by the
  text formats themselves; no cross-chromosome ordering is assumed and no
  acceleration index is built — queries are linear scans over the stream,
  preserving input order.
*/
package interval
