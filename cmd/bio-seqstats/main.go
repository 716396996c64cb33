package main

/*
bio-seqstats summarizes plain-text bioinformatics files.  It detects the
format from the file extension (or -format) and prints the matching report:

  FASTA: sequence count and mean length
  FASTQ: read count, mean length, length distribution, per-base quality and
         base content
  SAM:   header groups, alignment count, per-chromosome stats, and -region
         overlap queries (CIGAR-aware)
  VCF:   meta-header groups, variant count, per-window depth/count stats,
         and -region overlap queries
*/

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

var (
	format      = flag.String("format", "", "Input format: 'fasta', 'fastq', 'sam' or 'vcf'; by default inferred from the file extension")
	region      = flag.String("region", "", "Report records overlapping the given region. Format as <contig ID>:<1-based first pos>-<last pos>, <contig ID>:<1-based pos>, or just <contig ID>; SAM and VCF only")
	binSize     = flag.Int64("bin-size", 1000, "Window size for the VCF per-region depth/count table")
	skipInvalid = flag.Bool("skip-invalid", false, "Skip unparseable SAM/VCF data lines instead of failing on the first one")
)

func seqStatsUsage() {
	fmt.Printf("Usage: %s [OPTIONS] path\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

// detectFormat maps a file extension to a format name, "" when unknown.
// Compressed (.gz) input is not supported.
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".fa", ".fasta", ".fna":
		return "fasta"
	case ".fq", ".fastq":
		return "fastq"
	case ".sam":
		return "sam"
	case ".vcf":
		return "vcf"
	}
	return ""
}

func main() {
	flag.Usage = seqStatsUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("Exactly one positional argument (input path) expected; please check flag syntax: '%s'", strings.Join(flag.Args(), " "))
	}
	path := flag.Arg(0)
	fmtName := *format
	if fmtName == "" {
		fmtName = detectFormat(path)
	}

	ctx := vcontext.Background()
	var err error
	switch fmtName {
	case "fasta":
		err = fastaReport(ctx, os.Stdout, path)
	case "fastq":
		err = fastqReport(ctx, os.Stdout, path)
	case "sam":
		err = samReport(ctx, os.Stdout, path, *region, *skipInvalid)
	case "vcf":
		err = vcfReport(ctx, os.Stdout, path, *region, *binSize, *skipInvalid)
	case "":
		log.Fatalf("Cannot infer the format of %s; pass -format", path)
	default:
		log.Fatalf("Unknown format %q; want 'fasta', 'fastq', 'sam' or 'vcf'", fmtName)
	}
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
}
