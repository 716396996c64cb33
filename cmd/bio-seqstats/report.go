package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/seqlab/bio/encoding/fasta"
	"github.com/seqlab/bio/encoding/fastq"
	"github.com/seqlab/bio/encoding/sam"
	"github.com/seqlab/bio/encoding/vcf"
	"github.com/seqlab/bio/interval"
)

func fastaReport(ctx context.Context, w io.Writer, path string) (err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, in, &err)
	stats, err := fasta.ReadStats(fasta.NewScanner(in.Reader(ctx)))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Sequences: %d\n", stats.Count)
	fmt.Fprintf(w, "Mean length: %.2f bp\n", stats.MeanLen())
	return nil
}

func fastqReport(ctx context.Context, w io.Writer, path string) (err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, in, &err)
	stats, err := fastq.ReadStats(fastq.NewScanner(in.Reader(ctx)))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Reads: %d\n", stats.Count)
	fmt.Fprintf(w, "Mean length: %.2f bp\n", stats.MeanLen())

	fmt.Fprintf(w, "\nLength distribution:\n")
	lengths := make([]int, 0, len(stats.LengthDist))
	for n := range stats.LengthDist {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)
	tsvw := tsv.NewWriter(w)
	tsvw.WriteString("LENGTH\tREADS")
	if err = tsvw.EndLine(); err != nil {
		return err
	}
	for _, n := range lengths {
		tsvw.WriteString(strconv.Itoa(n))
		tsvw.WriteString(strconv.FormatInt(stats.LengthDist[n], 10))
		if err = tsvw.EndLine(); err != nil {
			return err
		}
	}
	if err = tsvw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nPer-base stats:\n")
	tsvw = tsv.NewWriter(w)
	tsvw.WriteString("POS\tMEAN_QUAL\tA\tC\tG\tT\tN")
	if err = tsvw.EndLine(); err != nil {
		return err
	}
	for i, p := range stats.Positions() {
		tsvw.WriteString(strconv.Itoa(i + 1))
		tsvw.WriteString(strconv.FormatFloat(p.MeanQual(), 'f', 2, 64))
		for _, n := range []int64{p.Content.A, p.Content.C, p.Content.G, p.Content.T, p.Content.N} {
			tsvw.WriteString(strconv.FormatInt(n, 10))
		}
		if err = tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}

func samReport(ctx context.Context, w io.Writer, path, region string, skipInvalid bool) (err error) {
	opts := sam.ReaderOpts{SkipInvalid: skipInvalid}
	in, err := file.Open(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, in, &err)
	r := sam.NewReader(in.Reader(ctx), opts)
	stats, err := sam.ReadStats(r)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Header groups:\n")
	for _, g := range r.Header().Groups() {
		fmt.Fprintf(w, "%s (%d):\n", g.Tag, len(g.Lines))
		for _, line := range g.Lines {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	fmt.Fprintf(w, "\nAlignments: %d\n", stats.Alignments)

	fmt.Fprintf(w, "\nChromosome stats:\n")
	tsvw := tsv.NewWriter(w)
	tsvw.WriteString("CHROM\tCOUNT\tMIN_POS\tMAX_POS")
	if err = tsvw.EndLine(); err != nil {
		return err
	}
	for _, cs := range stats.Chroms {
		tsvw.WriteString(cs.Chrom)
		tsvw.WriteString(strconv.FormatInt(cs.Count, 10))
		tsvw.WriteString(strconv.FormatInt(int64(cs.MinPos), 10))
		tsvw.WriteString(strconv.FormatInt(int64(cs.MaxPos), 10))
		if err = tsvw.EndLine(); err != nil {
			return err
		}
	}
	if err = tsvw.Flush(); err != nil {
		return err
	}
	if region == "" {
		return nil
	}

	// Region queries rescan the file; the reader above is already drained.
	q, err := interval.ParseRegionString(region)
	if err != nil {
		return err
	}
	in2, err := file.Open(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, in2, &err)
	hits, err := interval.FindOverlapping(sam.NewReader(in2.Reader(ctx), opts), q.Chrom, q.Start, q.End)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nAlignments in %s: %d\n", region, len(hits))
	tsvw = tsv.NewWriter(w)
	tsvw.WriteString("QNAME\tCHROM\tSTART\tEND\tCIGAR")
	if err = tsvw.EndLine(); err != nil {
		return err
	}
	for _, e := range hits {
		a := e.(*sam.Alignment)
		tsvw.WriteString(a.Name)
		tsvw.WriteString(a.Ref)
		tsvw.WriteString(strconv.FormatInt(int64(a.Pos), 10))
		tsvw.WriteString(strconv.FormatInt(int64(a.End()), 10))
		tsvw.WriteString(a.Cigar)
		if err = tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}

func vcfReport(ctx context.Context, w io.Writer, path, region string, binSize int64, skipInvalid bool) (err error) {
	opts := vcf.ReaderOpts{SkipInvalid: skipInvalid}
	in, err := file.Open(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, in, &err)
	r := vcf.NewReader(in.Reader(ctx), opts)
	binner, err := interval.NewBinner(interval.PosType(binSize))
	if err != nil {
		return err
	}
	var count int64
	for r.Scan() {
		v := r.Variant()
		binner.Add(v.CHROM, v.Pos, v.Depth)
		count++
	}
	if err = r.Err(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Meta-header groups:\n")
	for _, g := range r.Meta().Groups() {
		fmt.Fprintf(w, "##%s (%d):\n", g.Key, len(g.Lines))
		for _, line := range g.Lines {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	fmt.Fprintf(w, "\nVariants: %d\n", count)

	fmt.Fprintf(w, "\nRegion stats (bin size %d):\n", binSize)
	tsvw := tsv.NewWriter(w)
	tsvw.WriteString("CHROM\tREGION\tTOTAL_DEPTH\tVARIANT_COUNT")
	if err = tsvw.EndLine(); err != nil {
		return err
	}
	for _, bin := range binner.Bins() {
		tsvw.WriteString(bin.Chrom)
		tsvw.WriteString(strconv.FormatInt(int64(bin.RegionStart), 10))
		tsvw.WriteString(strconv.FormatInt(bin.TotalDepth, 10))
		tsvw.WriteString(strconv.FormatInt(bin.Count, 10))
		if err = tsvw.EndLine(); err != nil {
			return err
		}
	}
	if err = tsvw.Flush(); err != nil {
		return err
	}
	if region == "" {
		return nil
	}

	q, err := interval.ParseRegionString(region)
	if err != nil {
		return err
	}
	in2, err := file.Open(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, in2, &err)
	hits, err := interval.FindOverlapping(vcf.NewReader(in2.Reader(ctx), opts), q.Chrom, q.Start, q.End)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nVariants in %s: %d\n", region, len(hits))
	tsvw = tsv.NewWriter(w)
	tsvw.WriteString("CHROM\tPOS\tREF\tALT")
	if err = tsvw.EndLine(); err != nil {
		return err
	}
	for _, e := range hits {
		v := e.(*vcf.Variant)
		tsvw.WriteString(v.CHROM)
		tsvw.WriteString(strconv.FormatInt(int64(v.Pos), 10))
		tsvw.WriteString(v.Ref)
		tsvw.WriteString(v.Alt)
		if err = tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}
