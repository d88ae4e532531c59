package main

// Annotate variant sites with statistics of the reads piled up on them,
// such as the fraction of N bases in SOLiD reads.

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/biogo/hts/sam"
	"github.com/taeyoungh/gatk"
	"github.com/taeyoungh/gatk/annotation"
	"github.com/taeyoungh/gatk/pileup"
	"github.com/taeyoungh/gatk/vcf"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/cheggaaa/pb.v1"
)

var (
	INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WARN = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
)

func main() {
	var cfg cmdConfig
	var flags cmdFlags

	// Parse command arguments.
	app := kingpin.New("nbase", "Annotate variant sites with pileup statistics")
	app.Version("v0.1")
	app.Arg("bamfile", "bam file").Required().StringVar(&cfg.bamFile)
	app.Arg("outfile", "output vcf file").Required().StringVar(&cfg.outFile)
	app.Flag("sites", "sites file (chrom, pos, ref, alt)").Default("").StringVar(&cfg.sitesFile)
	app.Flag("sam", "input is a sam file").Default("false").BoolVar(&cfg.sam)
	app.Flag("progress", "show progress").Default("false").BoolVar(&cfg.progress)
	app.Flag("config", "configure file name").Default("config").StringVar(&flags.config)
	app.Flag("workspace", "directory of the configure file").Default(".").StringVar(&flags.workspace)
	app.Flag("annotations", "comma separated annotations").Default("").StringVar(&flags.annotations)
	app.Flag("min-map-qual", "min mapping quality").Default("-1").IntVar(&flags.minMapQual)
	app.Flag("min-base-qual", "min base quality").Default("-1").IntVar(&flags.minBaseQual)
	app.Flag("sample", "sample of reads without a read group sample").Default("").StringVar(&flags.sample)
	app.Flag("ncpu", "number of CPUs").Default("0").IntVar(&flags.ncpu)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	registerLogger()
	if err := parseConfig(&cfg, flags); err != nil {
		log.Fatalln(err)
	}
	runtime.GOMAXPROCS(cfg.ncpu)

	if err := run(cfg); err != nil {
		log.Fatalln(err)
	}
}

func registerLogger() {
	gatk.Info = INFO
	gatk.Warn = WARN
}

// newProgressBar returns a bar over the sites, or a plain counter when
// every column is annotated and the total is unknown.
func newProgressBar(bounded bool, total int) *pb.ProgressBar {
	pbar := pb.New(total)
	if !bounded {
		pbar.ShowBar = false
		pbar.ShowPercent = false
		pbar.ShowTimeLeft = false
	}
	return pbar
}

func run(cfg cmdConfig) error {
	annotations, err := annotation.New(cfg.annotations...)
	if err != nil {
		return fmt.Errorf("%v (available: %v)", err, annotation.Names())
	}

	var sites []vcf.Record
	if cfg.sitesFile != "" {
		sites, err = gatk.ReadSitesFile(cfg.sitesFile)
		if err != nil {
			return err
		}
		INFO.Printf("read %d sites from %s\n", len(sites), cfg.sitesFile)
	}

	var in *gatk.AlignmentFile
	if cfg.sam {
		in, err = gatk.OpenSam(cfg.bamFile)
	} else {
		in, err = gatk.OpenBam(cfg.bamFile, 0)
	}
	if err != nil {
		return err
	}
	defer in.Close()

	header := in.Header()
	groups := pileup.ReadGroupsFromHeader(header)
	opts := pileup.DefaultOptions()
	opts.MinMapQual = byte(cfg.minMapQual)
	opts.MinBaseQual = byte(cfg.minBaseQual)
	opts.DefaultSample = cfg.sample

	// Stream sorted input, sort anything else in memory.
	var records chan *sam.Record
	var errc chan error
	if header.SortOrder == sam.Coordinate {
		records, errc = in.Stream()
	} else {
		WARN.Printf("%s is not coordinate sorted, sorting in memory\n", cfg.bamFile)
		all, err := in.ReadAll()
		if err != nil {
			return err
		}
		records = gatk.SortedRecords(all)
	}
	columns := pileup.Pileup(records, groups, opts)

	annotator := gatk.Annotator{Annotations: annotations, NCPU: cfg.ncpu}
	if cfg.progress {
		pbar := newProgressBar(cfg.sitesFile != "", len(sites))
		pbar.Start()
		defer pbar.Finish()
		annotator.Progress = func() { pbar.Increment() }
	}
	var annotated []*vcf.Record
	if cfg.sitesFile != "" {
		annotated = annotator.AnnotateSites(columns, sites)
	} else {
		annotated = annotator.AnnotateColumns(columns)
	}
	if errc != nil {
		if err := <-errc; err != nil {
			return err
		}
	}

	w, err := os.Create(cfg.outFile)
	if err != nil {
		return err
	}
	defer w.Close()

	vw := vcf.NewWriter(w, gatk.HeaderLines(annotations))
	if err := vw.WriteHeader(nil); err != nil {
		return err
	}
	collector := gatk.NewCollector()
	for _, rec := range annotated {
		if err := vw.Write(rec); err != nil {
			return err
		}
		collector.Add(rec)
	}
	if err := vw.Flush(); err != nil {
		return err
	}
	INFO.Printf("%d records were saved to %s\n", len(annotated), cfg.outFile)

	for _, s := range collector.Summaries() {
		INFO.Printf("%s: n=%d mean=%g sd=%g\n", s.Key, s.N, s.Mean, s.StdDev)
	}

	return w.Close()
}
