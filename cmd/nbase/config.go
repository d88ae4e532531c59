package main

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"github.com/taeyoungh/gatk/annotation"
)

// Config of a run. Flags override the configure file.
type cmdConfig struct {
	bamFile   string // input bam or sam file.
	outFile   string // output vcf file.
	sitesFile string // sites to annotate, all covered positions if empty.
	sam       bool   // input is SAM text.
	progress  bool   // show progress.

	annotations []string // annotation names.
	minMapQual  int      // min mapping quality.
	minBaseQual int      // min base quality.
	sample      string   // sample of reads without a read group sample.
	ncpu        int      // number of CPUs for using.
}

// cmdFlags holds flag values; negative numbers and empty strings mean unset.
type cmdFlags struct {
	config      string
	workspace   string
	annotations string
	minMapQual  int
	minBaseQual int
	sample      string
	ncpu        int
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("annotations", []string{annotation.NBaseCountName})
	v.SetDefault("min-map-qual", 0)
	v.SetDefault("min-base-qual", 0)
	v.SetDefault("sample", "")
	v.SetDefault("ncpu", 0)
	return v
}

// parseConfig reads the configure file, if any, and applies flags over it.
func parseConfig(cfg *cmdConfig, flags cmdFlags) error {
	v := newViper()
	v.SetConfigName(flags.config)
	v.AddConfigPath(flags.workspace)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		WARN.Printf("no configure file %s in %s, using defaults\n", flags.config, flags.workspace)
	} else {
		INFO.Printf("read configure file %s\n", v.ConfigFileUsed())
	}

	if flags.annotations != "" {
		v.Set("annotations", strings.Split(flags.annotations, ","))
	}
	if flags.minMapQual >= 0 {
		v.Set("min-map-qual", flags.minMapQual)
	}
	if flags.minBaseQual >= 0 {
		v.Set("min-base-qual", flags.minBaseQual)
	}
	if flags.sample != "" {
		v.Set("sample", flags.sample)
	}
	if flags.ncpu > 0 {
		v.Set("ncpu", flags.ncpu)
	}

	cfg.annotations = nil
	for _, name := range v.GetStringSlice("annotations") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.annotations = append(cfg.annotations, name)
		}
	}
	if len(cfg.annotations) == 0 {
		return errors.New("no annotations configured")
	}
	cfg.minMapQual = v.GetInt("min-map-qual")
	cfg.minBaseQual = v.GetInt("min-base-qual")
	if cfg.minMapQual < 0 || cfg.minMapQual > 255 || cfg.minBaseQual < 0 || cfg.minBaseQual > 255 {
		return errors.New("qualities must be within 0 and 255")
	}
	cfg.sample = v.GetString("sample")
	if cfg.sample == "" {
		base := filepath.Base(cfg.bamFile)
		cfg.sample = strings.TrimSuffix(base, filepath.Ext(base))
	}
	cfg.ncpu = v.GetInt("ncpu")
	if cfg.ncpu <= 0 {
		cfg.ncpu = runtime.NumCPU()
	}

	return nil
}
