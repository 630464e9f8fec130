// Command kernelinfo prints the weight tables of the kernel generators and
// can probe the named filters on a synthetic test image.
//
// Usage:
//
//	kernelinfo [flags] [kernel-name ...]
//
// Without arguments it prints every known kernel at the requested size.
//
// Examples:
//
//	kernelinfo gaussian
//	kernelinfo -size 5 sobel-h sobel-v
//	kernelinfo -size 7 -sigma 2 gaussian
//	kernelinfo -single-norm laplacian
//	kernelinfo -probe -size 5
//	kernelinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/golang/glog"

	"github.com/cwbudde/algo-raster/core"
	"github.com/cwbudde/algo-raster/filter"
	"github.com/cwbudde/algo-raster/kernel"
	"github.com/cwbudde/algo-raster/raster"
)

type kernelEntry struct {
	name  string
	build func(size int, opts []kernel.Option) (*kernel.Kernel, error)
}

var registry = []kernelEntry{
	{"gaussian", func(size int, opts []kernel.Option) (*kernel.Kernel, error) { return kernel.Gaussian(size, opts...) }},
	{"laplacian", func(size int, opts []kernel.Option) (*kernel.Kernel, error) { return kernel.Laplacian(size, opts...) }},
	{"sobel-h", func(size int, opts []kernel.Option) (*kernel.Kernel, error) {
		return kernel.Sobel(size, kernel.Horizontal, opts...)
	}},
	{"sobel-v", func(size int, opts []kernel.Option) (*kernel.Kernel, error) {
		return kernel.Sobel(size, kernel.Vertical, opts...)
	}},
	{"box", func(size int, _ []kernel.Option) (*kernel.Kernel, error) { return kernel.Box(size) }},
	{"identity", func(size int, _ []kernel.Option) (*kernel.Kernel, error) { return kernel.Identity(size) }},
}

func main() {
	size := flag.Int("size", 3, "kernel size (odd)")
	sigma := flag.Float64("sigma", kernel.DefaultSigma, "gaussian standard deviation")
	singleNorm := flag.Bool("single-norm", false, "skip the extra (size²-1) division of laplacian and sobel")
	list := flag.Bool("list", false, "list available kernel names")
	probe := flag.Bool("probe", false, "run every named filter on a synthetic image and print a summary")
	probeRows := flag.Int("probe-rows", 64, "rows of the synthetic probe image")
	probeCols := flag.Int("probe-cols", 64, "columns of the synthetic probe image")
	workers := flag.Int("workers", 0, "concurrent row bands (0 = one per CPU)")
	strategy := flag.String("strategy", "direct", "weighted-sum strategy: direct, fft or auto")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kernelinfo [flags] [kernel-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints generated filter kernels and probes filters on a synthetic image.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints every kernel at the requested size.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo gaussian\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -size 5 sobel-h sobel-v\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -probe -size 5 -strategy fft\n")
		fmt.Fprintf(os.Stderr, "  kernelinfo -list\n")
	}
	flag.Parse()
	defer glog.Flush()

	if *list {
		printList()
		return
	}

	if *probe {
		strat, err := parseStrategy(*strategy)
		if err != nil {
			glog.Exitf("kernelinfo: %v", err)
		}
		popts := []core.ProcessorOption{core.WithStrategy(strat), core.WithWorkers(*workers)}
		if err := printProbe(os.Stdout, filter.Names(), *probeRows, *probeCols, *size, popts); err != nil {
			glog.Exitf("kernelinfo: %v", err)
		}
		return
	}

	var kopts []kernel.Option
	kopts = append(kopts, kernel.WithSigma(*sigma))
	if *singleNorm {
		kopts = append(kopts, kernel.WithSingleNormalization())
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching kernels\n")
		os.Exit(1)
	}

	failed := false
	for _, e := range entries {
		k, err := e.build(*size, kopts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			failed = true
			continue
		}
		glog.V(1).Infof("built %s kernel: size=%d span=%d", e.name, k.Size(), k.Span())
		if err := printKernel(os.Stdout, e.name, k); err != nil {
			glog.Exitf("kernelinfo: failed to write output: %v", err)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []kernelEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]kernelEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []kernelEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown kernel %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func parseStrategy(s string) (core.Strategy, error) {
	for _, st := range []core.Strategy{core.StrategyDirect, core.StrategyFFT, core.StrategyAuto} {
		if strings.EqualFold(s, st.String()) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

func printKernel(w io.Writer, name string, k *kernel.Kernel) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "%s (%dx%d)\t\n", name, k.Size(), k.Size()); err != nil {
		return err
	}
	for _, row := range k.Rows() {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprintf("%.6g", v)
		}
		if _, err := fmt.Fprintf(tw, "%s\t\n", strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range k.Weights() {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	_, err := fmt.Fprintf(w, "sum=%.6g min=%.6g max=%.6g\n\n", k.Sum(), lo, hi)
	return err
}

// probeImage builds a 3-channel image with a bright square on a diagonal
// ramp so every filter has edges and texture to respond to.
func probeImage(rows, cols int) (*raster.Image, error) {
	img, err := raster.New(rows, cols, raster.RGB)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			for c := 0; c < raster.RGB; c++ {
				v := (i + j + 16*c) % 128
				if i >= rows/4 && i < 3*rows/4 && j >= cols/4 && j < 3*cols/4 {
					v += 120
				}
				img.Set(i, j, c, uint8(v))
			}
		}
	}
	return img, nil
}

func printProbe(w io.Writer, names []string, rows, cols, size int, opts []core.ProcessorOption) error {
	img, err := probeImage(rows, cols)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Filter\tSize\tMean\tMin\tMax\tTime\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t----\t---\t---\t----\n"); err != nil {
		return err
	}

	for _, name := range names {
		f, err := filter.ByName(name)
		if err != nil {
			if _, werr := fmt.Fprintf(tw, "%s\t%d\terror: %v\t\t\t\n", name, size, err); werr != nil {
				return werr
			}
			continue
		}
		start := time.Now()
		out, err := f(img, size, opts...)
		elapsed := time.Since(start)
		if err != nil {
			if _, werr := fmt.Fprintf(tw, "%s\t%d\terror: %v\t\t\t\n", name, size, err); werr != nil {
				return werr
			}
			continue
		}
		glog.V(1).Infof("probe %s size=%d took %v", name, size, elapsed)

		mean, lo, hi := stats(out)
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.2f\t%d\t%d\t%v\n", name, size, mean, lo, hi, elapsed.Round(time.Microsecond)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func stats(img *raster.Image) (mean float64, lo, hi uint8) {
	lo = math.MaxUint8
	sum := 0
	for _, v := range img.Pix {
		sum += int(v)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return float64(sum) / float64(len(img.Pix)), lo, hi
}
