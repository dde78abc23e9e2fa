// Package aoc are quick & dirty utilities for helping Maisem
// solve Advent of Code problems. (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// Log is the runner's logger. It is raised to debug level by -debug or by
// log_level in the config file.
var Log = logrus.New()

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{want: m[1], input: m[2]}, true
	}
	return sample{}, false
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without input reuses
// the input of the previous one.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	cfg     *Config
	solver  partSolver
	samples map[string]sample
}

// Config returns the configuration the puzzle is running with.
func (p *Puzzle) Config() *Config {
	if p.cfg == nil {
		return &Config{}
	}
	return p.cfg
}

// Log returns a logger tagged with the day, part and mode being run.
func (p *Puzzle) Log() *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"day":    p.day.day,
		"part":   p.solver.Part,
		"sample": p.SampleMode,
	})
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	name := filepath.Join(p.Config().InputDirOrDefault(), fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.day.day))
	return fileOrFetch(name, fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input along with its row number,
// starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		Log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Debug(v ...any) {
	p.Log().Debug(v...)
}

// Debugf logs at debug level, but only while running the sample; real inputs
// are usually too noisy.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.Log().Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		Log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("method %s: got %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagConfig     string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagConfig, "config", "", "path to an optional YAML config file")
}

var initFlags = sync.OnceFunc(flag.Parse)

func runDay(slvr any, year int, day day, samples map[string]sample, cfg *Config) {
	p := Puzzle{
		year:    year,
		day:     day,
		cfg:     cfg,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

// Run solves every registered day of year, or only the one picked with -day.
// src is the solver's own source, used to extract samples.
func Run(year int, src []byte, slvr any) {
	initFlags()
	cfg, err := loadRunConfig()
	if err != nil {
		Log.Fatal(err)
	}
	samples, err := extractSamples(src)
	if err != nil {
		Log.Fatal(err)
	}
	days, err := extractMethods(slvr)
	if err != nil {
		Log.Fatal(err)
	}

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			Log.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples, cfg)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples, cfg)
		fmt.Println()
	}
}

// loadRunConfig loads the -config file, if any, and applies its log level.
// -debug wins over the file.
func loadRunConfig() (*Config, error) {
	cfg := &Config{}
	if flagConfig != "" {
		var err error
		if cfg, err = LoadConfig(flagConfig); err != nil {
			return nil, err
		}
	}
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if flagDebug {
		lvl = logrus.DebugLevel
	}
	Log.SetLevel(lvl)
	return cfg, nil
}

var session = sync.OnceValue(func() string {
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	return req
}

func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	res := MustGet(http.DefaultClient.Do(request("GET", url, nil)))
	defer res.Body.Close()
	if res.StatusCode != 200 {
		Log.WithFields(logrus.Fields{
			"url":    url,
			"status": res.Status,
		}).Fatal("bad status fetching input")
	}
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		Log.Fatalf("bad prefix: %q", s)
	}
	return s1
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
