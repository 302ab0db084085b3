// Package main provides the hessad CLI: it evaluates YAML problem files with
// forward-mode second-order derivatives and checks them against finite
// differences.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/born-ml/hessad/internal/problem"
	"github.com/fatih/color"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

const version = "v0.1.0"

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "hessad %s\n", version)
		return exitOK
	case "list":
		for _, name := range problem.Names() {
			e, _ := problem.Lookup(name)
			var modes []string
			for _, m := range []problem.Mode{problem.Static, problem.Dynamic} {
				if e.Supports(m) {
					modes = append(modes, string(m))
				}
			}
			fmt.Fprintf(stdout, "%-12s arity=%d modes=%s\n", name, e.Arity, strings.Join(modes, ","))
		}
		return exitOK
	case "eval":
		return runEval(args[1:], stdout, stderr)
	case "check":
		return runCheck(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	}

	fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
	usage(stderr)
	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "hessad %s - forward-mode gradients and Hessians\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  eval    -problem FILE [-mode static|dynamic] [-hessian] [-workers N] [-dev]")
	fmt.Fprintln(w, "  check   -problem FILE [-mode static|dynamic] [-workers N] [-dev]")
	fmt.Fprintln(w, "  list    Show built-in objectives")
	fmt.Fprintln(w, "  version Show version")
}

// options are the flags shared by eval and check.
type options struct {
	path    string
	mode    string
	workers int
	dev     bool
	hessian bool
}

func parseFlags(name string, args []string, stderr io.Writer, withHessian bool) (*options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{workers: -1}
	fs.StringVar(&o.path, "problem", "", "problem YAML file (required)")
	fs.StringVar(&o.mode, "mode", "", "override sizing mode: static or dynamic")
	fs.IntVar(&o.workers, "workers", -1, "override worker count (0 = CPU count)")
	fs.BoolVar(&o.dev, "dev", false, "development logging (console, debug level)")
	if withHessian {
		fs.BoolVar(&o.hessian, "hessian", false, "print the dense Hessian")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.path == "" {
		return nil, errors.New("-problem is required")
	}
	return o, nil
}

// load reads the problem file and applies flag overrides.
func load(o *options, log *zap.Logger) (*problem.Problem, error) {
	p, err := problem.Load(o.path)
	if err != nil {
		return nil, err
	}
	if o.mode != "" {
		p.Mode = problem.Mode(o.mode)
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	if o.workers >= 0 {
		p.Workers = o.workers
	}

	log.Info("problem loaded",
		zap.String("name", p.Name),
		zap.String("objective", p.Objective),
		zap.String("mode", string(p.Mode)),
		zap.Int("variables", len(p.X)),
		zap.Int("elements", len(p.Elements)),
	)
	return p, nil
}

func runEval(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags("eval", args, stderr, true)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	log := newLogger(o.dev, stderr)
	defer func() { _ = log.Sync() }()

	p, err := load(o, log)
	if err != nil {
		log.Error("load failed", zap.String("path", o.path), zap.Error(err))
		return exitFail
	}

	start := time.Now()
	res, h, err := p.Evaluate()
	if err != nil {
		log.Error("evaluation failed", zap.Error(err))
		return exitFail
	}
	log.Debug("evaluated",
		zap.Float64("value", res.Value),
		zap.Int("triplets", len(res.Triplets)),
		zap.Duration("elapsed", time.Since(start)),
	)

	label := color.New(color.Bold)
	label.Fprintf(stdout, "%-9s", "problem")
	fmt.Fprintf(stdout, "%s (%s, %s, %d variables, %d elements)\n",
		p.Name, p.Objective, p.Mode, len(p.X), len(p.Elements))
	label.Fprintf(stdout, "%-9s", "value")
	fmt.Fprintf(stdout, "%.10g\n", res.Value)
	label.Fprintf(stdout, "%-9s", "gradient")
	fmt.Fprintf(stdout, "%v\n", res.Gradient)
	if o.hessian {
		label.Fprintf(stdout, "%-9s", "hessian")
		fmt.Fprintf(stdout, "%v\n", mat.Formatted(h, mat.Prefix(strings.Repeat(" ", 9)), mat.Squeeze()))
	}
	return exitOK
}

func runCheck(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags("check", args, stderr, false)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	log := newLogger(o.dev, stderr)
	defer func() { _ = log.Sync() }()

	p, err := load(o, log)
	if err != nil {
		log.Error("load failed", zap.String("path", o.path), zap.Error(err))
		return exitFail
	}

	start := time.Now()
	r, err := p.Verify()
	if err != nil {
		log.Error("check failed", zap.Error(err))
		return exitFail
	}
	log.Debug("finite differences computed",
		zap.Float64("step", p.Check.Step),
		zap.Duration("elapsed", time.Since(start)),
	)

	fmt.Fprintf(stdout, "%-15s %.3e\n", "gradient error", r.GradientError)
	fmt.Fprintf(stdout, "%-15s %.3e\n", "hessian error", r.HessianError)
	fmt.Fprintf(stdout, "%-15s %.3e\n", "tolerance", r.Tolerance)

	if !r.Passed() {
		color.New(color.FgRed, color.Bold).Fprintf(stdout, "FAIL")
		fmt.Fprintf(stdout, " %s\n", p.Name)
		log.Warn("derivatives disagree with finite differences",
			zap.String("name", p.Name),
			zap.Float64("gradient_error", r.GradientError),
			zap.Float64("hessian_error", r.HessianError),
		)
		return exitFail
	}
	color.New(color.FgGreen, color.Bold).Fprintf(stdout, "PASS")
	fmt.Fprintf(stdout, " %s\n", p.Name)
	return exitOK
}
