package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fission-codes/go-tour/config"
	"github.com/fission-codes/go-tour/counter"
	"github.com/fission-codes/go-tour/diagram"
	"github.com/fission-codes/go-tour/roles"
	"github.com/fission-codes/go-tour/stats"
	"github.com/fission-codes/go-tour/util"

	golog "github.com/ipfs/go-log/v2"
)

var log = golog.Logger(config.Subsystem)

// tour runs each demo in order, writing one line per event to out.
type tour struct {
	out  io.Writer
	cfg  config.Config
	opts []counter.Option
}

func (t *tour) section(title string) {
	fmt.Fprintf(t.out, "---- %s ----\n", title)
}

func (t *tour) countToBound() error {
	t.section("Bounded counter")
	return counter.Use(func(c *counter.BoundedCounter) error {
		for v, ok := c.Next(); ok; v, ok = c.Next() {
			fmt.Fprintln(t.out, v)
		}
		return nil
	}, t.opts...)
}

func (t *tour) disposeEarly() error {
	t.section("Early disposal")
	return counter.Use(func(c *counter.BoundedCounter) error {
		c.Next()
		c.Next()
		fmt.Fprintf(t.out, "stopping at %d\n", c.Count())
		return nil
	}, t.opts...)
}

func (t *tour) derivedSum() error {
	t.section("Zipped counters")
	sum, err := counter.ZipProductSum(t.opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "sum of products divisible by 3: %d\n", sum)
	return nil
}

func (t *tour) selectRoles() {
	t.section("Role selection")
	seeds := util.Map(t.cfg.Seeds, func(seed uint8) string { return fmt.Sprint(seed) })
	log.Debugw("selectRoles", "seeds", strings.Join(seeds, ","), "keys", t.cfg.Keys)
	for i, seed := range t.cfg.Seeds {
		person := roles.SelectRole(seed)
		fmt.Fprintf(t.out, "seed %s: %s (%s)\n", seeds[i], person.Name(), strings.Join(roles.Capabilities(person), ", "))
	}
	for _, key := range t.cfg.Keys {
		person := roles.SelectRoleByKey(key)
		fmt.Fprintf(t.out, "key %q: %s (%s)\n", key, person.Name(), strings.Join(roles.Capabilities(person), ", "))
	}
}

func (t *tour) dispatch() error {
	t.section("Capability dispatch")
	bert := roles.NewCollegeStudent("Bert")
	var student roles.CompSciStudent = bert
	fmt.Fprintf(t.out, "dynamic: %s\n", roles.Describe(student))
	fmt.Fprintf(t.out, "static:  %s\n", roles.DescribeStatic(bert))

	description, err := roles.Compare(t.out, bert, roles.NewRustProgrammer("Bob"))
	if err != nil {
		return err
	}
	fmt.Fprintln(t.out, description)
	return nil
}

func (t *tour) run() error {
	steps := []func() error{
		t.countToBound,
		t.disposeEarly,
		t.derivedSum,
		func() error { t.selectRoles(); return nil },
		t.dispatch,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	golog.SetupLogging(cfg.Logging())

	if err := stats.InitDefault(); err != nil {
		log.Errorw("initializing stats", "error", err)
		os.Exit(1)
	}
	t := &tour{
		out:  os.Stdout,
		cfg:  cfg,
		opts: []counter.Option{counter.WithStats(stats.GLOBAL_STATS)},
	}
	var states *diagram.StateDiagrammer
	if cfg.Diagram {
		states = diagram.NewStateDiagrammer("BoundedCounter")
		t.opts = append(t.opts, counter.WithObserver(states))
	}
	if err := t.run(); err != nil {
		log.Errorw("tour failed", "error", err)
		os.Exit(1)
	}
	stats.GLOBAL_REPORTING.Snapshot().Write(stats.GLOBAL_STATS.Logger())
	if states != nil {
		states.End()
		if err := states.Write(os.Stdout); err != nil {
			log.Errorw("writing diagram", "error", err)
			os.Exit(1)
		}
	}
}
