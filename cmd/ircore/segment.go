package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"ircore/internal/ident"
	"ircore/internal/ircfg"
	"ircore/internal/ir"
)

var segmentCmd = &cobra.Command{
	Use:   "segment <manifest.toml> <first> <last>",
	Short: "List the CommonJS modules reachable from a segment range",
	Args:  cobra.ExactArgs(3),
	RunE:  runSegment,
}

func init() {
	segmentCmd.Flags().Bool("all", false, "report every segment present in the manifest, concurrently")
}

func runSegment(cmd *cobra.Command, args []string) error {
	manifest, err := ircfg.Load(args[0])
	if err != nil {
		return err
	}

	idents := ident.NewContext()
	m := ir.NewModule(idents)
	functions := make(map[string]*ir.Function, len(manifest.Module))
	for _, e := range manifest.Module {
		functions[e.Name] = ir.NewFunction(m, idents.GetIdentifier(e.Name), ir.DefinitionKindNormal, false, ir.SourceRange{}, nil, nil)
	}
	if err := ircfg.PopulateCJSModules(m, idents, manifest, functions); err != nil {
		return err
	}

	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	if all {
		return runAllSegments(m, manifest)
	}

	var first, last int
	if _, err := fmt.Sscanf(args[1], "%d", &first); err != nil {
		return fmt.Errorf("parsing first segment id: %w", err)
	}
	if _, err := fmt.Sscanf(args[2], "%d", &last); err != nil {
		return fmt.Errorf("parsing last segment id: %w", err)
	}
	r, ok := segmentIDsToListRange(manifest, first, last)
	if !ok {
		printSegmentReport(first, last, nil)
		return nil
	}
	printSegmentReport(first, last, m.GetFunctionsInSegment(r))
	return nil
}

// segmentIDsToListRange translates a bundler-assigned segment ID range
// into the registration-order list-position range ir.SegmentRange
// actually operates over (see ir.GetFunctionsInSegment): the span from
// the first to the last manifest entry, by position, whose Segment ID
// falls in [first,last]. ok is false if no entry's segment ID is in
// range.
func segmentIDsToListRange(manifest *ircfg.Manifest, first, last int) (ir.SegmentRange, bool) {
	lo, hi := -1, -1
	for i, e := range manifest.Module {
		id := e.SegmentInt()
		if id < first || id > last {
			continue
		}
		if lo == -1 {
			lo = i
		}
		hi = i
	}
	if lo == -1 {
		return ir.SegmentRange{}, false
	}
	return ir.SegmentRange{First: lo, Last: hi}, true
}

// runAllSegments reports on every distinct segment ID in the manifest
// concurrently. The module's use graph is built by one query before the
// fan-out, so the concurrent queries only read from the module and this
// is safe without locking.
func runAllSegments(m *ir.Module, manifest *ircfg.Manifest) error {
	seen := make(map[int]bool)
	var ids []int
	for _, e := range manifest.Module {
		id := e.SegmentInt()
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	m.GetFunctionsInSegment(ir.SegmentRange{First: 0, Last: -1})

	results := make([][]*ir.Function, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			r, ok := segmentIDsToListRange(manifest, id, id)
			if !ok {
				return nil
			}
			results[i] = m.GetFunctionsInSegment(r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, id := range ids {
		printSegmentReport(id, id, results[i])
	}
	return nil
}

func printSegmentReport(first, last int, fns []*ir.Function) {
	names := make([]string, len(fns))
	for i, f := range fns {
		names[i] = f.InternalName()
	}
	sort.Strings(names)
	fmt.Printf("segment [%d,%d]: %v\n", first, last, names)
}
