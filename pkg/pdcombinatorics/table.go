package pdcombinatorics

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"runtime"
	"sort"
	"strings"

	"github.com/lintang-b-s/ridepool/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TableKey struct {
	Requests   int
	Passengers int
}

// PermutationTable serves precomputed index permutations and enumerates the keys it does not hold.
type PermutationTable struct {
	blocks   map[TableKey][][]int
	fallback PermutationSource
}

func NewPermutationTable(blocks map[TableKey][][]int) *PermutationTable {
	return &PermutationTable{
		blocks:   blocks,
		fallback: NewEnumeratingSource(),
	}
}

func (t *PermutationTable) Indices(nRequests, nPassengers int) IndexIterator {
	perms, ok := t.blocks[TableKey{nRequests, nPassengers}]
	if !ok {
		return t.fallback.Indices(nRequests, nPassengers)
	}
	return &sliceIndexIterator{perms: perms}
}

func (t *PermutationTable) Has(nRequests, nPassengers int) bool {
	_, ok := t.blocks[TableKey{nRequests, nPassengers}]
	return ok
}

// Keys returns the keys held by the table ordered by requests, then passengers.
func (t *PermutationTable) Keys() []TableKey {
	keys := make([]TableKey, 0, len(t.blocks))
	for k := range t.blocks {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

func sortKeys(keys []TableKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Requests != keys[j].Requests {
			return keys[i].Requests < keys[j].Requests
		}
		return keys[i].Passengers < keys[j].Passengers
	})
}

// ReadPermutationTable loads a table file. Each block is a header line "nRequests nDropoffs nPermutations"
// followed by nPermutations lines of space separated indices. A blank permutation line holds no entry.
// Blank lines between blocks are skipped. Files ending in .bz2 are decompressed.
// Any malformed block fails the whole load with util.ErrInvalidTable.
func ReadPermutationTable(path string, log *zap.Logger) (*PermutationTable, error) {
	f, err := util.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	blocks, err := parseTable(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	if err := validateBlocks(blocks); err != nil {
		return nil, err
	}

	table := NewPermutationTable(blocks)
	for _, k := range table.Keys() {
		log.Debug("permutation block loaded",
			zap.Int("requests", k.Requests), zap.Int("passengers", k.Passengers), zap.Int("permutations", len(blocks[k])))
	}
	log.Sugar().Infof("loaded %d permutation blocks from %s", len(blocks), path)
	return table, nil
}

// LoadSource returns the table at path as a PermutationSource. An empty path or a missing file falls back
// to enumeration; a table that exists but cannot be read or validated is an error.
func LoadSource(path string, log *zap.Logger) (PermutationSource, error) {
	if path == "" {
		return NewEnumeratingSource(), nil
	}
	table, err := ReadPermutationTable(path, log)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("permutation table not found, enumerating permutations", zap.String("path", path))
		return NewEnumeratingSource(), nil
	}
	if err != nil {
		return nil, err
	}
	return table, nil
}

func parseTable(br *bufio.Reader) (map[TableKey][][]int, error) {
	blocks := make(map[TableKey][][]int)
	lineNo := 0
	for {
		line, err := util.ReadLine(br)
		if errors.Is(err, io.EOF) {
			return blocks, nil
		}
		if err != nil {
			return nil, err
		}
		lineNo++
		if strings.TrimSpace(line) == "" {
			continue
		}

		header, err := util.ParseInts(line)
		if err != nil || len(header) != 3 || header[0] < 0 || header[1] < 0 || header[2] < 0 {
			return nil, util.WrapErrorf(err, util.ErrInvalidTable, "line %d: bad block header %q", lineNo, line)
		}
		key := TableKey{Requests: header[0], Passengers: header[1]}
		if _, dup := blocks[key]; dup {
			return nil, util.WrapErrorf(nil, util.ErrInvalidTable, "line %d: duplicate block %v", lineNo, key)
		}

		perms := make([][]int, 0, header[2])
		for k := 0; k < header[2]; k++ {
			line, err := util.ReadLine(br)
			if errors.Is(err, io.EOF) {
				return nil, util.WrapErrorf(nil, util.ErrInvalidTable, "block %v: expected %d permutations, got %d",
					key, header[2], k)
			}
			if err != nil {
				return nil, err
			}
			lineNo++
			if strings.TrimSpace(line) == "" {
				continue
			}
			perm, err := util.ParseInts(line)
			if err != nil {
				return nil, util.WrapErrorf(err, util.ErrInvalidTable, "line %d", lineNo)
			}
			perms = append(perms, perm)
		}
		blocks[key] = perms
	}
}

func validateBlocks(blocks map[TableKey][][]int) error {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for key, perms := range blocks {
		key, perms := key, perms
		g.Go(func() error {
			for _, perm := range perms {
				if err := ValidatePermutation(key.Requests, key.Passengers, perm); err != nil {
					return util.WrapErrorf(err, util.ErrInvalidTable, "block %d %d", key.Requests, key.Passengers)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// ValidatePermutation checks that perm is a permutation of 0..2n+m-1 placing every pickup index r
// before its drop-off index n+r.
func ValidatePermutation(nRequests, nPassengers int, perm []int) error {
	size := 2*nRequests + nPassengers
	if len(perm) != size {
		return fmt.Errorf("permutation %v has %d indices, want %d", perm, len(perm), size)
	}
	pos := make([]int, size)
	for k := range pos {
		pos[k] = -1
	}
	for k, idx := range perm {
		if idx < 0 || idx >= size {
			return fmt.Errorf("permutation %v: index %d out of range", perm, idx)
		}
		if pos[idx] >= 0 {
			return fmt.Errorf("permutation %v: index %d repeated", perm, idx)
		}
		pos[idx] = k
	}
	for r := 0; r < nRequests; r++ {
		if pos[r] > pos[nRequests+r] {
			return fmt.Errorf("permutation %v: drop-off %d before pickup %d", perm, nRequests+r, r)
		}
	}
	return nil
}

// WritePermutationTable writes blocks in key order, compressed when path ends in .bz2.
func WritePermutationTable(path string, blocks map[TableKey][][]int) error {
	f, err := util.CreateFile(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	keys := make([]TableKey, 0, len(blocks))
	for k := range blocks {
		keys = append(keys, k)
	}
	sortKeys(keys)

	for _, k := range keys {
		perms := blocks[k]
		fmt.Fprintf(w, "%d %d %d\n", k.Requests, k.Passengers, len(perms))
		for _, perm := range perms {
			for i, idx := range perm {
				if i > 0 {
					fmt.Fprintf(w, " ")
				}
				fmt.Fprintf(w, "%d", idx)
			}
			fmt.Fprintf(w, "\n")
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EnumerateBlocks precomputes the permutations of every key up to maxRequests and maxPassengers.
func EnumerateBlocks(maxRequests, maxPassengers int) map[TableKey][][]int {
	blocks := make(map[TableKey][][]int)
	source := NewEnumeratingSource()
	for n := 0; n <= maxRequests; n++ {
		for m := 0; m <= maxPassengers; m++ {
			if n+m == 0 {
				continue
			}
			it := source.Indices(n, m)
			perms := make([][]int, 0, CountPermutations(n, m))
			for it.HasNext() {
				perms = append(perms, it.Next())
			}
			blocks[TableKey{n, m}] = perms
		}
	}
	return blocks
}
