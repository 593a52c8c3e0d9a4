package catalog

import (
	"context"
	"sort"
	"testing"

	"github.com/stitchline/storefront/internal/db"
	"github.com/stitchline/storefront/internal/domain/product"
)

// fakeStore is an in-memory stand-in for the document store. JSON.GET
// with the "$" path wraps documents in a one-element array, so reads
// reproduce that shape.
type fakeStore struct {
	docs  map[string][]byte
	zsets map[string][]zentry
}

type zentry struct {
	member string
	score  float64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:  make(map[string][]byte),
		zsets: make(map[string][]zentry),
	}
}

func (f *fakeStore) JSONSet(_ context.Context, key, _ string, data []byte) error {
	f.docs[key] = append([]byte(nil), data...)
	return nil
}

func (f *fakeStore) JSONGet(_ context.Context, key string, _ ...string) ([]byte, error) {
	data, ok := f.docs[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return wrap(data), nil
}

func (f *fakeStore) JSONGetMulti(_ context.Context, keys []string, _ string) ([][]byte, error) {
	out := make([][]byte, len(keys))
	for i, key := range keys {
		if data, ok := f.docs[key]; ok {
			out[i] = wrap(data)
		}
	}
	return out, nil
}

func (f *fakeStore) Del(_ context.Context, key string) error {
	delete(f.docs, key)
	return nil
}

func (f *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.docs[key]
	return ok, nil
}

func (f *fakeStore) ZAdd(_ context.Context, key string, score float64, member string) error {
	entries := f.zsets[key]
	for i := range entries {
		if entries[i].member == member {
			entries[i].score = score
			f.resort(key, entries)
			return nil
		}
	}
	f.resort(key, append(entries, zentry{member: member, score: score}))
	return nil
}

func (f *fakeStore) resort(key string, entries []zentry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score < entries[j].score
	})
	f.zsets[key] = entries
}

func (f *fakeStore) ZRem(_ context.Context, key string, members ...string) error {
	entries := f.zsets[key]
	keep := entries[:0]
	for _, e := range entries {
		removed := false
		for _, m := range members {
			if e.member == m {
				removed = true
				break
			}
		}
		if !removed {
			keep = append(keep, e)
		}
	}
	f.zsets[key] = keep
	return nil
}

func (f *fakeStore) ZRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	return sliceRange(f.zsets[key], start, stop, false), nil
}

func (f *fakeStore) ZRevRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	return sliceRange(f.zsets[key], start, stop, true), nil
}

func (f *fakeStore) ZCard(_ context.Context, key string) (int64, error) {
	return int64(len(f.zsets[key])), nil
}

func sliceRange(entries []zentry, start, stop int64, reverse bool) []string {
	n := int64(len(entries))
	if stop < 0 {
		stop = n + stop
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || n == 0 {
		return nil
	}

	out := make([]string, 0, stop-start+1)
	for i := start; i <= stop; i++ {
		idx := i
		if reverse {
			idx = n - 1 - i
		}
		out = append(out, entries[idx].member)
	}
	return out
}

func wrap(data []byte) []byte {
	out := make([]byte, 0, len(data)+2)
	out = append(out, '[')
	out = append(out, data...)
	return append(out, ']')
}

func newTestRepo() (*Repo, *fakeStore) {
	fs := newFakeStore()
	return New(fs), fs
}

func testProduct(t *testing.T, id, name string, stock int, createdAt int64) product.Product {
	t.Helper()
	p, err := product.New(id, name, "Description of "+name+".", "Men", 999, stock)
	if err != nil {
		t.Fatalf("product.New: %v", err)
	}
	return p.WithCreatedAt(createdAt)
}
