package order

import (
	"context"
	"sort"
	"testing"

	"github.com/stitchline/storefront/internal/db"
	domorder "github.com/stitchline/storefront/internal/domain/order"
)

// fakeStore is an in-memory stand-in for the document store. JSON.GET
// with the "$" path wraps documents in a one-element array.
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

func (f *fakeStore) ZRevRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	entries := f.zsets[key]
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
		return nil, nil
	}

	out := make([]string, 0, stop-start+1)
	for i := start; i <= stop; i++ {
		out = append(out, entries[n-1-i].member)
	}
	return out, nil
}

func (f *fakeStore) ZCard(_ context.Context, key string) (int64, error) {
	return int64(len(f.zsets[key])), nil
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

func testOrder(t *testing.T, id, userID string, createdAt int64, productIDs ...string) domorder.Order {
	t.Helper()
	items := make([]domorder.LineItem, len(productIDs))
	for i, pid := range productIDs {
		items[i] = domorder.LineItem{ProductID: pid, Quantity: 1, UnitPrice: 100}
	}
	o, err := domorder.New(id, userID, items, domorder.Address{City: "Bengaluru"}, "card")
	if err != nil {
		t.Fatalf("order.New: %v", err)
	}
	return o.WithTotal(float64(100 * len(items))).WithCreatedAt(createdAt)
}
