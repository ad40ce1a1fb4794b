package feed

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zarlcorp/zfake/internal/identity"
	"github.com/zarlcorp/zfake/internal/locale"
)

// offsetGen encodes the seed and offset of each record in its ID.
type offsetGen struct {
	calls int
}

func (g *offsetGen) Batch(opts identity.Options, start int64, n int) []identity.User {
	g.calls++
	users := make([]identity.User, n)
	for i := range users {
		off := start + int64(i)
		users[i] = identity.User{
			ID:   strconv.FormatInt(opts.Seed, 10) + "/" + strconv.FormatInt(off, 10),
			Name: opts.Region.String(),
		}
	}
	return users
}

func ids(users []identity.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func wantIDs(seed int64, from, to int) []string {
	var out []string
	for i := from; i < to; i++ {
		out = append(out, strconv.FormatInt(seed, 10)+"/"+strconv.Itoa(i))
	}
	return out
}

func TestSetOptionsInitialBatch(t *testing.T) {
	d := New(&offsetGen{}, 0, nil)
	if !d.SetOptions(identity.Options{Seed: 5}) {
		t.Fatal("first SetOptions should start an epoch")
	}

	if d.Len() != InitialBatch {
		t.Errorf("Len = %d, want %d", d.Len(), InitialBatch)
	}
	if d.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1", d.Cursor())
	}
	if d.Epoch() != 1 {
		t.Errorf("Epoch = %d, want 1", d.Epoch())
	}
	if diff := cmp.Diff(wantIDs(5, 0, 20), ids(d.Records())); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
}

func TestScrollAccumulates(t *testing.T) {
	d := New(&offsetGen{}, 0, nil)
	d.SetOptions(identity.Options{Seed: 9})

	for i := range 3 {
		if !d.Scroll(0) {
			t.Fatalf("scroll %d was not committed", i)
		}
	}

	if d.Len() != 50 {
		t.Fatalf("Len = %d, want 50", d.Len())
	}
	if d.Cursor() != 4 {
		t.Errorf("Cursor = %d, want 4", d.Cursor())
	}
	if diff := cmp.Diff(wantIDs(9, 0, 50), ids(d.Records())); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}

	seen := make(map[string]bool)
	for _, id := range ids(d.Records()) {
		if seen[id] {
			t.Errorf("duplicate record %s", id)
		}
		seen[id] = true
	}
}

func TestScrollBeyondThresholdIgnored(t *testing.T) {
	d := New(&offsetGen{}, 3, nil)
	d.SetOptions(identity.Options{})

	if d.Scroll(4) {
		t.Error("distance 4 with threshold 3 should not fetch")
	}
	if !d.Scroll(3) {
		t.Error("distance 3 with threshold 3 should fetch")
	}
	if d.Len() != 30 {
		t.Errorf("Len = %d, want 30", d.Len())
	}
}

func TestScrollBeforeOptionsIgnored(t *testing.T) {
	d := New(&offsetGen{}, 0, nil)
	if _, ok := d.NearBottom(0); ok {
		t.Error("no request should be issued before the first options")
	}
}

func TestOptionsChangeResets(t *testing.T) {
	d := New(&offsetGen{}, 0, nil)
	d.SetOptions(identity.Options{Seed: 1})
	d.Scroll(0)
	d.Scroll(0)

	if !d.SetOptions(identity.Options{Seed: 2}) {
		t.Fatal("changed options should start an epoch")
	}
	if d.Cursor() != 1 || d.Len() != InitialBatch || d.Epoch() != 2 {
		t.Errorf("after reset: cursor=%d len=%d epoch=%d", d.Cursor(), d.Len(), d.Epoch())
	}
	if diff := cmp.Diff(wantIDs(2, 0, 20), ids(d.Records())); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
}

func TestEqualOptionsIgnored(t *testing.T) {
	gen := &offsetGen{}
	d := New(gen, 0, nil)
	opts := identity.Options{Region: locale.Germany, MistakeRate: 25, Seed: 3}
	d.SetOptions(opts)
	d.Scroll(0)

	if d.SetOptions(opts) {
		t.Error("equal snapshot should not start an epoch")
	}
	if d.Len() != 30 {
		t.Errorf("Len = %d, want 30 (no reset)", d.Len())
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
}

func TestResetWinsRace(t *testing.T) {
	d := New(&offsetGen{}, 0, nil)
	d.SetOptions(identity.Options{Seed: 1, Region: locale.US})

	req, ok := d.NearBottom(0)
	if !ok {
		t.Fatal("expected a request")
	}
	stale := d.Fill(req)

	d.SetOptions(identity.Options{Seed: 2, Region: locale.Russia})

	if d.Commit(stale) {
		t.Error("stale batch must not be committed")
	}
	if diff := cmp.Diff(wantIDs(2, 0, 20), ids(d.Records())); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
	for _, u := range d.Records() {
		if u.Name != locale.Russia.String() {
			t.Fatalf("record %s from superseded options", u.ID)
		}
	}
}

func TestStaleBatchDoesNotBlockNewEpoch(t *testing.T) {
	d := New(&offsetGen{}, 0, nil)
	d.SetOptions(identity.Options{Seed: 1})
	oldReq, _ := d.NearBottom(0)

	d.SetOptions(identity.Options{Seed: 2})
	newReq, ok := d.NearBottom(0)
	if !ok {
		t.Fatal("new epoch should accept a scroll while the old batch is in flight")
	}

	if d.Commit(d.Fill(oldReq)) {
		t.Error("old batch committed into new epoch")
	}
	if !d.Commit(d.Fill(newReq)) {
		t.Error("new batch should commit")
	}
	if diff := cmp.Diff(wantIDs(2, 0, 30), ids(d.Records())); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
}

func TestOneRequestInFlight(t *testing.T) {
	d := New(&offsetGen{}, 0, nil)
	d.SetOptions(identity.Options{})

	req, ok := d.NearBottom(0)
	if !ok {
		t.Fatal("expected a request")
	}
	if _, ok := d.NearBottom(0); ok {
		t.Error("second request issued while first is pending")
	}
	if !d.Pending() {
		t.Error("Pending should be true")
	}

	d.Commit(d.Fill(req))
	if d.Pending() {
		t.Error("Pending should clear after commit")
	}
	if d.Commit(d.Fill(req)) {
		t.Error("a batch must not commit twice")
	}
	if d.Len() != 30 {
		t.Errorf("Len = %d, want 30", d.Len())
	}
}

func TestRecordsIsCopy(t *testing.T) {
	d := New(&offsetGen{}, 0, nil)
	d.SetOptions(identity.Options{})
	recs := d.Records()
	recs[0].ID = "changed"
	if d.Records()[0].ID == "changed" {
		t.Error("Records should return a copy")
	}
}

func TestWithRealGenerator(t *testing.T) {
	gen := identity.New()
	d := New(gen, DefaultThreshold, nil)
	opts := identity.Options{Region: locale.US, Seed: 42}
	d.SetOptions(opts)
	d.Scroll(0)

	recs := d.Records()
	for i, u := range recs {
		if want := gen.Generate(opts, int64(i)); u != want {
			t.Fatalf("record %d = %+v, want %+v", i, u, want)
		}
	}
}

func TestNegativeThresholdDefaults(t *testing.T) {
	d := New(&offsetGen{}, -1, nil)
	if d.Threshold() != DefaultThreshold {
		t.Errorf("Threshold = %d, want %d", d.Threshold(), DefaultThreshold)
	}
}
