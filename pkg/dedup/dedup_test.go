package dedup

import (
	"fmt"
	"testing"
	"time"
)

func TestShouldProcessOncePerTTL(t *testing.T) {
	d := New(time.Minute, 100)
	id := Key("gauge/standard/3440", []byte(`{"density_standard":1571}`))
	if !d.ShouldProcess(id) {
		t.Fatal("first delivery rejected")
	}
	if d.ShouldProcess(id) {
		t.Fatal("redelivery accepted within TTL")
	}
}

func TestExpiredEntryProcessedAgain(t *testing.T) {
	d := New(10*time.Millisecond, 100)
	if !d.ShouldProcess("a") {
		t.Fatal("first delivery rejected")
	}
	time.Sleep(20 * time.Millisecond)
	if !d.ShouldProcess("a") {
		t.Fatal("entry not re-admitted after TTL")
	}
}

func TestEmptyIDAlwaysProcessed(t *testing.T) {
	d := New(time.Minute, 100)
	if !d.ShouldProcess("") || !d.ShouldProcess("") {
		t.Fatal("empty id must always pass")
	}
}

func TestKeyDistinguishesTopicAndPayload(t *testing.T) {
	a := Key("gauge/standard/3440", []byte("x"))
	b := Key("gauge/standard/3441", []byte("x"))
	c := Key("gauge/standard/3440", []byte("y"))
	if a == b || a == c {
		t.Fatalf("keys collide: %q %q %q", a, b, c)
	}
	if a != Key("gauge/standard/3440", []byte("x")) {
		t.Fatal("key not stable for identical input")
	}
}

func TestSweepEvictsExpired(t *testing.T) {
	d := New(10*time.Millisecond, 10)
	for i := 0; i < 20; i++ {
		d.ShouldProcess(fmt.Sprintf("old-%d", i))
	}
	time.Sleep(25 * time.Millisecond)
	// Crossing max with expired entries on hand trims back down to max.
	d.ShouldProcess("fresh")
	if n := d.Len(); n != 10 {
		t.Fatalf("tracked ids = %d, want 10 after sweep", n)
	}
}
