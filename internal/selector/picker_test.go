package selector

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/minhokang/baeum/internal/srs"
)

var sel0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func card(id, prompt, answer, category string) Candidate {
	return Candidate{
		ID:       id,
		Prompt:   prompt,
		Answer:   answer,
		Category: category,
		Memory:   srs.NewMemoryState(sel0),
	}
}

func reviewed(c Candidate, total, correct int, last time.Time) Candidate {
	c.Memory.TotalReviews = total
	c.Memory.CorrectReviews = correct
	c.LastReview = last
	return c
}

func testPicker(interleave bool) *Picker {
	return NewPicker(interleave, rand.New(rand.NewPCG(7, 11)))
}

func TestWeight_UnseenCard(t *testing.T) {
	c := card("a", "hello", "annyeong", "greetings")
	// struggle 1.5 (unreviewed success rate 0.5), exposure x2, unseen x1.5
	if got, want := Weight(c, sel0), 4.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("Weight = %v, want %v", got, want)
	}
}

func TestWeight_FailureRecencyTiers(t *testing.T) {
	base := reviewed(card("a", "p", "x", ""), 10, 5, sel0)
	cases := []struct {
		ago  time.Duration
		mult float64
	}{
		{2 * time.Minute, 10},
		{20 * time.Minute, 3},
		{45 * time.Minute, 1.5},
		{3 * time.Hour, 1},
	}
	plain := Weight(base, sel0)
	for _, tc := range cases {
		c := base
		c.LastFailure = sel0.Add(-tc.ago)
		if got, want := Weight(c, sel0), plain*tc.mult; math.Abs(got-want) > 1e-9 {
			t.Errorf("failure %v ago: Weight = %v, want %v", tc.ago, got, want)
		}
	}
}

func TestWeight_StalenessCapsAtDouble(t *testing.T) {
	c := reviewed(card("a", "p", "x", ""), 10, 10, sel0.Add(-40*time.Hour))
	// success rate 1.0 so struggle is 1.0; 40h of staleness caps at x2
	if got, want := Weight(c, sel0), 2.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Weight = %v, want %v", got, want)
	}
}

func TestWeight_StrugglingCardOutweighsMasteredCard(t *testing.T) {
	last := sel0.Add(-time.Minute)
	weak := reviewed(card("w", "p1", "x", ""), 10, 2, last)
	strong := reviewed(card("s", "p2", "y", ""), 10, 10, last)
	if Weight(weak, sel0) <= Weight(strong, sel0) {
		t.Errorf("struggling card should outweigh mastered card: %v vs %v",
			Weight(weak, sel0), Weight(strong, sel0))
	}
}

func TestPicker_NeverRepeatsWhenAlternativeExists(t *testing.T) {
	pool := []Candidate{
		card("a", "water", "mul", "nouns"),
		card("b", "fire", "bul", "nouns"),
	}
	p := testPicker(false)
	sess := NewSession()
	prev := ""
	for i := 0; i < 50; i++ {
		c, ok := p.Next(pool, sess, sel0)
		if !ok {
			t.Fatal("Next returned no card from a non-empty pool")
		}
		if c.ID == prev {
			t.Fatalf("draw %d repeated card %q with an alternative available", i, c.ID)
		}
		prev = c.ID
	}
}

func TestPicker_RepeatsOnlyCardWhenPoolHasOne(t *testing.T) {
	pool := []Candidate{card("a", "water", "mul", "")}
	p := testPicker(false)
	sess := NewSession()
	for i := 0; i < 3; i++ {
		c, ok := p.Next(pool, sess, sel0)
		if !ok || c.ID != "a" {
			t.Fatalf("draw %d: got (%q, %v), want the only card", i, c.ID, ok)
		}
	}
}

func TestPicker_ExcludesSiblings(t *testing.T) {
	// b's prompt contains a's answer, c shares a's answer text
	pool := []Candidate{
		card("a", "water", "mul", ""),
		card("b", "what does mul mean", "water (noun)", ""),
		card("c", "H2O", "mul", ""),
		card("d", "fire", "bul", ""),
	}
	p := testPicker(false)
	sess := NewSession()
	sess.noteShown(pool[0], false)
	for i := 0; i < 30; i++ {
		c, ok := p.Next(pool[1:], sess, sel0)
		if !ok {
			t.Fatal("Next returned no card")
		}
		if i == 0 && c.ID != "d" {
			t.Fatalf("first draw after %q = %q, want the only non-sibling %q", "a", c.ID, "d")
		}
	}
}

func TestPicker_ReinforcementAfterGap(t *testing.T) {
	pool := []Candidate{
		card("a", "water", "mul", ""),
		card("b", "fire", "bul", ""),
		card("c", "moon", "dal", ""),
		card("d", "sun", "hae", ""),
		card("e", "star", "byeol", ""),
	}
	p := testPicker(false)
	sess := NewSession()
	sess.RecordFailure("a")

	served := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		c, ok := p.Next(pool, sess, sel0)
		if !ok {
			t.Fatal("Next returned no card")
		}
		served = append(served, c.ID)
	}
	for i, id := range served[:3] {
		if id == "a" {
			t.Fatalf("failed card resurfaced at draw %d, before the gap elapsed", i)
		}
	}
	if served[3] != "a" {
		t.Errorf("draw after gap = %q, want the queued failure %q", served[3], "a")
	}
	if sess.QueueLen() != 0 {
		t.Errorf("queue length after pop = %d, want 0", sess.QueueLen())
	}
}

func TestPicker_PopsImmediatelyWhenOnlyQueuedCardsRemain(t *testing.T) {
	pool := []Candidate{
		card("a", "water", "mul", ""),
		card("b", "fire", "bul", ""),
	}
	p := testPicker(false)
	sess := NewSession()
	sess.RecordFailure("a")
	sess.RecordFailure("b")

	// gap not yet elapsed, but every remaining card is a queued failure
	c, ok := p.Next(pool, sess, sel0)
	if !ok {
		t.Fatal("Next returned no card")
	}
	if c.ID != "a" {
		t.Errorf("first pop = %q, want the least recently failed %q", c.ID, "a")
	}
	if sess.QueueLen() != 1 {
		t.Errorf("queue length after pop = %d, want 1", sess.QueueLen())
	}

	if _, ok := p.Next(nil, sess, sel0); ok {
		t.Error("Next should report exhaustion with an empty pool")
	}
}

func TestPicker_ReinforcementDiscardsUnresolvable(t *testing.T) {
	pool := []Candidate{
		card("a", "water", "mul", ""),
		card("b", "fire", "bul", ""),
	}
	sess := NewSession()
	sess.RecordFailure("gone")
	sess.RecordFailure("b")
	sess.sinceReinforce = reinforcementGap

	p := testPicker(false)
	c, ok := p.Next(pool, sess, sel0)
	if !ok || c.ID != "b" {
		t.Fatalf("Next = (%q, %v), want the resolvable queue entry %q", c.ID, ok, "b")
	}
	if sess.QueueLen() != 0 {
		t.Errorf("unresolvable entry should be discarded, queue length = %d", sess.QueueLen())
	}
}

func TestPicker_InterleavesCategories(t *testing.T) {
	pool := []Candidate{
		card("a", "water", "mul", "nouns"),
		card("b", "fire", "bul", "nouns"),
		card("c", "to go", "gada", "verbs"),
		card("d", "to see", "boda", "verbs"),
	}
	p := testPicker(true)
	sess := NewSession()
	prevCat := ""
	for i := 0; i < 40; i++ {
		c, ok := p.Next(pool, sess, sel0)
		if !ok {
			t.Fatal("Next returned no card")
		}
		if c.Category == prevCat {
			t.Fatalf("draw %d stayed in category %q with another category available", i, prevCat)
		}
		prevCat = c.Category
	}
}

func TestSession_QueueDedupAndSuccessRemoval(t *testing.T) {
	sess := NewSession()
	sess.RecordFailure("a")
	sess.RecordFailure("a")
	sess.RecordFailure("b")
	if sess.QueueLen() != 2 {
		t.Fatalf("queue length = %d, want 2", sess.QueueLen())
	}
	sess.RecordSuccess("a")
	if sess.QueueLen() != 1 {
		t.Errorf("queue length after success = %d, want 1", sess.QueueLen())
	}
	sess.RecordSuccess("missing")
	if sess.QueueLen() != 1 {
		t.Errorf("removing an unqueued card changed the queue: length %d", sess.QueueLen())
	}
}
