package selector

import (
	"math/rand/v2"
	"time"

	"github.com/samber/lo"
)

// reinforcementGap is how many ordinary picks go by before a queued failed
// card is re-surfaced.
const reinforcementGap = 3

// Picker draws the next card to study. Draws are weighted by Weight and
// shaped by the session's reinforcement queue and anti-repetition rules.
type Picker struct {
	rng        *rand.Rand
	interleave bool
}

// NewPicker builds a picker. A nil rng gets a time-seeded source; tests
// inject a fixed seed for reproducible draws.
func NewPicker(interleave bool, rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Picker{rng: rng, interleave: interleave}
}

// Next picks a card from pool and records it on the session. It returns
// false only when the pool is empty.
func (p *Picker) Next(pool []Candidate, sess *Session, now time.Time) (Candidate, bool) {
	byID := make(map[string]Candidate, len(pool))
	for _, c := range pool {
		byID[c.ID] = c
	}

	// A queued failure resurfaces once enough other cards have gone by, or
	// immediately when every remaining pool card is already in the queue.
	if len(sess.reinforce) > 0 && (sess.sinceReinforce >= reinforcementGap || sess.onlyQueuedRemain(pool)) {
		if c, ok := sess.popReinforcement(byID); ok {
			sess.noteShown(c, true)
			return c, true
		}
	}

	if len(pool) == 0 {
		return Candidate{}, false
	}

	c := p.draw(p.eligible(pool, sess), now)
	sess.noteShown(c, false)
	return c, true
}

// eligible filters the pool down to cards acceptable after the last one
// shown. Queued failures sit out ordinary draws; they come back through
// the reinforcement queue. The remaining exclusions relax in order:
// siblings of the last card first, then just the last card itself, then
// nothing, so a pick always remains possible.
func (p *Picker) eligible(pool []Candidate, sess *Session) []Candidate {
	base := lo.Filter(pool, func(c Candidate, _ int) bool {
		return !sess.queued(c.ID)
	})
	if len(base) == 0 {
		base = pool
	}

	candidates := lo.Filter(base, func(c Candidate, _ int) bool {
		return !sess.isSibling(c)
	})
	if len(candidates) == 0 {
		candidates = lo.Filter(base, func(c Candidate, _ int) bool {
			return c.ID != sess.lastID
		})
	}
	if len(candidates) == 0 {
		candidates = base
	}

	if p.interleave && sess.lastCategory != "" {
		other := lo.Filter(candidates, func(c Candidate, _ int) bool {
			return c.Category != sess.lastCategory
		})
		if len(other) > 0 {
			candidates = other
		}
	}
	return candidates
}

// draw performs a weighted random selection over candidates.
func (p *Picker) draw(candidates []Candidate, now time.Time) Candidate {
	total := lo.SumBy(candidates, func(c Candidate) float64 {
		return Weight(c, now)
	})
	if total <= 0 {
		return candidates[p.rng.IntN(len(candidates))]
	}
	target := p.rng.Float64() * total
	for _, c := range candidates {
		target -= Weight(c, now)
		if target <= 0 {
			return c
		}
	}
	return candidates[len(candidates)-1]
}

// onlyQueuedRemain reports whether every card in pool is already awaiting
// reinforcement.
func (s *Session) onlyQueuedRemain(pool []Candidate) bool {
	queued := make(map[string]bool, len(s.reinforce))
	for _, id := range s.reinforce {
		queued[id] = true
	}
	for _, c := range pool {
		if !queued[c.ID] {
			return false
		}
	}
	return true
}

// popReinforcement takes the next queued failed card that still resolves in
// the pool. Entries that no longer resolve are dropped. The last shown card
// and its siblings are skipped when any alternative exists; otherwise the
// least recently failed entry is taken. Returns false when nothing in the
// queue resolves.
func (s *Session) popReinforcement(byID map[string]Candidate) (Candidate, bool) {
	kept := s.reinforce[:0]
	resolvable := make([]string, 0, len(s.reinforce))
	for _, id := range s.reinforce {
		if _, ok := byID[id]; !ok {
			continue
		}
		kept = append(kept, id)
		resolvable = append(resolvable, id)
	}
	s.reinforce = kept
	if len(resolvable) == 0 {
		return Candidate{}, false
	}

	pick := resolvable[0]
	for _, id := range resolvable {
		if !s.isSibling(byID[id]) {
			pick = id
			break
		}
	}
	s.RecordSuccess(pick) // remove from queue; re-queued if it fails again
	return byID[pick], true
}
