package evaluator

import "github.com/lox/holdem-equity/poker"

const sevenCards = 2 + poker.MaxBoardCards

// props holds the features of one side's seven cards for a single showdown.
type props struct {
	cards [sevenCards]poker.Card // rank descending
	ranks [poker.Ace + 1]uint8
	suits [poker.NumSuits]uint8

	flushSuit    poker.Suit
	isFlush      bool
	isStraight   bool
	straightRank poker.Rank
	isRoyal      bool
	isStrFlush   bool
	strFlushRank poker.Rank

	quads     poker.Rank // 0 when none
	trips     [2]poker.Rank
	tripCount int
	pairs     [3]poker.Rank
	pairCount int
}

// Evaluate decides a showdown between two hands on a complete board by
// scanning the raw cards. The board must hold five cards that collide
// with neither hand.
func Evaluate(hero, vill poker.Hand, board poker.Board) Winner {
	h := newProps(hero, board)
	v := newProps(vill, board)
	return Sign(resolve(&h, &v))
}

// Classify returns the category the hand makes on a complete board.
func Classify(hand poker.Hand, board poker.Board) Category {
	p := newProps(hand, board)
	return p.category()
}

func newProps(hand poker.Hand, board poker.Board) props {
	var p props
	p.cards[0] = hand.Primary
	p.cards[1] = hand.Secondary
	for i := 0; i < poker.MaxBoardCards; i++ {
		p.cards[2+i] = board.At(i)
	}
	sortDescending(p.cards[:])

	p.processFlush()
	p.processStraight()
	p.processRoyal()
	p.processStraightFlush()
	p.processMatches()
	return p
}

// sortDescending orders cards by rank, highest first. Suit order is irrelevant.
func sortDescending(cards []poker.Card) {
	for i := 1; i < len(cards); i++ {
		c := cards[i]
		j := i - 1
		for j >= 0 && cards[j].Less(c) {
			cards[j+1] = cards[j]
			j--
		}
		cards[j+1] = c
	}
}

func (p *props) processFlush() {
	for _, c := range p.cards {
		p.suits[c.Suit()]++
	}
	for s, n := range p.suits {
		if n >= 5 {
			p.isFlush = true
			p.flushSuit = poker.Suit(s)
			return
		}
	}
}

// processStraight looks for five consecutive distinct ranks. Repeated
// ranks are skipped rather than breaking the run.
func (p *props) processStraight() {
	top := p.cards[0].Rank()
	prev := top
	run := 1
	for _, c := range p.cards[1:] {
		r := c.Rank()
		if r == prev {
			continue
		}
		if r == prev-1 {
			run++
			if run == 5 {
				p.isStraight = true
				p.straightRank = top
				return
			}
		} else {
			run = 1
			top = r
		}
		prev = r
	}

	// Wheel: the run ends on a deuce, tops out at five and an ace sorted high.
	if prev == poker.Two && top == poker.Five && run == 4 && p.cards[0].Rank() == poker.Ace {
		p.isStraight = true
		p.straightRank = poker.Five
	}
}

func (p *props) processRoyal() {
	if !p.isFlush || !p.isStraight || p.straightRank != poker.Ace {
		return
	}
	n := 0
	for _, c := range p.cards {
		if c.Rank() >= poker.Ten && c.Suit() == p.flushSuit {
			n++
		}
	}
	p.isRoyal = n >= 5
}

// processStraightFlush searches the flush-suited cards alone; the mixed
// straight found earlier need not be in the flush suit.
func (p *props) processStraightFlush() {
	if !p.isFlush || !p.isStraight {
		return
	}

	var top, prev poker.Rank
	run := 0
	hasAce := false
	for _, c := range p.cards {
		if c.Suit() != p.flushSuit {
			continue
		}
		r := c.Rank()
		if r == poker.Ace {
			hasAce = true
		}
		if run > 0 && r == prev-1 {
			run++
			if run == 5 {
				p.isStrFlush = true
				p.strFlushRank = top
				return
			}
		} else {
			run = 1
			top = r
		}
		prev = r
	}

	if hasAce && prev == poker.Two && top == poker.Five && run == 4 {
		p.isStrFlush = true
		p.strFlushRank = poker.Five
	}
}

func (p *props) processMatches() {
	for _, c := range p.cards {
		p.ranks[c.Rank()]++
	}
	for r := poker.Ace; r >= poker.Two; r-- {
		switch p.ranks[r] {
		case 4:
			p.quads = r
		case 3:
			if p.tripCount < len(p.trips) {
				p.trips[p.tripCount] = r
				p.tripCount++
			}
		case 2:
			if p.pairCount < len(p.pairs) {
				p.pairs[p.pairCount] = r
				p.pairCount++
			}
		}
	}
}

func (p *props) isFullHouse() bool {
	return p.tripCount == 2 || (p.tripCount == 1 && p.pairCount >= 1)
}

// fullHouseLow is the rank of the pair part of a full house: the second
// trips or the top pair, whichever is higher.
func (p *props) fullHouseLow() poker.Rank {
	var low poker.Rank
	if p.tripCount == 2 {
		low = p.trips[1]
	}
	if p.pairCount > 0 {
		low = maxRank(low, p.pairs[0])
	}
	return low
}

// kickers fills out with the highest cards whose rank is not excluded.
func (p *props) kickers(out []poker.Rank, exclude ...poker.Rank) {
	n := 0
	for _, c := range p.cards {
		if n == len(out) {
			return
		}
		r := c.Rank()
		skip := false
		for _, ex := range exclude {
			if r == ex {
				skip = true
				break
			}
		}
		if !skip {
			out[n] = r
			n++
		}
	}
}

// flushRanks returns the five highest ranks of the flush suit.
func (p *props) flushRanks() [5]poker.Rank {
	var out [5]poker.Rank
	n := 0
	for _, c := range p.cards {
		if c.Suit() == p.flushSuit {
			out[n] = c.Rank()
			n++
			if n == len(out) {
				break
			}
		}
	}
	return out
}

func (p *props) category() Category {
	switch {
	case p.isRoyal:
		return RoyalFlush
	case p.isStrFlush:
		return StraightFlush
	case p.quads != 0:
		return FourOfAKind
	case p.isFullHouse():
		return FullHouse
	case p.isFlush:
		return Flush
	case p.isStraight:
		return Straight
	case p.tripCount > 0:
		return ThreeOfAKind
	case p.pairCount >= 2:
		return TwoPair
	case p.pairCount == 1:
		return Pair
	}
	return HighCard
}

// resolve walks the categories strongest first. The first category either
// side holds decides the showdown.
func resolve(h, v *props) int {
	checks := [...]func(h, v *props) (int, bool){
		checkRoyal,
		checkStraightFlush,
		checkQuads,
		checkFullHouse,
		checkFlush,
		checkStraight,
		checkTrips,
		checkTwoPair,
		checkPair,
	}
	for _, check := range checks {
		if result, decided := check(h, v); decided {
			return result
		}
	}
	return checkHighCard(h, v)
}

func checkRoyal(h, v *props) (int, bool) {
	return compareFlags(h.isRoyal, v.isRoyal)
}

func checkStraightFlush(h, v *props) (int, bool) {
	result, decided := compareFlags(h.isStrFlush, v.isStrFlush)
	if !decided || result != 0 {
		return result, decided
	}
	return compareRank(h.strFlushRank, v.strFlushRank), true
}

func checkQuads(h, v *props) (int, bool) {
	result, decided := compareFlags(h.quads != 0, v.quads != 0)
	if !decided || result != 0 {
		return result, decided
	}
	if result = compareRank(h.quads, v.quads); result != 0 {
		return result, true
	}
	var hk, vk [1]poker.Rank
	h.kickers(hk[:], h.quads)
	v.kickers(vk[:], v.quads)
	return compareRanks(hk[:], vk[:]), true
}

func checkFullHouse(h, v *props) (int, bool) {
	result, decided := compareFlags(h.isFullHouse(), v.isFullHouse())
	if !decided || result != 0 {
		return result, decided
	}
	if result = compareRank(h.trips[0], v.trips[0]); result != 0 {
		return result, true
	}
	return compareRank(h.fullHouseLow(), v.fullHouseLow()), true
}

func checkFlush(h, v *props) (int, bool) {
	result, decided := compareFlags(h.isFlush, v.isFlush)
	if !decided || result != 0 {
		return result, decided
	}
	hf, vf := h.flushRanks(), v.flushRanks()
	return compareRanks(hf[:], vf[:]), true
}

func checkStraight(h, v *props) (int, bool) {
	result, decided := compareFlags(h.isStraight, v.isStraight)
	if !decided || result != 0 {
		return result, decided
	}
	return compareRank(h.straightRank, v.straightRank), true
}

func checkTrips(h, v *props) (int, bool) {
	result, decided := compareFlags(h.tripCount > 0, v.tripCount > 0)
	if !decided || result != 0 {
		return result, decided
	}
	if result = compareRank(h.trips[0], v.trips[0]); result != 0 {
		return result, true
	}
	var hk, vk [2]poker.Rank
	h.kickers(hk[:], h.trips[0])
	v.kickers(vk[:], v.trips[0])
	return compareRanks(hk[:], vk[:]), true
}

func checkTwoPair(h, v *props) (int, bool) {
	result, decided := compareFlags(h.pairCount >= 2, v.pairCount >= 2)
	if !decided || result != 0 {
		return result, decided
	}
	if result = compareRanks(h.pairs[:2], v.pairs[:2]); result != 0 {
		return result, true
	}
	var hk, vk [1]poker.Rank
	h.kickers(hk[:], h.pairs[0], h.pairs[1])
	v.kickers(vk[:], v.pairs[0], v.pairs[1])
	return compareRanks(hk[:], vk[:]), true
}

func checkPair(h, v *props) (int, bool) {
	result, decided := compareFlags(h.pairCount > 0, v.pairCount > 0)
	if !decided || result != 0 {
		return result, decided
	}
	if result = compareRank(h.pairs[0], v.pairs[0]); result != 0 {
		return result, true
	}
	var hk, vk [3]poker.Rank
	h.kickers(hk[:], h.pairs[0])
	v.kickers(vk[:], v.pairs[0])
	return compareRanks(hk[:], vk[:]), true
}

// checkHighCard compares the sorted cards position by position. Only the
// five cards of the best hand take part.
func checkHighCard(h, v *props) int {
	for i := 0; i < 5; i++ {
		if result := compareRank(h.cards[i].Rank(), v.cards[i].Rank()); result != 0 {
			return result
		}
	}
	return 0
}
