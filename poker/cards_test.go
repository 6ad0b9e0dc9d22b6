package poker

import (
	"errors"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit())
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}

	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2c" {
		t.Errorf("Expected '2c', got %s", twoClubs.String())
	}
	if !twoClubs.Valid() || (Card{}).Valid() {
		t.Error("Valid() should accept 2c and reject the zero card")
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{"ace of spades", "As", NewCard(Ace, Spades), false},
		{"two of hearts", "2h", NewCard(Two, Hearts), false},
		{"ten of diamonds", "Td", NewCard(Ten, Diamonds), false},
		{"lower case rank", "kc", NewCard(King, Clubs), false},
		{"upper case suit", "QS", NewCard(Queen, Spades), false},
		{"unknown rank", "1h", Card{}, true},
		{"unknown suit", "Ax", Card{}, true},
		{"too short", "A", Card{}, true},
		{"too long", "Ahh", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCard) {
					t.Errorf("ParseCard(%q) error = %v, want ErrInvalidCard", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.wantCard {
				t.Errorf("ParseCard(%q) = %s, want %s", tt.input, got, tt.wantCard)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("Ah Kd 7c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Card{NewCard(Ace, Hearts), NewCard(King, Diamonds), NewCard(Seven, Clubs)}
	if len(cards) != len(want) {
		t.Fatalf("got %d cards, want %d", len(cards), len(want))
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Errorf("card %d = %s, want %s", i, cards[i], want[i])
		}
	}

	if _, err := ParseCards("AhK"); !errors.Is(err, ErrInvalidCard) {
		t.Errorf("odd length error = %v, want ErrInvalidCard", err)
	}
}

func TestDeckIndex(t *testing.T) {
	t.Parallel()
	for i := 0; i < DeckSize; i++ {
		c := CardFromIndex(i)
		if c.Index() != i {
			t.Errorf("CardFromIndex(%d).Index() = %d", i, c.Index())
		}
		if c.Rank() != Rank(i/4)+Two || c.Suit() != Suit(i%4) {
			t.Errorf("CardFromIndex(%d) = %s", i, c)
		}
		if s := c.Slim(); s.Card() != c || s.Rank() != c.Rank() || s.Suit() != c.Suit() {
			t.Errorf("SlimCard round trip failed for %s", c)
		}
	}
	if got := CardFromIndex(0).String(); got != "2c" {
		t.Errorf("index 0 = %s, want 2c", got)
	}
	if got := CardFromIndex(51).String(); got != "As" {
		t.Errorf("index 51 = %s, want As", got)
	}
}

func TestCardOrdering(t *testing.T) {
	t.Parallel()
	ah, as, kd := MustParseCard("Ah"), MustParseCard("As"), MustParseCard("Kd")

	if !kd.Less(ah) || ah.Less(kd) {
		t.Error("Kd should order below Ah")
	}
	if ah.Compare(as) != 0 {
		t.Error("ordering ignores suit")
	}
	if ah == as {
		t.Error("identity compares suit")
	}
	if kd.Compare(as) != -1 || as.Compare(kd) != 1 {
		t.Error("Compare should return -1/1 by rank")
	}
}
