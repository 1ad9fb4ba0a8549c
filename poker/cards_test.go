package poker

import "testing"

func TestCardString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		card Card
		want string
	}{
		{Card{Rank: Ace, Suit: Spades}, "A♠"},
		{Card{Rank: Two, Suit: Clubs}, "2♣"},
		{Card{Rank: Ten, Suit: Hearts}, "T♥"},
		{Card{Rank: King, Suit: Diamonds}, "K♦"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("(%d,%d).String() = %q, want %q", tt.card.Rank, tt.card.Suit, got, tt.want)
		}
	}
}

func TestCardIsRed(t *testing.T) {
	t.Parallel()

	if !NewCard(Hearts, Ace).IsRed() {
		t.Error("hearts should be red")
	}
	if !NewCard(Diamonds, Two).IsRed() {
		t.Error("diamonds should be red")
	}
	if NewCard(Spades, Ace).IsRed() {
		t.Error("spades should not be red")
	}
	if NewCard(Clubs, Ace).IsRed() {
		t.Error("clubs should not be red")
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Card
		wantErr bool
	}{
		{"As", Card{Rank: Ace, Suit: Spades}, false},
		{"2h", Card{Rank: Two, Suit: Hearts}, false},
		{"Kd", Card{Rank: King, Suit: Diamonds}, false},
		{"tc", Card{Rank: Ten, Suit: Clubs}, false},
		{"1s", Card{}, true},
		{"Ax", Card{}, true},
		{"A", Card{}, true},
		{"AsKd", Card{}, true},
	}
	for _, tt := range tests {
		got, err := ParseCard(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCard(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCard(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCard(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("AsKd 7h")
	if err != nil {
		t.Fatalf("ParseCards failed: %v", err)
	}
	want := []Card{
		{Rank: Ace, Suit: Spades},
		{Rank: King, Suit: Diamonds},
		{Rank: Seven, Suit: Hearts},
	}
	if len(cards) != len(want) {
		t.Fatalf("expected %d cards, got %d", len(want), len(cards))
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Errorf("card %d: got %v, want %v", i, cards[i], want[i])
		}
	}

	if _, err := ParseCards("AsK"); err == nil {
		t.Error("expected error for odd-length string")
	}
	if _, err := ParseCards("Xy"); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestCategorizeHoleCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
		want  HoleCardCategory
	}{
		{"pocket aces", "AsAh", CategoryPremium},
		{"pocket jacks", "JhJd", CategoryPremium},
		{"ace king offsuit", "AcKh", CategoryPremium},
		{"ace king suited", "AsKs", CategoryPremium},
		{"pocket tens", "TcTh", CategoryStrong},
		{"ace queen offsuit", "AcQh", CategoryStrong},
		{"ace jack suited", "AsJs", CategoryStrong},
		{"pocket nines", "9c9h", CategoryMedium},
		{"pocket sevens", "7h7c", CategoryMedium},
		{"king queen suited", "KsQs", CategoryMedium},
		{"queen jack suited", "QdJd", CategoryMedium},
		{"pocket sixes", "6c6h", CategoryWeak},
		{"pocket deuces", "2d2s", CategoryWeak},
		{"suited connector", "9h8h", CategoryWeak},
		{"suited one-gapper", "7s5s", CategoryWeak},
		{"king queen offsuit", "KsQh", CategoryTrash},
		{"seven deuce offsuit", "7c2h", CategoryTrash},
		{"offsuit connector", "9h8c", CategoryTrash},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cards := MustParseCards(tt.cards)
			if got := CategorizeHoleCards(cards[0], cards[1]); got != tt.want {
				t.Errorf("CategorizeHoleCards(%s) = %s, want %s", tt.cards, got, tt.want)
			}
		})
	}
}
