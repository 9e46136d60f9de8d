package idgen

import (
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/andresmatiasescobar/pokedex/internal/errors"
)

// Drawer draws a value uniformly from [1, n]
type Drawer interface {
	Draw(n int) (int, error)
}

// DiceDrawer rolls a single n-sided die
type DiceDrawer struct{}

// NewDice returns the production drawer
func NewDice() *DiceDrawer {
	return &DiceDrawer{}
}

// Draw rolls 1dn
func (d *DiceDrawer) Draw(n int) (int, error) {
	if n < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", n)
	}

	roll, err := dice.NewRoll(1, n)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll 1d%d", n)
	}

	return int(roll.GetValue()), nil
}

// SeededDrawer is a deterministic drawer: the same seed yields the same sequence
type SeededDrawer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded creates a drawer seeded with seed
func NewSeeded(seed int64) *SeededDrawer {
	return &SeededDrawer{rng: rand.New(rand.NewSource(seed))}
}

// Draw returns the next value in [1, n]
func (d *SeededDrawer) Draw(n int) (int, error) {
	if n < 1 {
		return 0, errors.InvalidArgumentf("draw range must be positive, got %d", n)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Intn(n) + 1, nil
}

// Distinct draws count different values from [1, n] in draw order.
// Repeated values are drawn again.
func Distinct(d Drawer, count, n int) ([]int, error) {
	if count < 1 {
		return nil, errors.InvalidArgumentf("count must be positive, got %d", count)
	}
	if count > n {
		return nil, errors.InvalidArgumentf("cannot draw %d distinct values from 1..%d", count, n)
	}

	seen := make(map[int]struct{}, count)
	ids := make([]int, 0, count)
	for len(ids) < count {
		v, err := d.Draw(n)
		if err != nil {
			return nil, err
		}
		if v < 1 || v > n {
			return nil, errors.Internalf("drawer returned %d outside 1..%d", v, n)
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		ids = append(ids, v)
	}

	return ids, nil
}
