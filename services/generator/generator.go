// Package generator fabricates synthetic transactions for the live feed.
package generator

import (
	// Go Internal Packages
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	// Local Packages
	models "fraud-dash/models"

	// External Packages
	"github.com/google/uuid"
)

var (
	Merchants = []string{"Amazon", "Walmart", "Target", "Best Buy", "Starbucks", "Shell", "McDonald's", "Apple Store"}
	Locations = []string{"New York, NY", "Los Angeles, CA", "Chicago, IL", "Houston, TX", "Phoenix, AZ"}
)

const (
	maxRiskScore  = 100.0
	cardSuffixMin = 1000
	cardSuffixLen = 9000
)

// Source is the randomness a Generator draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type Options struct {
	AmountMin int
	AmountMax int
	UserIDMax int
}

func DefaultOptions() Options {
	return Options{AmountMin: 10, AmountMax: 5009, UserIDMax: 1000}
}

type Generator struct {
	mu    sync.Mutex
	src   Source
	opts  Options
	newID func() string
	now   func() time.Time
}

type Option func(*Generator)

// WithIDs replaces the uuid based id factory.
func WithIDs(newID func() string) Option {
	return func(g *Generator) { g.newID = newID }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func New(src Source, opts Options, options ...Option) *Generator {
	g := &Generator{src: src, opts: opts, newID: uuid.NewString, now: time.Now}
	for _, o := range options {
		o(g)
	}
	return g
}

// NewSeeded returns a generator backed by a PCG source. A zero seed picks one from the clock.
func NewSeeded(seed uint64, opts Options, options ...Option) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), opts, options...)
}

// Generate returns a fully populated record. It cannot fail.
func (g *Generator) Generate() models.Transaction {
	g.mu.Lock()
	defer g.mu.Unlock()

	score := g.src.Float64() * maxRiskScore
	if score >= maxRiskScore {
		score = math.Nextafter(maxRiskScore, 0)
	}
	if score < 0 {
		score = 0
	}

	return models.Transaction{
		ID:         g.newID(),
		Amount:     g.opts.AmountMin + g.src.IntN(g.opts.AmountMax-g.opts.AmountMin+1),
		Merchant:   Merchants[g.src.IntN(len(Merchants))],
		Location:   Locations[g.src.IntN(len(Locations))],
		CardNumber: fmt.Sprintf("****-****-****-%d", cardSuffixMin+g.src.IntN(cardSuffixLen)),
		RiskScore:  score,
		Status:     models.StatusForScore(score),
		Timestamp:  g.now(),
		UserID:     fmt.Sprintf("user_%d", g.src.IntN(g.opts.UserIDMax)),
	}
}

// Batch generates n records in generation order.
func (g *Generator) Batch(n int) []models.Transaction {
	out := make([]models.Transaction, n)
	for i := range out {
		out[i] = g.Generate()
	}
	return out
}
