// Package quote provides the motivational quote drawn for each new day.
package quote

import (
	"math/rand/v2"
	"slices"
)

// Source picks the quote attached to a newly created day.
type Source interface {
	Pick() string
}

var defaultQuotes = []string{
	"Productivity is never an accident. It is always the result of a commitment to excellence.",
	"Focus on being productive instead of busy.",
	"The key is not to prioritize what's on your schedule, but to schedule your priorities.",
	"Don't wait for inspiration. It comes while working.",
	"Do the hard jobs first. Easy jobs will take care of themselves.",
	"Action is the foundational key to all success.",
	"You don't have to be great to start, but you have to start to be great.",
	"The only way to do great work is to love what you do.",
	"Productivity is being able to do things that you were never able to do before.",
	"It's not about having time, it's about making time.",
	"The perfect is the enemy of the good.",
	"Start where you are. Use what you have. Do what you can.",
	"Amateurs sit and wait for inspiration. The rest of us just get up and go to work.",
	"Don't wish it were easier, wish you were better.",
	"Strive not to be a success, but rather to be of value.",
	"The way to get started is to quit talking and begin doing.",
	"A goal without a plan is just a wish.",
	"The successful warrior is the average person, with laser-like focus.",
	"Focus on your goal. Don't look in any direction but ahead.",
	"Success is no accident. It is hard work, perseverance, learning, studying, sacrifice, and most of all, love of what you are doing.",
	"When we strive to become better than we are, everything around us becomes better too.",
	"The only limit to our realization of tomorrow will be our doubts of today.",
	"The future depends on what you do today.",
	"Don't count the days, make the days count.",
	"Either you run the day or the day runs you.",
	"Your time is limited, don't waste it living someone else's life.",
	"You are never too old to set another goal or to dream a new dream.",
	"It's not what you do once in a while; it's what you do day in and day out that makes the difference.",
	"Motivation is what gets you started. Habit is what keeps you going.",
	"The more you praise and celebrate your life, the more there is in life to celebrate.",
}

// Default returns a Pool over the built-in quotes.
func Default() *Pool {
	return NewPool(defaultQuotes)
}

// Quotes returns a copy of the built-in quotes.
func Quotes() []string {
	return slices.Clone(defaultQuotes)
}

// Pool draws uniformly at random from a fixed, finite set of quotes.
type Pool struct {
	quotes []string
}

// NewPool copies quotes into a Pool. An empty slice falls back to the
// built-in quotes.
func NewPool(quotes []string) *Pool {
	if len(quotes) == 0 {
		quotes = defaultQuotes
	}
	return &Pool{quotes: slices.Clone(quotes)}
}

// Pick returns one quote from the pool.
func (p *Pool) Pick() string {
	return p.quotes[rand.IntN(len(p.quotes))]
}

// Contains reports whether s is one of the pool's quotes.
func (p *Pool) Contains(s string) bool {
	return slices.Contains(p.quotes, s)
}

// Len is the size of the pool.
func (p *Pool) Len() int {
	return len(p.quotes)
}

// Fixed always returns the same quote.
type Fixed string

// Pick returns the fixed quote.
func (f Fixed) Pick() string {
	return string(f)
}
