package service

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Storage loads and saves serialized collections by key.
// Load reports ok == false when nothing is stored under key.
type Storage interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	Erase(ctx context.Context, key string) error
}

// IDSource hands out identifiers for new tasks and categories.
type IDSource interface {
	NewID() string
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Random picks an index in [0, n).
type Random interface {
	IntN(n int) int
}

type UUIDSource struct{}

func (UUIDSource) NewID() string { return uuid.NewString() }

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }
