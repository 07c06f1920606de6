package player

// Random - source of random choices. *math/rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}
