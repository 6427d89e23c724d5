package life

// Config controls the board dimensions and seeding density.
type Config struct {
	Side int

	// SpawnOneIn is the seeding density: each cell starts alive with
	// probability 1/SpawnOneIn.
	SpawnOneIn int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Side:       200,
		SpawnOneIn: 10,
	}
}
