package game

// Config holds frame driver configuration
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// TPS is the fixed simulation rate; each update advances 1/TPS seconds
	TPS int

	// Seed drives every effect's random source (0 = random)
	Seed uint64

	// CapacityScale multiplies every preset's pool capacity
	CapacityScale float64

	// SmokeRate is smoke plume bursts per second while the mouse is held
	SmokeRate float64

	// WellStrength is the gravity well pull in units^3/s^2
	WellStrength float64

	// DotRadius is the radius in pixels of the particle texture
	DotRadius int

	// ProfilesDir is where CPU profiles are written
	ProfilesDir string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   1024,
		ScreenHeight:  768,
		TPS:           60,
		CapacityScale: 1,
		SmokeRate:     20,
		WellStrength:  4e6,
		DotRadius:     16,
		ProfilesDir:   "profiles",
	}
}
