package admin

// Gate reproduces the storefront's browser-side admin gate: the password is
// a client-visible setting shipped with the UI, so this is a UX latch for
// the catalog management screen, not a security boundary.
type Gate struct {
	password string
	unlocked bool
}

func NewGate(password string) *Gate {
	return &Gate{password: password}
}

// Unlock opens the gate when input matches the configured password. An
// empty configured password keeps the gate shut.
func (g *Gate) Unlock(input string) bool {
	g.unlocked = g.password != "" && input == g.password
	return g.unlocked
}

func (g *Gate) Unlocked() bool { return g.unlocked }

func (g *Gate) Lock() { g.unlocked = false }
