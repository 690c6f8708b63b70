package glide

import (
	"fmt"
	"log"

	"github.com/glidecam/glidecam/host"
)

// Manager owns the set of interceptions currently installed against the
// host. Install/uninstall is transactional: a mode switch tears everything
// down before the new mode's set goes in, and a failed install rolls back
// its partial registrations so input falls through to unmodified host
// behavior.
type Manager struct {
	host   host.Host
	owner  host.Owner
	active []host.Registration
}

func NewManager(h host.Host, owner host.Owner) *Manager {
	return &Manager{host: h, owner: owner}
}

// Installed returns how many interceptions are currently registered.
func (m *Manager) Installed() int {
	return len(m.active)
}

// Register replaces the active registration set with ics. On any install
// failure the registrations made during this attempt are removed and the
// error is returned; no interception stays active.
func (m *Manager) Register(ics []host.Interception) error {
	m.UnregisterAll()

	installed := make([]host.Registration, 0, len(ics))
	for _, ic := range ics {
		reg, err := m.host.Intercept(m.owner, ic)
		if err != nil {
			for _, r := range installed {
				if rerr := r.Remove(); rerr != nil {
					log.Printf("glide: rollback of %s interception: %v", r.Op(), rerr)
				}
			}
			return fmt.Errorf("glide: install %s %s interception: %w", ic.Policy, ic.Op, err)
		}
		installed = append(installed, reg)
	}
	m.active = installed
	return nil
}

// UnregisterAll removes every active interception. Removal failures are
// logged warnings and do not block the rest of the teardown.
func (m *Manager) UnregisterAll() {
	for _, r := range m.active {
		if err := r.Remove(); err != nil {
			log.Printf("glide: remove %s interception: %v", r.Op(), err)
		}
	}
	m.active = nil
}
