// pkg/interior/pawn.go
package interior

// PawnStatus tracks whether the crew member is awake or asleep
type PawnStatus int

const (
	PawnAwake PawnStatus = iota
	PawnSleeping
)

// String returns the wire name of the status
func (p PawnStatus) String() string {
	if p == PawnSleeping {
		return "Sleeping"
	}
	return "Awake"
}

// NeedsState holds the pawn's physiological needs, each in [0, 1] where
// 1 is fully deprived (starving, parched, exhausted)
type NeedsState struct {
	Hunger float64 `json:"hunger"`
	Thirst float64 `json:"thirst"`
	Rest   float64 `json:"rest"`
}

func (n *NeedsState) clamp() {
	n.Hunger = clamp01(n.Hunger)
	n.Thirst = clamp01(n.Thirst)
	n.Rest = clamp01(n.Rest)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// BodyPart is one segment of the pawn's health model
type BodyPart struct {
	Name  string  `json:"name"`
	HP    float64 `json:"hp"`
	MaxHP float64 `json:"max_hp"`
	Vital bool    `json:"vital"`
}

// HealthState is the pawn's segmented health model
type HealthState struct {
	BodyParts []BodyPart `json:"body_parts"`
}

// NewDefaultHealth returns the six-part health model at full hit points
func NewDefaultHealth() HealthState {
	parts := []struct {
		name  string
		maxHP float64
		vital bool
	}{
		{"Head", 30.0, true},
		{"Torso", 40.0, true},
		{"Left Arm", 25.0, false},
		{"Right Arm", 25.0, false},
		{"Left Leg", 35.0, false},
		{"Right Leg", 35.0, false},
	}
	health := HealthState{BodyParts: make([]BodyPart, 0, len(parts))}
	for _, p := range parts {
		health.BodyParts = append(health.BodyParts, BodyPart{
			Name:  p.name,
			HP:    p.maxHP,
			MaxHP: p.maxHP,
			Vital: p.vital,
		})
	}
	return health
}

// Pawn is a single crew member
type Pawn struct {
	ID              uint64
	Name            string
	X, Y            int
	Status          PawnStatus
	Needs           NeedsState
	Health          HealthState
	SuffocationTime float64
}

// applyDamage subtracts the amount uniformly from every body part,
// flooring each at zero
func (p *Pawn) applyDamage(amount float64) {
	if amount <= 0 {
		return
	}
	for i := range p.Health.BodyParts {
		part := &p.Health.BodyParts[i]
		part.HP -= amount
		if part.HP < 0 {
			part.HP = 0
		}
	}
}
