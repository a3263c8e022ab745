package redfish

// OperatingStatus is the Redfish Status triple. Each field is independently
// optional; the zero value of a field means the source omitted it.
type OperatingStatus struct {
	Health       Health `json:"Health,omitempty"`
	HealthRollup Health `json:"HealthRollup,omitempty"`
	State        State  `json:"State,omitempty"`
}

// NewOperatingStatus validates the three raw keywords. It returns nil when all
// three are empty, and an *EnumError for any present unknown keyword.
func NewOperatingStatus(vocab *Vocabulary, health, rollup, state string) (*OperatingStatus, error) {
	if health == "" && rollup == "" && state == "" {
		return nil, nil //nolint:nilnil // absent status is not an error
	}

	h, err := vocab.Health.Parse(health)
	if err != nil {
		return nil, err
	}

	r, err := vocab.Health.Parse(rollup)
	if err != nil {
		return nil, &EnumError{Field: "HealthRollup", Value: rollup}
	}

	s, err := vocab.States.Parse(state)
	if err != nil {
		return nil, err
	}

	return &OperatingStatus{Health: h, HealthRollup: r, State: s}, nil
}
