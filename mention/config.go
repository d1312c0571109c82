package mention

import (
	"errors"
	"time"
)

const defaultCooldownInterval = 500 * time.Millisecond

// Config configures a Listener.
//
// ShowMentions, HideMentions, and HandleMentionOnReturn are required; the
// remaining fields have working defaults.
type Config struct {
	// Triggers are the strings that open mention context when preceded by
	// whitespace or start of buffer. Default: ["@"].
	Triggers []string

	// SpaceAfterMention appends one space after inserted mention text.
	SpaceAfterMention bool

	// SearchSpacesInMentions allows the filter string to contain spaces.
	SearchSpacesInMentions bool

	// CooldownInterval is the minimum spacing between successive
	// ShowMentions callbacks. Default: 500ms.
	CooldownInterval time.Duration

	// DefaultAttributes is the attribute set applied to non-mention text.
	DefaultAttributes Attributes

	// MentionAttributes returns the attribute set for an inserted mention.
	// It must return the same keys as DefaultAttributes for every entity
	// (including nil) so that restoring the default set fully undoes
	// mention styling.
	MentionAttributes func(Entity) Attributes

	// Scheduler drives the cooldown timer. Default: WallClock.
	Scheduler Scheduler

	// ShowMentions asks the host to show its candidate picker for the
	// current filter string and trigger.
	ShowMentions func(filter, trigger string)

	// HideMentions asks the host to hide its candidate picker.
	HideMentions func()

	// HandleMentionOnReturn is consulted when return is pressed inside an
	// active mention context. Reporting true suppresses the default
	// newline insertion (the host committed a mention instead).
	HandleMentionOnReturn func() bool

	// Delegate optionally receives every event after the listener's own
	// handling.
	Delegate Delegate
}

func normalizeTriggers(triggers []string) []string {
	out := make([]string, 0, len(triggers))
	for _, t := range triggers {
		if t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return []string{"@"}
	}
	return out
}

func normalizeCooldownInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultCooldownInterval
	}
	return d
}

func normalizeScheduler(s Scheduler) Scheduler {
	if s == nil {
		return WallClock{}
	}
	return s
}

func normalizeAttributes(cfg *Config) {
	if cfg.DefaultAttributes == nil && cfg.MentionAttributes == nil {
		cfg.DefaultAttributes = Attributes{"mention": false}
		cfg.MentionAttributes = func(Entity) Attributes {
			return Attributes{"mention": true}
		}
	}
}

func validateConfig(cfg Config) error {
	if cfg.ShowMentions == nil || cfg.HideMentions == nil || cfg.HandleMentionOnReturn == nil {
		return errors.New("mention: ShowMentions, HideMentions, and HandleMentionOnReturn are required")
	}
	if cfg.DefaultAttributes == nil || cfg.MentionAttributes == nil {
		return errors.New("mention: DefaultAttributes and MentionAttributes must be set together")
	}
	if !attributesConsistent(cfg.DefaultAttributes, cfg.MentionAttributes(nil)) {
		return errors.New("mention: default and mention attributes must use the same keys")
	}
	return nil
}
